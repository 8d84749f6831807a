package service

import (
	"context"
	"encoding/json"

	"ai-medtutor-be/internal/dto"
	"ai-medtutor-be/internal/entity"
	"ai-medtutor-be/internal/pkg/logger"
	"ai-medtutor-be/internal/repository/specification"
	"ai-medtutor-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IRecorderService interface {
	Consume(ctx context.Context) error
}

// recorderService drains the tutor records topic and persists interaction
// rows. Runs in its own goroutine; failures here never reach the learner.
type recorderService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewRecorderService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IRecorderService {
	return &recorderService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (rs *recorderService) Consume(ctx context.Context) error {
	messages, err := rs.pubSub.Subscribe(ctx, rs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			rs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (rs *recorderService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishTutorRecordMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		rs.logger.Error("recorder", "Failed to unmarshal record message", map[string]interface{}{
			"error": err.Error(),
		})
		// Malformed messages are acked, retrying cannot fix them.
		msg.Ack()
		return
	}

	var err error
	switch payload.Kind {
	case dto.RecordKindVoiceSession:
		err = rs.recordVoiceSession(ctx, payload.VoiceSession)
	case dto.RecordKindFlashcardReview:
		err = rs.recordFlashcardReview(ctx, payload.FlashcardReview)
	case dto.RecordKindCaseCompletion:
		err = rs.recordCaseCompletion(ctx, payload.CaseCompletion)
	default:
		rs.logger.Warn("recorder", "Unknown record kind", map[string]interface{}{
			"kind": payload.Kind,
		})
		msg.Ack()
		return
	}

	if err != nil {
		rs.logger.Error("recorder", "Failed to persist record", map[string]interface{}{
			"kind":  payload.Kind,
			"error": err.Error(),
		})
		msg.Nack()
		return
	}

	msg.Ack()
}

func (rs *recorderService) recordVoiceSession(ctx context.Context, record *dto.VoiceSessionRecord) error {
	if record == nil {
		return nil
	}

	uow := rs.uowFactory.NewUnitOfWork(ctx)
	return uow.VoiceSessionRepository().Create(ctx, &entity.VoiceSession{
		Id:         uuid.New(),
		UserId:     record.UserId,
		Topic:      record.Topic,
		Transcript: record.Transcript,
		AiResponse: record.AiResponse,
		Duration:   record.Duration,
		CreatedAt:  record.CreatedAt,
	})
}

func (rs *recorderService) recordFlashcardReview(ctx context.Context, record *dto.FlashcardReviewRecord) error {
	if record == nil {
		return nil
	}

	uow := rs.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	err := uow.FlashcardReviewRepository().Create(ctx, &entity.FlashcardReview{
		Id:               uuid.New(),
		UserId:           record.UserId,
		FlashcardId:      record.FlashcardId,
		DifficultyRating: record.Rating,
		ReviewedAt:       record.ReviewedAt,
		NextReviewAt:     record.NextReviewAt,
	})
	if err != nil {
		return err
	}

	if record.Category != "" {
		reviewed := record.ReviewedAt
		err = uow.KnowledgeProgressRepository().Touch(ctx, &entity.KnowledgeProgress{
			Id:          uuid.New(),
			UserId:      record.UserId,
			Area:        record.Category,
			LastStudied: &reviewed,
		})
		if err != nil {
			return err
		}
	}

	return uow.Commit()
}

func (rs *recorderService) recordCaseCompletion(ctx context.Context, record *dto.CaseCompletionRecord) error {
	if record == nil {
		return nil
	}

	uow := rs.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	err := uow.CaseCompletionRepository().Create(ctx, &entity.CaseCompletion{
		Id:             uuid.New(),
		UserId:         record.UserId,
		CaseId:         record.CaseId,
		Score:          record.Score,
		CorrectCount:   record.CorrectCount,
		TotalQuestions: record.TotalQuestions,
		TimeTaken:      record.TimeTaken,
		CompletedAt:    record.CompletedAt,
	})
	if err != nil {
		return err
	}

	// Completing a case marks its study area with the achieved score.
	cs, err := uow.CaseStudyRepository().FindOne(ctx, specification.ByKey{Key: record.CaseId})
	if err != nil {
		return err
	}
	if cs != nil {
		completedAt := record.CompletedAt
		err = uow.KnowledgeProgressRepository().Upsert(ctx, &entity.KnowledgeProgress{
			Id:                 uuid.New(),
			UserId:             record.UserId,
			Area:               cs.Title,
			ProgressPercentage: record.Score,
			LastStudied:        &completedAt,
		})
		if err != nil {
			return err
		}
	}

	return uow.Commit()
}
