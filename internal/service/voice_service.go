package service

import (
	"context"
	"time"

	"ai-medtutor-be/internal/constant"
	"ai-medtutor-be/internal/dto"
	"ai-medtutor-be/internal/entity"
	"ai-medtutor-be/internal/pkg/logger"
	"ai-medtutor-be/internal/repository/specification"
	"ai-medtutor-be/internal/repository/unitofwork"
	"ai-medtutor-be/pkg/llm"
	"ai-medtutor-be/pkg/tutor/prompt"
	"ai-medtutor-be/pkg/tutor/retrieval"

	"github.com/google/uuid"
)

type IVoiceService interface {
	Ask(ctx context.Context, userId uuid.UUID, req *dto.AskTutorRequest) (*dto.AskTutorResponse, error)
	History(ctx context.Context, userId uuid.UUID) ([]*dto.VoiceSessionResponse, error)
}

type voiceService struct {
	uowFactory       unitofwork.RepositoryFactory
	llmProvider      llm.LLMProvider
	publisherService IPublisherService
	logger           logger.ILogger
	personaOverride  string
}

func NewVoiceService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	publisherService IPublisherService,
	log logger.ILogger,
	personaOverride string,
) IVoiceService {
	return &voiceService{
		uowFactory:       uowFactory,
		llmProvider:      llmProvider,
		publisherService: publisherService,
		logger:           log,
		personaOverride:  personaOverride,
	}
}

// Ask runs one voice turn: match the query against the active content
// library, compose the tutor prompt, generate a response, and hand the
// finished turn to the record pipeline. Generation failures degrade to a
// fixed apology instead of surfacing an error, and the turn is not recorded.
func (s *voiceService) Ask(ctx context.Context, userId uuid.UUID, req *dto.AskTutorRequest) (*dto.AskTutorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	items, err := uow.ContentItemRepository().FindAll(ctx, specification.ActiveOnly{})
	if err != nil {
		return nil, err
	}

	corpus := make([]entity.ContentItem, 0, len(items))
	for _, item := range items {
		corpus = append(corpus, *item)
	}

	matches := retrieval.Match(req.Transcript, corpus)

	instruction, err := s.resolveInstruction(ctx, uow)
	if err != nil {
		return nil, err
	}

	composed := prompt.NewComposer(instruction, constant.DefaultTutorPersona, req.Transcript, matches).Build()

	answer, genErr := s.llmProvider.Generate(ctx, composed, llm.WithMaxTokens(constant.GenerationMaxTokens))
	if genErr != nil {
		s.logger.Error("voice", "Tutor generation failed", map[string]interface{}{
			"error":   genErr.Error(),
			"user_id": userId.String(),
		})
		return &dto.AskTutorResponse{
			Answer:         constant.GenerationFallbackMessage,
			Generated:      false,
			MatchedContent: toMatchedContent(matches),
		}, nil
	}

	topic := req.Topic
	if topic == "" {
		topic = topicOf(matches)
	}

	record := dto.PublishTutorRecordMessage{
		Kind: dto.RecordKindVoiceSession,
		VoiceSession: &dto.VoiceSessionRecord{
			UserId:     userId,
			Topic:      topic,
			Transcript: req.Transcript,
			AiResponse: answer,
			CreatedAt:  time.Now(),
		},
	}
	if err := s.publisherService.Publish(record); err != nil {
		// Persistence is best effort. The learner still gets the answer.
		s.logger.Warn("voice", "Failed to publish session record", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return &dto.AskTutorResponse{
		Answer:         answer,
		Generated:      true,
		MatchedContent: toMatchedContent(matches),
	}, nil
}

func (s *voiceService) History(ctx context.Context, userId uuid.UUID) ([]*dto.VoiceSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.VoiceSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.VoiceSessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		var matchedId *string
		if sess.Topic != "" {
			topic := sess.Topic
			matchedId = &topic
		}
		result = append(result, &dto.VoiceSessionResponse{
			Id:               sess.Id,
			Query:            sess.Transcript,
			Response:         sess.AiResponse,
			MatchedContentId: matchedId,
			CreatedAt:        sess.CreatedAt,
		})
	}
	return result, nil
}

// resolveInstruction picks the tutor persona: an explicit config override
// wins, then the active feedback prompt from the database. A blank result
// is fine, the composer substitutes the default persona.
func (s *voiceService) resolveInstruction(ctx context.Context, uow unitofwork.UnitOfWork) (string, error) {
	if s.personaOverride != "" {
		return s.personaOverride, nil
	}

	active, err := uow.TutorPromptRepository().FindOne(ctx,
		specification.ByPromptType{PromptType: entity.PromptTypeFeedback},
		specification.ActiveOnly{},
	)
	if err != nil {
		return "", err
	}
	if active == nil {
		return "", nil
	}
	return active.Content, nil
}

func toMatchedContent(matches []entity.ContentItem) []dto.MatchedContentItem {
	result := make([]dto.MatchedContentItem, 0, len(matches))
	for _, item := range matches {
		result = append(result, dto.MatchedContentItem{
			Id:       item.Id,
			Title:    item.Title,
			Category: item.Category,
			Type:     item.ContentType,
		})
	}
	return result
}

func topicOf(matches []entity.ContentItem) string {
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Id
}
