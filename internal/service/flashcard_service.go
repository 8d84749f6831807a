package service

import (
	"context"
	"time"

	"ai-medtutor-be/internal/dto"
	"ai-medtutor-be/internal/pkg/logger"
	"ai-medtutor-be/internal/pkg/serverutils"
	"ai-medtutor-be/internal/repository/memory"
	"ai-medtutor-be/internal/repository/specification"
	"ai-medtutor-be/internal/repository/unitofwork"
	"ai-medtutor-be/pkg/tutor/spaced"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFlashcardService interface {
	GetAll(ctx context.Context) ([]*dto.FlashcardResponse, error)
	Review(ctx context.Context, userId uuid.UUID, req *dto.ReviewFlashcardRequest) (*dto.ReviewFlashcardResponse, error)
	DueReviews(ctx context.Context, userId uuid.UUID, before time.Time) ([]*dto.DueFlashcardResponse, error)
}

type flashcardService struct {
	uowFactory       unitofwork.RepositoryFactory
	reviewGate       *memory.ReviewGateRepository
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewFlashcardService(
	uowFactory unitofwork.RepositoryFactory,
	reviewGate *memory.ReviewGateRepository,
	publisherService IPublisherService,
	log logger.ILogger,
) IFlashcardService {
	return &flashcardService{
		uowFactory:       uowFactory,
		reviewGate:       reviewGate,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *flashcardService) GetAll(ctx context.Context) ([]*dto.FlashcardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	cards, err := uow.FlashCardRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.FlashcardResponse, 0, len(cards))
	for _, card := range cards {
		result = append(result, &dto.FlashcardResponse{
			Id:       card.Id,
			Question: card.Question,
			Answer:   card.Answer,
			Category: card.Category,
			Tags:     card.Tags,
		})
	}
	return result, nil
}

// Review rates a card and schedules the next review. A card can be rated
// once per study sitting; repeat submissions are rejected so the learner
// cannot inflate their review counts.
func (s *flashcardService) Review(ctx context.Context, userId uuid.UUID, req *dto.ReviewFlashcardRequest) (*dto.ReviewFlashcardResponse, error) {
	rating, err := spaced.ParseRating(req.Rating)
	if err != nil {
		return nil, serverutils.NewApiError(fiber.StatusUnprocessableEntity, "Invalid rating: must be hard, medium or easy")
	}

	if s.reviewGate.Seen(userId, req.Id) {
		return nil, serverutils.NewApiError(fiber.StatusConflict, "Flashcard already reviewed in this session")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	card, err := uow.FlashCardRepository().FindOne(ctx, specification.ByKey{Key: req.Id})
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, serverutils.NewApiError(fiber.StatusNotFound, "Flashcard not found")
	}

	schedule, err := spaced.Schedule(rating, time.Now())
	if err != nil {
		return nil, err
	}

	s.reviewGate.Mark(userId, card.Id)

	record := dto.PublishTutorRecordMessage{
		Kind: dto.RecordKindFlashcardReview,
		FlashcardReview: &dto.FlashcardReviewRecord{
			UserId:       userId,
			FlashcardId:  card.Id,
			Category:     card.Category,
			Rating:       rating.String(),
			ReviewedAt:   schedule.ReviewedAt,
			NextReviewAt: schedule.NextReviewAt,
		},
	}
	if err := s.publisherService.Publish(record); err != nil {
		// Persistence is best effort. The schedule still reaches the learner.
		s.logger.Warn("flashcard", "Failed to publish review record", map[string]interface{}{
			"error":        err.Error(),
			"flashcard_id": card.Id,
		})
	}

	return &dto.ReviewFlashcardResponse{
		Id:           uuid.New(),
		FlashcardId:  card.Id,
		Rating:       rating.String(),
		ReviewedAt:   schedule.ReviewedAt,
		NextReviewAt: schedule.NextReviewAt,
	}, nil
}

// DueReviews returns, per card, the learner's most recent review whose
// next-review time falls on or before the cutoff.
func (s *flashcardService) DueReviews(ctx context.Context, userId uuid.UUID, before time.Time) ([]*dto.DueFlashcardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reviews, err := uow.FlashcardReviewRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "reviewed_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	// Latest review per card wins; older rows are history.
	latest := make(map[string]int, len(reviews))
	for i, review := range reviews {
		if _, seen := latest[review.FlashcardId]; !seen {
			latest[review.FlashcardId] = i
		}
	}

	result := make([]*dto.DueFlashcardResponse, 0)
	for _, idx := range latest {
		review := reviews[idx]
		if review.NextReviewAt.After(before) {
			continue
		}

		card, err := uow.FlashCardRepository().FindOne(ctx, specification.ByKey{Key: review.FlashcardId})
		if err != nil {
			return nil, err
		}
		if card == nil {
			continue
		}

		result = append(result, &dto.DueFlashcardResponse{
			Flashcard: dto.FlashcardResponse{
				Id:       card.Id,
				Question: card.Question,
				Answer:   card.Answer,
				Category: card.Category,
				Tags:     card.Tags,
			},
			NextReviewAt: review.NextReviewAt,
		})
	}
	return result, nil
}
