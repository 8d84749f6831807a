package contract

import (
	"context"

	"ai-medtutor-be/internal/entity"
	"ai-medtutor-be/internal/repository/specification"
)

type FlashCardRepository interface {
	Create(ctx context.Context, card *entity.FlashCard) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FlashCard, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FlashCard, error)
}

type FlashcardReviewRepository interface {
	Create(ctx context.Context, review *entity.FlashcardReview) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FlashcardReview, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
