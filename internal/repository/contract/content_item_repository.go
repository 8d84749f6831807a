package contract

import (
	"context"

	"ai-medtutor-be/internal/entity"
	"ai-medtutor-be/internal/repository/specification"
)

type ContentItemRepository interface {
	Create(ctx context.Context, item *entity.ContentItem) error
	Update(ctx context.Context, item *entity.ContentItem) error
	Delete(ctx context.Context, id string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ContentItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContentItem, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
