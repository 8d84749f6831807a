package contract

import (
	"context"

	"ai-medtutor-be/internal/entity"
	"ai-medtutor-be/internal/repository/specification"
)

type KnowledgeProgressRepository interface {
	// Upsert creates the row for (user, area) or updates it in place.
	Upsert(ctx context.Context, progress *entity.KnowledgeProgress) error
	// Touch refreshes last_studied without disturbing the percentage.
	Touch(ctx context.Context, progress *entity.KnowledgeProgress) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeProgress, error)
}
