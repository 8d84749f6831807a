package contract

import (
	"context"

	"ai-medtutor-be/internal/entity"
	"ai-medtutor-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TutorPromptRepository interface {
	Create(ctx context.Context, prompt *entity.TutorPrompt) error
	Update(ctx context.Context, prompt *entity.TutorPrompt) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TutorPrompt, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TutorPrompt, error)
}
