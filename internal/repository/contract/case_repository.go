package contract

import (
	"context"

	"ai-medtutor-be/internal/entity"
	"ai-medtutor-be/internal/repository/specification"
)

type CaseStudyRepository interface {
	Create(ctx context.Context, cs *entity.CaseStudy) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CaseStudy, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CaseStudy, error)
}

type CaseCompletionRepository interface {
	Create(ctx context.Context, completion *entity.CaseCompletion) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CaseCompletion, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
