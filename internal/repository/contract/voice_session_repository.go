package contract

import (
	"context"

	"ai-medtutor-be/internal/entity"
	"ai-medtutor-be/internal/repository/specification"
)

type VoiceSessionRepository interface {
	Create(ctx context.Context, session *entity.VoiceSession) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VoiceSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
