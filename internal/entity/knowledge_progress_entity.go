package entity

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeProgress tracks a learner's standing in one knowledge area.
type KnowledgeProgress struct {
	Id                 uuid.UUID
	UserId             uuid.UUID
	Area               string
	ProgressPercentage int
	LastStudied        *time.Time
}
