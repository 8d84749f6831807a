package entity

import (
	"time"

	"github.com/google/uuid"
)

// VoiceSession records one completed voice turn: the learner's transcript
// and the generated tutor response.
type VoiceSession struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	Topic      string
	Transcript string
	AiResponse string
	Duration   int
	CreatedAt  time.Time
}
