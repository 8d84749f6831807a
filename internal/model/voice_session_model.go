package model

import (
	"time"

	"github.com/google/uuid"
)

type VoiceSession struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index"`
	Topic      string    `gorm:"type:varchar(255)"`
	Transcript string    `gorm:"type:text;not null"`
	AiResponse string    `gorm:"type:text;not null"`
	Duration   int       `gorm:"not null;default:0"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (VoiceSession) TableName() string {
	return "voice_sessions"
}
