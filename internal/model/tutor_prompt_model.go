package model

import (
	"time"

	"github.com/google/uuid"
)

type TutorPrompt struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PromptType string    `gorm:"type:varchar(50);not null;index"`
	Content    string    `gorm:"type:text;not null"`
	IsActive   bool      `gorm:"default:true;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (TutorPrompt) TableName() string {
	return "ai_tutor_prompts"
}
