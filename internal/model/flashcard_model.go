package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type FlashCard struct {
	Id         string                      `gorm:"type:varchar(64);primaryKey"`
	Question   string                      `gorm:"type:text;not null"`
	Answer     string                      `gorm:"type:text;not null"`
	Category   string                      `gorm:"type:varchar(100);not null;index"`
	Difficulty string                      `gorm:"type:varchar(20);not null"`
	Tags       datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt  time.Time                   `gorm:"autoCreateTime"`
}

func (FlashCard) TableName() string {
	return "flashcards"
}

type FlashcardReview struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId           uuid.UUID `gorm:"type:uuid;not null;index"`
	FlashcardId      string    `gorm:"type:varchar(64);not null;index"`
	DifficultyRating string    `gorm:"type:varchar(20);not null"`
	ReviewedAt       time.Time `gorm:"not null"`
	NextReviewAt     time.Time `gorm:"not null;index"`
}

func (FlashcardReview) TableName() string {
	return "flashcard_reviews"
}
