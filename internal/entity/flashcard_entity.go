package entity

import (
	"time"

	"github.com/google/uuid"
)

// FlashCard is a static catalog entry. The scheduler never mutates it.
type FlashCard struct {
	Id         string
	Question   string
	Answer     string
	Category   string
	Difficulty string
	Tags       []string
}

// FlashcardReview is append-only: re-reviewing a card creates a new row.
// NextReviewAt is always strictly after ReviewedAt.
type FlashcardReview struct {
	Id               uuid.UUID
	UserId           uuid.UUID
	FlashcardId      string
	DifficultyRating string
	ReviewedAt       time.Time
	NextReviewAt     time.Time
}
