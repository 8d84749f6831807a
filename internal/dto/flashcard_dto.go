package dto

import (
	"time"

	"github.com/google/uuid"
)

type FlashcardResponse struct {
	Id       string   `json:"id"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

type ReviewFlashcardRequest struct {
	Id     string
	Rating string `json:"rating" validate:"required,oneof=hard medium easy"`
}

type ReviewFlashcardResponse struct {
	Id           uuid.UUID `json:"id"`
	FlashcardId  string    `json:"flashcard_id"`
	Rating       string    `json:"rating"`
	ReviewedAt   time.Time `json:"reviewed_at"`
	NextReviewAt time.Time `json:"next_review_at"`
}

type DueFlashcardResponse struct {
	Flashcard    FlashcardResponse `json:"flashcard"`
	NextReviewAt time.Time         `json:"next_review_at"`
}
