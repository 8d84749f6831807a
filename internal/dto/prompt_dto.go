package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePromptRequest struct {
	PromptType string `json:"prompt_type" validate:"required,oneof=question_generation answer_evaluation feedback case_scenario"`
	Content    string `json:"content" validate:"required"`
	IsActive   bool   `json:"is_active"`
}

type CreatePromptResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdatePromptRequest struct {
	Id         uuid.UUID
	PromptType string `json:"prompt_type" validate:"required,oneof=question_generation answer_evaluation feedback case_scenario"`
	Content    string `json:"content" validate:"required"`
	IsActive   bool   `json:"is_active"`
}

type PromptResponse struct {
	Id         uuid.UUID  `json:"id"`
	PromptType string     `json:"prompt_type"`
	Content    string     `json:"content"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}
