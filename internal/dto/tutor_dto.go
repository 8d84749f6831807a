package dto

import (
	"time"

	"github.com/google/uuid"
)

type AskTutorRequest struct {
	Transcript string `json:"transcript" validate:"required"`
	Topic      string `json:"topic"`
}

type MatchedContentItem struct {
	Id       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Type     string `json:"type"`
}

type AskTutorResponse struct {
	Answer         string               `json:"answer"`
	Generated      bool                 `json:"generated"`
	MatchedContent []MatchedContentItem `json:"matched_content"`
}

type VoiceSessionResponse struct {
	Id               uuid.UUID `json:"id"`
	Query            string    `json:"query"`
	Response         string    `json:"response"`
	MatchedContentId *string   `json:"matched_content_id"`
	CreatedAt        time.Time `json:"created_at"`
}
