package dto

import (
	"time"

	"github.com/google/uuid"
)

// Record kinds carried on the tutor records topic.
const (
	RecordKindVoiceSession    = "voice_session"
	RecordKindFlashcardReview = "flashcard_review"
	RecordKindCaseCompletion  = "case_completion"
)

// PublishTutorRecordMessage is the envelope for fire-and-forget persistence
// of tutor interactions. Exactly one of the payload pointers is set,
// according to Kind.
type PublishTutorRecordMessage struct {
	Kind            string                 `json:"kind"`
	VoiceSession    *VoiceSessionRecord    `json:"voice_session,omitempty"`
	FlashcardReview *FlashcardReviewRecord `json:"flashcard_review,omitempty"`
	CaseCompletion  *CaseCompletionRecord  `json:"case_completion,omitempty"`
}

type VoiceSessionRecord struct {
	UserId     uuid.UUID `json:"user_id"`
	Topic      string    `json:"topic"`
	Transcript string    `json:"transcript"`
	AiResponse string    `json:"ai_response"`
	Duration   int       `json:"duration"`
	CreatedAt  time.Time `json:"created_at"`
}

type FlashcardReviewRecord struct {
	UserId       uuid.UUID `json:"user_id"`
	FlashcardId  string    `json:"flashcard_id"`
	Category     string    `json:"category"`
	Rating       string    `json:"rating"`
	ReviewedAt   time.Time `json:"reviewed_at"`
	NextReviewAt time.Time `json:"next_review_at"`
}

type CaseCompletionRecord struct {
	UserId         uuid.UUID `json:"user_id"`
	CaseId         string    `json:"case_id"`
	Score          int       `json:"score"`
	CorrectCount   int       `json:"correct_count"`
	TotalQuestions int       `json:"total_questions"`
	TimeTaken      int       `json:"time_taken"`
	CompletedAt    time.Time `json:"completed_at"`
}
