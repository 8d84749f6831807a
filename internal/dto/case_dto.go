package dto

import (
	"time"

	"github.com/google/uuid"
)

type CaseQuestionView struct {
	Id       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Index    int      `json:"index"`
	Total    int      `json:"total"`
	Selected *int     `json:"selected"`
}

type StartCaseResponse struct {
	SessionId string           `json:"session_id"`
	CaseId    string           `json:"case_id"`
	Title     string           `json:"title"`
	Scenario  string           `json:"scenario"`
	Question  CaseQuestionView `json:"question"`
}

type AnswerCaseRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Selected  *int   `json:"selected" validate:"required"`
}

type AdvanceCaseRequest struct {
	SessionId string `json:"session_id" validate:"required"`
}

type CaseCompletionView struct {
	Score          int       `json:"score"`
	CorrectCount   int       `json:"correct_count"`
	TotalQuestions int       `json:"total_questions"`
	CompletedAt    time.Time `json:"completed_at"`
}

type CaseStepResponse struct {
	SessionId  string              `json:"session_id"`
	State      string              `json:"state"`
	Question   *CaseQuestionView   `json:"question,omitempty"`
	Completion *CaseCompletionView `json:"completion,omitempty"`
}

type CaseReviewItem struct {
	QuestionId  string `json:"question_id"`
	Question    string `json:"question"`
	Selected    int    `json:"selected"`
	Correct     int    `json:"correct"`
	WasCorrect  bool   `json:"was_correct"`
	Explanation string `json:"explanation"`
}

type CaseReviewResponse struct {
	SessionId  string             `json:"session_id"`
	Completion CaseCompletionView `json:"completion"`
	Items      []CaseReviewItem   `json:"items"`
}

type CaseSummaryResponse struct {
	Id          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Difficulty  string   `json:"difficulty"`
	Duration    string   `json:"duration"`
	Objectives  []string `json:"objectives"`
}

type CompletedCaseResponse struct {
	Id          uuid.UUID `json:"id"`
	CaseId      string    `json:"case_id"`
	Score       int       `json:"score"`
	CompletedAt time.Time `json:"completed_at"`
}
