package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	PromptTypeQuestionGeneration = "question_generation"
	PromptTypeAnswerEvaluation   = "answer_evaluation"
	PromptTypeFeedback           = "feedback"
	PromptTypeCaseScenario       = "case_scenario"
)

// TutorPrompt is an editable instruction template for the tutor persona.
type TutorPrompt struct {
	Id         uuid.UUID
	PromptType string
	Content    string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
