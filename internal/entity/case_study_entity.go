package entity

import (
	"time"

	"github.com/google/uuid"
)

// CaseQuestion is one multiple-choice step of a case study.
// Options always holds at least two entries.
type CaseQuestion struct {
	Id            string
	Prompt        string
	Options       []string
	CorrectOption int
	Explanation   string
}

// CaseStudy is a static scenario quiz. Immutable during a session.
type CaseStudy struct {
	Id                 string
	Title              string
	Description        string
	Scenario           string
	Difficulty         string
	Duration           string
	LearningObjectives []string
	Questions          []CaseQuestion
}

// CaseCompletion is emitted exactly once per completion transition.
type CaseCompletion struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	CaseId         string
	Score          int
	CorrectCount   int
	TotalQuestions int
	TimeTaken      int
	CompletedAt    time.Time
}
