package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CaseStudy struct {
	Id                 string                      `gorm:"type:varchar(64);primaryKey"`
	Title              string                      `gorm:"type:varchar(255);not null"`
	Description        string                      `gorm:"type:text"`
	Scenario           string                      `gorm:"type:text;not null"`
	Difficulty         string                      `gorm:"type:varchar(20);not null"`
	Duration           string                      `gorm:"type:varchar(20)"`
	LearningObjectives datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Questions          []CaseQuestion              `gorm:"foreignKey:CaseStudyId;references:Id"`
	CreatedAt          time.Time                   `gorm:"autoCreateTime"`
}

func (CaseStudy) TableName() string {
	return "case_studies"
}

type CaseQuestion struct {
	Id            string                      `gorm:"type:varchar(64);primaryKey"`
	CaseStudyId   string                      `gorm:"type:varchar(64);not null;index"`
	Prompt        string                      `gorm:"type:text;not null"`
	Options       datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	CorrectOption int                         `gorm:"not null"`
	Explanation   string                      `gorm:"type:text"`
	SortOrder     int                         `gorm:"not null;default:0;index"`
}

func (CaseQuestion) TableName() string {
	return "case_questions"
}

type CaseCompletion struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;index"`
	CaseId         string    `gorm:"type:varchar(64);not null;index"`
	Score          int       `gorm:"not null"`
	CorrectCount   int       `gorm:"not null"`
	TotalQuestions int       `gorm:"not null"`
	TimeTaken      int       `gorm:"not null;default:0"`
	CompletedAt    time.Time `gorm:"not null"`
}

func (CaseCompletion) TableName() string {
	return "case_completions"
}
