package dto

import "time"

type KnowledgeProgressResponse struct {
	Area               string    `json:"area"`
	ProgressPercentage int       `json:"progress_percentage"`
	LastStudied        time.Time `json:"last_studied"`
}

type ProgressOverviewResponse struct {
	Areas           []KnowledgeProgressResponse `json:"areas"`
	ReviewsLogged   int64                       `json:"reviews_logged"`
	CasesCompleted  int64                       `json:"cases_completed"`
	SessionsCreated int64                       `json:"sessions_created"`
}

type UpsertProgressRequest struct {
	Area               string `json:"area" validate:"required"`
	ProgressPercentage int    `json:"progress_percentage" validate:"min=0,max=100"`
}
