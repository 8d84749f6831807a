package dto

import "time"

type CreateContentRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" validate:"required"`
	Type        string   `json:"type" validate:"required,oneof=text image audio video pdf"`
	Body        string   `json:"body"`
	Tags        []string `json:"tags"`
}

type CreateContentResponse struct {
	Id string `json:"id"`
}

type UpdateContentRequest struct {
	Id          string
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" validate:"required"`
	Type        string   `json:"type" validate:"required,oneof=text image audio video pdf"`
	Body        string   `json:"body"`
	Tags        []string `json:"tags"`
	IsActive    bool     `json:"is_active"`
}

type ContentItemResponse struct {
	Id          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Type        string     `json:"type"`
	Body        string     `json:"body,omitempty"`
	Tags        []string   `json:"tags"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
