package specification

import (
	"gorm.io/gorm"
)

// ActiveOnly keeps rows flagged active (content items, tutor prompts).
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// ByPromptType selects tutor prompts of one type.
type ByPromptType struct {
	PromptType string
}

func (s ByPromptType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("prompt_type = ?", s.PromptType)
}
