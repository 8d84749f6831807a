package main

import (
	"log"

	"ai-medtutor-be/internal/constant"
	"ai-medtutor-be/internal/entity"
	"ai-medtutor-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedTutorPrompts installs the default persona as the active feedback
// prompt so a fresh install answers in character without any admin work.
func SeedTutorPrompts(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.TutorPrompt{}).
		Where("prompt_type = ?", entity.PromptTypeFeedback).
		Count(&count).Error; err != nil {
		log.Printf("Warn: failed to check existing prompts: %v", err)
		return
	}
	if count > 0 {
		log.Println("Tutor prompts already present, skipping")
		return
	}

	prompt := model.TutorPrompt{
		Id:         uuid.New(),
		PromptType: entity.PromptTypeFeedback,
		Content:    constant.DefaultTutorPersona,
		IsActive:   true,
	}

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&prompt).Error; err != nil {
		log.Printf("Warn: failed to seed tutor prompt: %v", err)
		return
	}
	log.Println("Seeded default tutor prompt")
}
