package main

import (
	"log"

	"ai-medtutor-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedContentLibrary loads a starter reference library for the retrieval
// matcher. Admins extend it through the content endpoints.
func SeedContentLibrary(db *gorm.DB) {
	items := []model.ContentItem{
		{
			Id:          "content_seed_1",
			Title:       "Tension Pneumothorax Management",
			Description: "Recognition and emergency decompression of tension pneumothorax",
			Category:    "Emergency Procedures",
			Tags:        datatypes.NewJSONSlice([]string{"pneumothorax", "decompression", "emergency"}),
			ContentType: "text",
			Body:        "Tension pneumothorax is a clinical diagnosis: tracheal deviation away from the affected side, absent breath sounds, distended neck veins and hypotension. Immediate needle decompression at the second intercostal space, midclavicular line, followed by chest tube insertion in the safe triangle. Do not wait for imaging in an unstable patient.",
			IsActive:    true,
		},
		{
			Id:          "content_seed_2",
			Title:       "VATS Lobectomy Port Placement",
			Description: "Standard three-port approach for video-assisted lobectomy",
			Category:    "VATS Techniques",
			Tags:        datatypes.NewJSONSlice([]string{"vats", "lobectomy", "ports"}),
			ContentType: "video",
			Body:        "",
			IsActive:    true,
		},
		{
			Id:          "content_seed_3",
			Title:       "TNM 8th Edition Quick Reference",
			Description: "Staging thresholds for non-small cell lung cancer",
			Category:    "Lung Cancer Management",
			Tags:        datatypes.NewJSONSlice([]string{"tnm", "staging", "lung cancer"}),
			ContentType: "pdf",
			Body:        "",
			IsActive:    true,
		},
		{
			Id:          "content_seed_4",
			Title:       "Rib Fracture Analgesia Ladder",
			Description: "Stepwise pain control for chest wall trauma",
			Category:    "Chest Trauma",
			Tags:        datatypes.NewJSONSlice([]string{"rib fractures", "analgesia", "trauma"}),
			ContentType: "text",
			Body:        "Inadequate analgesia after rib fractures drives atelectasis and pneumonia. Escalate from regular paracetamol and NSAIDs through oral opioids to regional techniques: serratus anterior plane catheter, erector spinae block, or thoracic epidural for three or more displaced fractures in frail patients.",
			IsActive:    true,
		},
	}

	for _, item := range items {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&item).Error; err != nil {
			log.Printf("Warn: failed to seed content %s: %v", item.Id, err)
		}
	}
	log.Printf("Seeded %d content items", len(items))
}
