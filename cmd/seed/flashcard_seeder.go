package main

import (
	"log"

	"ai-medtutor-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedFlashcards loads the thoracic surgery flashcard deck.
func SeedFlashcards(db *gorm.DB) {
	cards := []model.FlashCard{
		{
			Id:         "fc1",
			Question:   "What are the absolute contraindications for thoracotomy?",
			Answer:     "Absolute contraindications include: severe cardiovascular instability, coagulopathy that cannot be corrected, and patient refusal. Relative contraindications include advanced age, severe comorbidities, and poor functional status.",
			Category:   "Emergency Procedures",
			Difficulty: "medium",
			Tags:       datatypes.NewJSONSlice([]string{"thoracotomy", "contraindications", "emergency"}),
		},
		{
			Id:         "fc2",
			Question:   "Name the key anatomical landmarks for chest tube insertion.",
			Answer:     "The safe triangle is bounded by: anterior border of latissimus dorsi, lateral border of pectoralis major, and a line superior to the horizontal level of the nipple. Insert at the 4th or 5th intercostal space.",
			Category:   "Emergency Procedures",
			Difficulty: "easy",
			Tags:       datatypes.NewJSONSlice([]string{"chest tube", "anatomy", "landmarks"}),
		},
		{
			Id:         "fc3",
			Question:   "What is the TNM staging for T3N2M0 lung cancer?",
			Answer:     "T3: Tumor >7cm or separate tumor nodules in different ipsilateral lobe. N2: Metastasis to ipsilateral mediastinal/subcarinal lymph nodes. M0: No distant metastasis. This represents Stage IIIA disease.",
			Category:   "Lung Cancer Management",
			Difficulty: "hard",
			Tags:       datatypes.NewJSONSlice([]string{"TNM staging", "lung cancer", "oncology"}),
		},
		{
			Id:         "fc4",
			Question:   "What are the indications for VATS lobectomy?",
			Answer:     "VATS lobectomy is indicated for: early-stage NSCLC (T1-T2, N0-N1), benign lesions requiring lobectomy, metastatic disease to lung, and selected cases of inflammatory disease. Contraindications include extensive pleural adhesions, large tumors >6cm, and chest wall invasion.",
			Category:   "VATS Techniques",
			Difficulty: "medium",
			Tags:       datatypes.NewJSONSlice([]string{"VATS", "lobectomy", "indications"}),
		},
		{
			Id:         "fc5",
			Question:   "Describe the management of massive hemothorax.",
			Answer:     "Massive hemothorax (>1500ml or >200ml/hr) requires: immediate large-bore chest tube (32-36Fr), aggressive fluid resuscitation, type and crossmatch, urgent thoracotomy if >1500ml initial drainage or >200ml/hr ongoing. Consider autotransfusion if available.",
			Category:   "Chest Trauma",
			Difficulty: "hard",
			Tags:       datatypes.NewJSONSlice([]string{"hemothorax", "trauma", "emergency"}),
		},
		{
			Id:         "fc6",
			Question:   "What are the key components of enhanced recovery after thoracic surgery (ERATS)?",
			Answer:     "ERATS includes: preoperative counseling, avoiding prolonged fasting, multimodal analgesia, early mobilization, early chest tube removal, minimally invasive techniques when possible, and standardized discharge criteria.",
			Category:   "Post-operative Care",
			Difficulty: "medium",
			Tags:       datatypes.NewJSONSlice([]string{"ERATS", "recovery", "postoperative"}),
		},
	}

	for _, card := range cards {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&card).Error; err != nil {
			log.Printf("Warn: failed to seed flashcard %s: %v", card.Id, err)
		}
	}
	log.Printf("Seeded %d flashcards", len(cards))
}
