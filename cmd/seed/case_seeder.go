package main

import (
	"log"

	"ai-medtutor-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedCaseStudies loads the interactive case scenarios with their question
// banks. Question ids are namespaced by case so the composite rows stay
// unique.
func SeedCaseStudies(db *gorm.DB) {
	cases := []model.CaseStudy{
		{
			Id:          "case1",
			Title:       "Emergency Pneumothorax",
			Difficulty:  "Intermediate",
			Duration:    "15 min",
			Description: "A 25-year-old athlete presents with sudden chest pain and shortness of breath",
			Scenario:    "A 25-year-old professional basketball player presents to the emergency department with sudden onset of severe right-sided chest pain and shortness of breath that began during practice 2 hours ago. He has no significant medical history and takes no medications. On examination, he appears anxious and is using accessory muscles to breathe. Vital signs: HR 110, BP 130/80, RR 28, O2 sat 92% on room air.",
			LearningObjectives: datatypes.NewJSONSlice([]string{
				"Recognize the clinical presentation of spontaneous pneumothorax",
				"Understand the appropriate diagnostic workup",
				"Know the indications for different treatment modalities",
				"Understand the risk factors and demographics",
			}),
			Questions: []model.CaseQuestion{
				{
					Id:            "case1_q1",
					Prompt:        "What is the most likely diagnosis based on the presentation?",
					Options:       datatypes.NewJSONSlice([]string{"Myocardial infarction", "Spontaneous pneumothorax", "Pulmonary embolism", "Costochondritis"}),
					CorrectOption: 1,
					Explanation:   "The sudden onset of chest pain and dyspnea in a young, tall, athletic male is classic for spontaneous pneumothorax. This demographic has a higher risk due to subpleural blebs.",
					SortOrder:     0,
				},
				{
					Id:            "case1_q2",
					Prompt:        "What is the next most appropriate diagnostic step?",
					Options:       datatypes.NewJSONSlice([]string{"CT chest with contrast", "Chest X-ray", "ECG", "D-dimer"}),
					CorrectOption: 1,
					Explanation:   "Chest X-ray is the initial imaging of choice for suspected pneumothorax. It can quickly confirm the diagnosis and assess the size of the pneumothorax.",
					SortOrder:     1,
				},
				{
					Id:            "case1_q3",
					Prompt:        "The chest X-ray shows a 40% right-sided pneumothorax. What is the most appropriate management?",
					Options:       datatypes.NewJSONSlice([]string{"Observation and oxygen therapy", "Needle decompression", "Chest tube insertion", "Emergency thoracotomy"}),
					CorrectOption: 2,
					Explanation:   "A 40% pneumothorax in a symptomatic patient requires chest tube insertion. The threshold is typically >20% or any size with symptoms.",
					SortOrder:     2,
				},
			},
		},
		{
			Id:          "case2",
			Title:       "Lung Cancer Staging",
			Difficulty:  "Advanced",
			Duration:    "25 min",
			Description: "Complex case involving T3N2M0 non-small cell lung cancer",
			Scenario:    "A 65-year-old male smoker presents with a 3-month history of cough, weight loss, and hemoptysis. CT chest shows a 8cm mass in the right upper lobe with separate nodules in the right lower lobe. Mediastinal lymph nodes are enlarged. PET scan shows uptake in the primary tumor, mediastinal nodes, and no distant metastases. Bronchoscopy confirms adenocarcinoma.",
			LearningObjectives: datatypes.NewJSONSlice([]string{
				"Master TNM staging for lung cancer",
				"Understand the 8th edition staging changes",
				"Correlate imaging findings with staging",
				"Know treatment implications of different stages",
			}),
			Questions: []model.CaseQuestion{
				{
					Id:            "case2_q1",
					Prompt:        "What is the T stage of this tumor?",
					Options:       datatypes.NewJSONSlice([]string{"T1", "T2", "T3", "T4"}),
					CorrectOption: 2,
					Explanation:   "T3 because the tumor is >7cm and there are separate tumor nodules in a different ipsilateral lobe (right lower lobe nodules with primary in right upper lobe).",
					SortOrder:     0,
				},
				{
					Id:            "case2_q2",
					Prompt:        "Based on enlarged mediastinal nodes on imaging, what is the most likely N stage?",
					Options:       datatypes.NewJSONSlice([]string{"N0", "N1", "N2", "N3"}),
					CorrectOption: 2,
					Explanation:   "N2 indicates metastasis to ipsilateral mediastinal and/or subcarinal lymph nodes, which matches the imaging findings.",
					SortOrder:     1,
				},
				{
					Id:            "case2_q3",
					Prompt:        "What is the overall stage of this cancer?",
					Options:       datatypes.NewJSONSlice([]string{"Stage IIA", "Stage IIB", "Stage IIIA", "Stage IIIB"}),
					CorrectOption: 2,
					Explanation:   "T3N2M0 corresponds to Stage IIIA disease according to the 8th edition TNM staging system.",
					SortOrder:     2,
				},
			},
		},
		{
			Id:          "case3",
			Title:       "Chest Trauma Assessment",
			Difficulty:  "Beginner",
			Duration:    "10 min",
			Description: "Multi-trauma patient with suspected thoracic injuries",
			Scenario:    "A 30-year-old male is brought to the trauma bay following a high-speed motor vehicle collision. He is conscious but complains of severe chest pain. Primary survey reveals stable airway, decreased breath sounds on the left, and hemodynamically stable. Chest X-ray shows multiple left-sided rib fractures and a small pneumothorax.",
			LearningObjectives: datatypes.NewJSONSlice([]string{
				"Understand trauma assessment priorities",
				"Know indications for chest tube in trauma",
				"Recognize complications of chest trauma",
				"Understand monitoring requirements",
			}),
			Questions: []model.CaseQuestion{
				{
					Id:            "case3_q1",
					Prompt:        "What is the most immediate concern in this patient?",
					Options:       datatypes.NewJSONSlice([]string{"Pain management", "Pneumothorax progression", "Flail chest development", "Hemothorax development"}),
					CorrectOption: 1,
					Explanation:   "In trauma patients, pneumothorax can progress rapidly, especially with positive pressure ventilation. Close monitoring is essential.",
					SortOrder:     0,
				},
				{
					Id:            "case3_q2",
					Prompt:        "What is the threshold for chest tube insertion in traumatic pneumothorax?",
					Options:       datatypes.NewJSONSlice([]string{"Any size pneumothorax", "Only if >50%", "Only if symptomatic", "Only if tension develops"}),
					CorrectOption: 0,
					Explanation:   "In trauma patients, any pneumothorax typically warrants chest tube insertion due to risk of progression and need for positive pressure ventilation.",
					SortOrder:     1,
				},
			},
		},
	}

	for _, cs := range cases {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&cs).Error; err != nil {
			log.Printf("Warn: failed to seed case %s: %v", cs.Id, err)
		}
	}
	log.Printf("Seeded %d case studies", len(cases))
}
