package mapper

import (
	"sort"

	"ai-medtutor-be/internal/entity"
	"ai-medtutor-be/internal/model"
)

type CaseMapper struct{}

func NewCaseMapper() *CaseMapper {
	return &CaseMapper{}
}

func (m *CaseMapper) ToEntity(c *model.CaseStudy) *entity.CaseStudy {
	if c == nil {
		return nil
	}

	// Question order is the quiz order; SortOrder is authoritative.
	questions := make([]model.CaseQuestion, len(c.Questions))
	copy(questions, c.Questions)
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].SortOrder < questions[j].SortOrder
	})

	out := &entity.CaseStudy{
		Id:                 c.Id,
		Title:              c.Title,
		Description:        c.Description,
		Scenario:           c.Scenario,
		Difficulty:         c.Difficulty,
		Duration:           c.Duration,
		LearningObjectives: c.LearningObjectives,
		Questions:          make([]entity.CaseQuestion, 0, len(questions)),
	}
	for _, q := range questions {
		out.Questions = append(out.Questions, entity.CaseQuestion{
			Id:            q.Id,
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectOption: q.CorrectOption,
			Explanation:   q.Explanation,
		})
	}
	return out
}

func (m *CaseMapper) ToModel(c *entity.CaseStudy) *model.CaseStudy {
	if c == nil {
		return nil
	}
	out := &model.CaseStudy{
		Id:                 c.Id,
		Title:              c.Title,
		Description:        c.Description,
		Scenario:           c.Scenario,
		Difficulty:         c.Difficulty,
		Duration:           c.Duration,
		LearningObjectives: c.LearningObjectives,
		Questions:          make([]model.CaseQuestion, 0, len(c.Questions)),
	}
	for i, q := range c.Questions {
		out.Questions = append(out.Questions, model.CaseQuestion{
			Id:            q.Id,
			CaseStudyId:   c.Id,
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectOption: q.CorrectOption,
			Explanation:   q.Explanation,
			SortOrder:     i,
		})
	}
	return out
}

func (m *CaseMapper) ToEntities(models []*model.CaseStudy) []*entity.CaseStudy {
	out := make([]*entity.CaseStudy, 0, len(models))
	for _, c := range models {
		out = append(out, m.ToEntity(c))
	}
	return out
}

func (m *CaseMapper) CompletionToEntity(c *model.CaseCompletion) *entity.CaseCompletion {
	if c == nil {
		return nil
	}
	return &entity.CaseCompletion{
		Id:             c.Id,
		UserId:         c.UserId,
		CaseId:         c.CaseId,
		Score:          c.Score,
		CorrectCount:   c.CorrectCount,
		TotalQuestions: c.TotalQuestions,
		TimeTaken:      c.TimeTaken,
		CompletedAt:    c.CompletedAt,
	}
}

func (m *CaseMapper) CompletionToModel(c *entity.CaseCompletion) *model.CaseCompletion {
	if c == nil {
		return nil
	}
	return &model.CaseCompletion{
		Id:             c.Id,
		UserId:         c.UserId,
		CaseId:         c.CaseId,
		Score:          c.Score,
		CorrectCount:   c.CorrectCount,
		TotalQuestions: c.TotalQuestions,
		TimeTaken:      c.TimeTaken,
		CompletedAt:    c.CompletedAt,
	}
}

func (m *CaseMapper) CompletionsToEntities(models []*model.CaseCompletion) []*entity.CaseCompletion {
	out := make([]*entity.CaseCompletion, 0, len(models))
	for _, c := range models {
		out = append(out, m.CompletionToEntity(c))
	}
	return out
}
