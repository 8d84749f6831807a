package mapper

import (
	"time"

	"ai-medtutor-be/internal/entity"
	"ai-medtutor-be/internal/model"
)

type TutorPromptMapper struct{}

func NewTutorPromptMapper() *TutorPromptMapper {
	return &TutorPromptMapper{}
}

func (m *TutorPromptMapper) ToEntity(p *model.TutorPrompt) *entity.TutorPrompt {
	if p == nil {
		return nil
	}
	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() && !p.UpdatedAt.Equal(p.CreatedAt) {
		t := p.UpdatedAt
		updatedAt = &t
	}
	return &entity.TutorPrompt{
		Id:         p.Id,
		PromptType: p.PromptType,
		Content:    p.Content,
		IsActive:   p.IsActive,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *TutorPromptMapper) ToModel(p *entity.TutorPrompt) *model.TutorPrompt {
	if p == nil {
		return nil
	}
	out := &model.TutorPrompt{
		Id:         p.Id,
		PromptType: p.PromptType,
		Content:    p.Content,
		IsActive:   p.IsActive,
		CreatedAt:  p.CreatedAt,
	}
	if p.UpdatedAt != nil {
		out.UpdatedAt = *p.UpdatedAt
	}
	return out
}

func (m *TutorPromptMapper) ToEntities(models []*model.TutorPrompt) []*entity.TutorPrompt {
	out := make([]*entity.TutorPrompt, 0, len(models))
	for _, p := range models {
		out = append(out, m.ToEntity(p))
	}
	return out
}
