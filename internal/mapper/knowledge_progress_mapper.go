package mapper

import (
	"ai-medtutor-be/internal/entity"
	"ai-medtutor-be/internal/model"
)

type KnowledgeProgressMapper struct{}

func NewKnowledgeProgressMapper() *KnowledgeProgressMapper {
	return &KnowledgeProgressMapper{}
}

func (m *KnowledgeProgressMapper) ToEntity(p *model.KnowledgeProgress) *entity.KnowledgeProgress {
	if p == nil {
		return nil
	}
	return &entity.KnowledgeProgress{
		Id:                 p.Id,
		UserId:             p.UserId,
		Area:               p.Area,
		ProgressPercentage: p.ProgressPercentage,
		LastStudied:        p.LastStudied,
	}
}

func (m *KnowledgeProgressMapper) ToModel(p *entity.KnowledgeProgress) *model.KnowledgeProgress {
	if p == nil {
		return nil
	}
	return &model.KnowledgeProgress{
		Id:                 p.Id,
		UserId:             p.UserId,
		Area:               p.Area,
		ProgressPercentage: p.ProgressPercentage,
		LastStudied:        p.LastStudied,
	}
}

func (m *KnowledgeProgressMapper) ToEntities(models []*model.KnowledgeProgress) []*entity.KnowledgeProgress {
	out := make([]*entity.KnowledgeProgress, 0, len(models))
	for _, p := range models {
		out = append(out, m.ToEntity(p))
	}
	return out
}
