package mapper

import (
	"ai-medtutor-be/internal/entity"
	"ai-medtutor-be/internal/model"
)

type VoiceSessionMapper struct{}

func NewVoiceSessionMapper() *VoiceSessionMapper {
	return &VoiceSessionMapper{}
}

func (m *VoiceSessionMapper) ToEntity(s *model.VoiceSession) *entity.VoiceSession {
	if s == nil {
		return nil
	}
	return &entity.VoiceSession{
		Id:         s.Id,
		UserId:     s.UserId,
		Topic:      s.Topic,
		Transcript: s.Transcript,
		AiResponse: s.AiResponse,
		Duration:   s.Duration,
		CreatedAt:  s.CreatedAt,
	}
}

func (m *VoiceSessionMapper) ToModel(s *entity.VoiceSession) *model.VoiceSession {
	if s == nil {
		return nil
	}
	return &model.VoiceSession{
		Id:         s.Id,
		UserId:     s.UserId,
		Topic:      s.Topic,
		Transcript: s.Transcript,
		AiResponse: s.AiResponse,
		Duration:   s.Duration,
		CreatedAt:  s.CreatedAt,
	}
}

func (m *VoiceSessionMapper) ToEntities(models []*model.VoiceSession) []*entity.VoiceSession {
	out := make([]*entity.VoiceSession, 0, len(models))
	for _, s := range models {
		out = append(out, m.ToEntity(s))
	}
	return out
}
