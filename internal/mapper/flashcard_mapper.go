package mapper

import (
	"ai-medtutor-be/internal/entity"
	"ai-medtutor-be/internal/model"
)

type FlashcardMapper struct{}

func NewFlashcardMapper() *FlashcardMapper {
	return &FlashcardMapper{}
}

func (m *FlashcardMapper) ToEntity(c *model.FlashCard) *entity.FlashCard {
	if c == nil {
		return nil
	}
	return &entity.FlashCard{
		Id:         c.Id,
		Question:   c.Question,
		Answer:     c.Answer,
		Category:   c.Category,
		Difficulty: c.Difficulty,
		Tags:       c.Tags,
	}
}

func (m *FlashcardMapper) ToModel(c *entity.FlashCard) *model.FlashCard {
	if c == nil {
		return nil
	}
	return &model.FlashCard{
		Id:         c.Id,
		Question:   c.Question,
		Answer:     c.Answer,
		Category:   c.Category,
		Difficulty: c.Difficulty,
		Tags:       c.Tags,
	}
}

func (m *FlashcardMapper) ToEntities(models []*model.FlashCard) []*entity.FlashCard {
	out := make([]*entity.FlashCard, 0, len(models))
	for _, c := range models {
		out = append(out, m.ToEntity(c))
	}
	return out
}

func (m *FlashcardMapper) ReviewToEntity(r *model.FlashcardReview) *entity.FlashcardReview {
	if r == nil {
		return nil
	}
	return &entity.FlashcardReview{
		Id:               r.Id,
		UserId:           r.UserId,
		FlashcardId:      r.FlashcardId,
		DifficultyRating: r.DifficultyRating,
		ReviewedAt:       r.ReviewedAt,
		NextReviewAt:     r.NextReviewAt,
	}
}

func (m *FlashcardMapper) ReviewToModel(r *entity.FlashcardReview) *model.FlashcardReview {
	if r == nil {
		return nil
	}
	return &model.FlashcardReview{
		Id:               r.Id,
		UserId:           r.UserId,
		FlashcardId:      r.FlashcardId,
		DifficultyRating: r.DifficultyRating,
		ReviewedAt:       r.ReviewedAt,
		NextReviewAt:     r.NextReviewAt,
	}
}

func (m *FlashcardMapper) ReviewsToEntities(models []*model.FlashcardReview) []*entity.FlashcardReview {
	out := make([]*entity.FlashcardReview, 0, len(models))
	for _, r := range models {
		out = append(out, m.ReviewToEntity(r))
	}
	return out
}
