package mapper

import (
	"time"

	"ai-medtutor-be/internal/entity"
	"ai-medtutor-be/internal/model"
)

type ContentItemMapper struct{}

func NewContentItemMapper() *ContentItemMapper {
	return &ContentItemMapper{}
}

func (m *ContentItemMapper) ToEntity(c *model.ContentItem) *entity.ContentItem {
	if c == nil {
		return nil
	}
	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() && !c.UpdatedAt.Equal(c.CreatedAt) {
		t := c.UpdatedAt
		updatedAt = &t
	}
	return &entity.ContentItem{
		Id:          c.Id,
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Tags:        c.Tags,
		ContentType: c.ContentType,
		Body:        c.Body,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ContentItemMapper) ToModel(c *entity.ContentItem) *model.ContentItem {
	if c == nil {
		return nil
	}
	out := &model.ContentItem{
		Id:          c.Id,
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Tags:        c.Tags,
		ContentType: c.ContentType,
		Body:        c.Body,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
	if c.UpdatedAt != nil {
		out.UpdatedAt = *c.UpdatedAt
	}
	return out
}

func (m *ContentItemMapper) ToEntities(models []*model.ContentItem) []*entity.ContentItem {
	out := make([]*entity.ContentItem, 0, len(models))
	for _, c := range models {
		out = append(out, m.ToEntity(c))
	}
	return out
}
