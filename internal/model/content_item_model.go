package model

import (
	"time"

	"gorm.io/datatypes"
)

type ContentItem struct {
	Id          string                      `gorm:"type:varchar(64);primaryKey"`
	Title       string                      `gorm:"type:varchar(255);not null"`
	Description string                      `gorm:"type:text"`
	Category    string                      `gorm:"type:varchar(100);not null;index"`
	Tags        datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	ContentType string                      `gorm:"type:varchar(20);not null;default:'text'"`
	Body        string                      `gorm:"type:text"`
	IsActive    bool                        `gorm:"default:true;index"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime"`
}

func (ContentItem) TableName() string {
	return "content_library"
}
