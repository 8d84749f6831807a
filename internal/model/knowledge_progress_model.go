package model

import (
	"time"

	"github.com/google/uuid"
)

type KnowledgeProgress struct {
	Id                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId             uuid.UUID  `gorm:"type:uuid;not null;index:idx_progress_user_area,unique"`
	Area               string     `gorm:"type:varchar(100);not null;index:idx_progress_user_area,unique"`
	ProgressPercentage int        `gorm:"not null;default:0"`
	LastStudied        *time.Time
}

func (KnowledgeProgress) TableName() string {
	return "knowledge_progress"
}
