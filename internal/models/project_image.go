package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectImage struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProjectID   uuid.UUID `json:"projectId" gorm:"type:uuid;not null;index"`
	URL         string    `json:"url" gorm:"type:text;not null"`
	Title       string    `json:"title" gorm:"type:text;not null"`
	Description string    `json:"description" gorm:"type:text"`
}

func (pi *ProjectImage) BeforeCreate(tx *gorm.DB) error {
	if pi.ID == uuid.Nil {
		pi.ID = uuid.New()
	}
	return nil
}
