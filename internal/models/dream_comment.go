package models

import (
	"time"

	"gorm.io/gorm"
)

// DreamComment represents a comment on a dream.
type DreamComment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Content   string         `gorm:"not null" json:"content"`
	DreamID   uint           `gorm:"not null;index" json:"dreamId"`
	UserID    uint           `gorm:"not null" json:"userId"`
	Dream     Dream          `gorm:"foreignKey:DreamID" json:"dream,omitempty"`
	User      User           `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
