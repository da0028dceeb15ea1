package models

import "time"

// DreamLike represents a user's like on a dream.
// The combination of DreamID and UserID must be unique.
type DreamLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DreamID   uint      `gorm:"not null;uniqueIndex:idx_dream_user" json:"dreamId"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_dream_user" json:"userId"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Dream Dream `gorm:"foreignKey:DreamID" json:"dream,omitempty"`
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
