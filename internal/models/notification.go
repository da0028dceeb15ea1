package models

import "time"

// Notification types.
const (
	NotificationTypeLike    = "LIKE"
	NotificationTypeComment = "COMMENT"
)

// Notification is addressed to a dream's owner when another user likes or
// comments on one of their dreams.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"not null" json:"type"`
	Read      bool      `gorm:"not null;default:false;index" json:"read"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	DreamID   uint      `gorm:"not null" json:"dreamId"`
	Dream     Dream     `gorm:"foreignKey:DreamID" json:"dream,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
