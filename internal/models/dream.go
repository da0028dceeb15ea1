package models

import (
	"time"

	"gorm.io/gorm"
)

// Dream represents a journal entry. Interpretation and ImageURL start out null
// and are back-filled when the corresponding AI enrichment succeeds.
type Dream struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	// Token is the codec-obfuscated id used in shareable URLs. It is set by
	// the HTTP layer and never stored.
	Token          string         `gorm:"-" json:"token,omitempty"`
	Title          string         `gorm:"not null" json:"title"`
	Description    string         `gorm:"type:text;not null" json:"description"`
	Date           time.Time      `gorm:"not null;index" json:"date"`
	IsPublic       bool           `gorm:"not null;default:false;index" json:"isPublic"`
	Interpretation *string        `gorm:"type:text" json:"interpretation"`
	ImageURL       *string        `json:"imageUrl"`
	ImageStyle     *string        `json:"imageStyle"`
	UserID         uint           `gorm:"not null;index" json:"userId"`
	User           User           `gorm:"foreignKey:UserID" json:"user"`
	Likes          []DreamLike    `gorm:"foreignKey:DreamID" json:"likes"`
	Comments       []DreamComment `gorm:"foreignKey:DreamID" json:"comments"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// dreamDateHour is the fixed UTC hour dreams are pinned to so that the stored
// instant preserves the calendar date regardless of the client's timezone.
const dreamDateHour = 3

// NormalizeDreamDate coerces a client-supplied date to the canonical instant
// for that calendar date.
func NormalizeDreamDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), dreamDateHour, 0, 0, 0, time.UTC)
}
