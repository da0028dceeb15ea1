package models

import "time"

// Default settings for lazily created UserSettings rows.
const (
	DefaultLanguage = "pt-BR"
	DefaultTheme    = "system"
)

// UserSettings holds per-user presentation preferences.
type UserSettings struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"userId"`
	Language  string    `gorm:"not null" json:"language"`
	Theme     string    `gorm:"not null" json:"theme"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
