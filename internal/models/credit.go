package models

import "time"

// DefaultCreditAmount is the starting balance granted to every new user.
const DefaultCreditAmount = 2

// Credit is the per-user balance of AI enrichment operations. The CHECK
// constraint is the storage-level backstop; Deduct additionally guards the
// decrement so a race can never drive the balance negative.
type Credit struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"userId"`
	Amount    int       `gorm:"not null;check:amount >= 0" json:"amount"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
