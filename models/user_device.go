package models

import "time"

// UserDevice is one push endpoint. The token is unique across all users:
// a token that shows up under a new account is reassigned, never duplicated.
type UserDevice struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"index"`
	Token      string    `gorm:"size:255;uniqueIndex"`
	Platform   string    `gorm:"size:16"` // "android" | "ios"
	Timezone   string    `gorm:"size:64"` // IANA name; empty when the client never reported one
	LastUsedAt time.Time `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
