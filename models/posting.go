package models

import (
	"time"

	"gorm.io/gorm"
)

// Posting is a tee time offered up for others to join. A posting with no
// associated groups is public and never broadcast.
type Posting struct {
	gorm.Model
	OwnerID    uint      `gorm:"index"`
	CourseName string    `gorm:"size:128"`
	TeeTime    time.Time `gorm:"index"`
	Notes      string    `gorm:"type:text"`
	Slots      int       `gorm:"default:4"`
	Groups     []Group   `gorm:"many2many:posting_groups"`
	Players    []PostingPlayer
}

type PostingPlayer struct {
	ID        uint `gorm:"primaryKey"`
	PostingID uint `gorm:"index:idx_posting_player,unique"`
	UserID    uint `gorm:"index:idx_posting_player,unique"`
	CreatedAt time.Time
}
