package models

import (
	"time"

	"gorm.io/gorm"
)

type Group struct {
	gorm.Model
	Name       string `gorm:"size:128;not null"`
	OwnerID    uint   `gorm:"index"`
	InviteCode string `gorm:"size:36;uniqueIndex"`
}

// GroupMember links a user into a group. Muted suppresses group-activity
// pushes for this group only; it is independent of the user's global
// notification preferences.
type GroupMember struct {
	ID        uint `gorm:"primaryKey"`
	GroupID   uint `gorm:"index:idx_group_member,unique"`
	UserID    uint `gorm:"index:idx_group_member,unique"`
	Muted     bool `gorm:"default:false"`
	CreatedAt time.Time
}
