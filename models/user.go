package models

import (
	"strings"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email      string `gorm:"uniqueIndex;not null"`
	Password   string `gorm:"not null"`
	FirstName  string
	LastName   string
	AvatarURL  string
	Handicap   float64
	HomeCourse string
	Disabled   bool
	ResetCode  string `gorm:"size:64"`
}

// DisplayName falls back to the local part of the email address for
// accounts that never filled in a name.
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name != "" {
		return name
	}
	if i := strings.Index(u.Email, "@"); i > 0 {
		return u.Email[:i]
	}
	return u.Email
}
