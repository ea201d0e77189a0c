package models

import "gorm.io/gorm"

const (
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

type Reservation struct {
	gorm.Model
	PostingID uint   `gorm:"index"`
	UserID    uint   `gorm:"index"`
	Status    string `gorm:"size:16"`
}
