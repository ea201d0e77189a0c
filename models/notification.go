package models

import (
	"time"

	"gorm.io/datatypes"
)

// Notification categories. The set is closed: it is the wire contract
// between the schedulers/notifiers and the dispatcher, and the taxonomy of
// the delivery log.
const (
	CategoryReservationCreated   = "reservation_created"
	CategoryReservationCancelled = "reservation_cancelled"
	CategoryGroupTeeTime         = "group_tee_time"
	CategoryReminder24h          = "reminder_24h"
	CategoryReminder2h           = "reminder_2h"
)

// NotificationPreference is one row per user, created lazily with every
// toggle on. The reminder sub-toggles only take effect while
// RemindersEnabled is also on.
type NotificationPreference struct {
	ID                uint `gorm:"primaryKey"`
	UserID            uint `gorm:"uniqueIndex"`
	ReservationAlerts bool
	GroupActivity     bool
	RemindersEnabled  bool
	Reminder24h       bool
	Reminder2h        bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Delivery log lifecycle. A row is opened as pending before any gateway
// call and moved to exactly one terminal state afterwards.
const (
	DeliveryPending = "pending"
	DeliverySent    = "sent"
	DeliveryFailed  = "failed"
)

type NotificationLog struct {
	ID        uint              `gorm:"primaryKey"`
	UserID    uint              `gorm:"index"`
	Category  string            `gorm:"size:32;index"`
	Title     string            `gorm:"size:255"`
	Body      string            `gorm:"type:text"`
	Payload   datatypes.JSONMap `gorm:"type:json"`
	Status    string            `gorm:"size:16"`
	Error     string            `gorm:"type:text"`
	SentAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
