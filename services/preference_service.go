package services

import (
	"errors"

	"github.com/notmarkmiranda/golf-dads-api-sub000/models"

	"gorm.io/gorm"
)

type PreferenceService struct {
	db *gorm.DB
}

func NewPreferenceService(db *gorm.DB) *PreferenceService {
	return &PreferenceService{db: db}
}

// GetOrCreate returns the user's preference row, creating it with every
// toggle on the first time it is asked for.
func (s *PreferenceService) GetOrCreate(userID uint) (*models.NotificationPreference, error) {
	var pref models.NotificationPreference
	err := s.db.Where("user_id = ?", userID).First(&pref).Error
	if err == nil {
		return &pref, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pref = models.NotificationPreference{
		UserID:            userID,
		ReservationAlerts: true,
		GroupActivity:     true,
		RemindersEnabled:  true,
		Reminder24h:       true,
		Reminder2h:        true,
	}
	if err := s.db.Create(&pref).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}

// PreferenceInput carries a partial update: nil fields keep their value.
type PreferenceInput struct {
	ReservationAlerts *bool `json:"reservation_alerts"`
	GroupActivity     *bool `json:"group_activity"`
	RemindersEnabled  *bool `json:"reminders_enabled"`
	Reminder24h       *bool `json:"reminder_24h"`
	Reminder2h        *bool `json:"reminder_2h"`
}

func (s *PreferenceService) Update(userID uint, in PreferenceInput) (*models.NotificationPreference, error) {
	pref, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if in.ReservationAlerts != nil {
		pref.ReservationAlerts = *in.ReservationAlerts
	}
	if in.GroupActivity != nil {
		pref.GroupActivity = *in.GroupActivity
	}
	if in.RemindersEnabled != nil {
		pref.RemindersEnabled = *in.RemindersEnabled
	}
	if in.Reminder24h != nil {
		pref.Reminder24h = *in.Reminder24h
	}
	if in.Reminder2h != nil {
		pref.Reminder2h = *in.Reminder2h
	}

	if err := s.db.Save(pref).Error; err != nil {
		return nil, err
	}
	return pref, nil
}

// IsEnabled reports whether the user accepts the given category. Reminder
// categories require the master toggle and their own sub-toggle. Unknown
// categories are rejected.
func (s *PreferenceService) IsEnabled(userID uint, category string) bool {
	pref, err := s.GetOrCreate(userID)
	if err != nil {
		return false
	}

	switch category {
	case models.CategoryReservationCreated, models.CategoryReservationCancelled:
		return pref.ReservationAlerts
	case models.CategoryGroupTeeTime:
		return pref.GroupActivity
	case models.CategoryReminder24h:
		return pref.RemindersEnabled && pref.Reminder24h
	case models.CategoryReminder2h:
		return pref.RemindersEnabled && pref.Reminder2h
	default:
		return false
	}
}
