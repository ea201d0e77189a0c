package services

import (
	"testing"

	"github.com/notmarkmiranda/golf-dads-api-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestPreferenceGetOrCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewPreferenceService(db)
	user := createUser(t, db, "pat")

	pref, err := svc.GetOrCreate(user.ID)
	require.NoError(t, err)
	assert.True(t, pref.ReservationAlerts)
	assert.True(t, pref.GroupActivity)
	assert.True(t, pref.RemindersEnabled)
	assert.True(t, pref.Reminder24h)
	assert.True(t, pref.Reminder2h)

	// second call returns the same row, no duplicate
	again, err := svc.GetOrCreate(user.ID)
	require.NoError(t, err)
	assert.Equal(t, pref.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&models.NotificationPreference{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestPreferencePartialUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewPreferenceService(db)
	user := createUser(t, db, "pat")

	pref, err := svc.Update(user.ID, PreferenceInput{GroupActivity: boolPtr(false)})
	require.NoError(t, err)

	assert.False(t, pref.GroupActivity)
	// untouched fields keep their value
	assert.True(t, pref.ReservationAlerts)
	assert.True(t, pref.Reminder24h)
}

func TestIsEnabled(t *testing.T) {
	db := newTestDB(t)
	svc := NewPreferenceService(db)
	user := createUser(t, db, "pat")

	tests := []struct {
		name     string
		input    PreferenceInput
		category string
		want     bool
	}{
		{
			name:     "reservation created follows the reservations toggle",
			category: models.CategoryReservationCreated,
			want:     true,
		},
		{
			name:     "reservation cancelled follows the reservations toggle",
			input:    PreferenceInput{ReservationAlerts: boolPtr(false)},
			category: models.CategoryReservationCancelled,
			want:     false,
		},
		{
			name:     "group tee time follows the group toggle",
			input:    PreferenceInput{GroupActivity: boolPtr(false)},
			category: models.CategoryGroupTeeTime,
			want:     false,
		},
		{
			name:     "reminder sub-toggle off wins even with master on",
			input:    PreferenceInput{RemindersEnabled: boolPtr(true), Reminder24h: boolPtr(false)},
			category: models.CategoryReminder24h,
			want:     false,
		},
		{
			name:     "reminder master off wins even with sub-toggle on",
			input:    PreferenceInput{RemindersEnabled: boolPtr(false), Reminder2h: boolPtr(true)},
			category: models.CategoryReminder2h,
			want:     false,
		},
		{
			name:     "reminder on needs both toggles",
			input:    PreferenceInput{RemindersEnabled: boolPtr(true), Reminder2h: boolPtr(true)},
			category: models.CategoryReminder2h,
			want:     true,
		},
		{
			name:     "unknown category fails closed",
			category: "marketing_blast",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(user.ID, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, svc.IsEnabled(user.ID, tt.category))
		})
	}
}
