package services

import (
	"errors"
	"strings"
	"time"

	"github.com/notmarkmiranda/golf-dads-api-sub000/models"

	"gorm.io/gorm"
)

// Devices older than this are considered stale and skipped by the
// dispatcher.
const deviceActiveWindow = 30 * 24 * time.Hour

type DeviceService struct {
	db *gorm.DB
}

func NewDeviceService(db *gorm.DB) *DeviceService {
	return &DeviceService{db: db}
}

// Register upserts a device by token. A token already known under another
// account is reassigned to the caller (the device changed hands). The
// last-used timestamp is always refreshed.
func (s *DeviceService) Register(userID uint, token, platform, timezone string) (*models.UserDevice, error) {
	platform = strings.ToLower(platform)
	if platform != "ios" && platform != "android" {
		return nil, validationErrorf("unknown platform %q", platform)
	}
	if timezone != "" {
		if _, err := time.LoadLocation(timezone); err != nil {
			return nil, validationErrorf("unknown timezone %q", timezone)
		}
	}

	now := time.Now()
	var dev models.UserDevice
	err := s.db.Where("token = ?", token).First(&dev).Error
	switch {
	case err == nil:
		dev.UserID = userID
		dev.Platform = platform
		dev.Timezone = timezone
		dev.LastUsedAt = now
		if err := s.db.Save(&dev).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		dev = models.UserDevice{
			UserID:     userID,
			Token:      token,
			Platform:   platform,
			Timezone:   timezone,
			LastUsedAt: now,
		}
		if err := s.db.Create(&dev).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	return &dev, nil
}

// Unregister removes the caller's device. A token that does not exist and a
// token owned by someone else both come back as ErrDeviceNotFound.
func (s *DeviceService) Unregister(userID uint, token string) error {
	res := s.db.Where("user_id = ? AND token = ?", userID, token).Delete(&models.UserDevice{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDeviceNotFound
	}
	return nil
}

// ActiveDevices returns the user's endpoints seen within the last 30 days,
// most recently used first.
func (s *DeviceService) ActiveDevices(userID uint) ([]models.UserDevice, error) {
	cutoff := time.Now().Add(-deviceActiveWindow)
	var devs []models.UserDevice
	err := s.db.
		Where("user_id = ? AND last_used_at > ?", userID, cutoff).
		Order("last_used_at DESC").
		Find(&devs).Error
	return devs, err
}

// PruneTokens deletes devices the gateway reported as permanently invalid,
// whoever owns them by now. Tokens already gone are ignored.
func (s *DeviceService) PruneTokens(tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	return s.db.Where("token IN ?", tokens).Delete(&models.UserDevice{}).Error
}
