package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/notmarkmiranda/golf-dads-api-sub000/models"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TimePlaceholder marks where a message body wants the event time. When
// EventAt is set the dispatcher substitutes it per device, so every device
// sees the instant in its own timezone.
const TimePlaceholder = "{time}"

// Message is one logical notification for one user.
type Message struct {
	Category string
	Title    string
	Body     string
	Data     map[string]any
	EventAt  *time.Time
}

type DispatchSummary struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
}

type PushService struct {
	db      *gorm.DB
	gateway PushGateway
	prefs   *PreferenceService
	devices *DeviceService
	hub     *RealtimeHub // optional in-app feed
	log     *zap.SugaredLogger
}

func NewPushService(db *gorm.DB, gateway PushGateway, prefs *PreferenceService, devices *DeviceService, hub *RealtimeHub, log *zap.SugaredLogger) *PushService {
	return &PushService{db: db, gateway: gateway, prefs: prefs, devices: devices, hub: hub, log: log}
}

// Dispatch runs one notification attempt for one user. The sequence is
// fixed: preference gate, active-device fetch, pending log row, one gateway
// call per device, prune of gateway-invalidated tokens, terminal log
// update. A gated or device-less user gets no log row at all. The return
// is true only when at least one device accepted the push; a user with
// three devices and one success counts as notified. Nothing raised past
// the gate ever propagates to the caller.
func (s *PushService) Dispatch(userID uint, msg Message) bool {
	if !s.prefs.IsEnabled(userID, msg.Category) {
		return false
	}

	devs, err := s.devices.ActiveDevices(userID)
	if err != nil {
		s.log.Errorw("device lookup failed", "user", userID, "err", err)
		return false
	}
	if len(devs) == 0 {
		return false
	}

	entry := &models.NotificationLog{
		UserID:   userID,
		Category: msg.Category,
		Title:    msg.Title,
		Body:     s.renderBody(msg, ""), // audit copy keeps the UTC rendering
		Payload:  datatypes.JSONMap(msg.Data),
		Status:   models.DeliveryPending,
	}
	if err := s.db.Create(entry).Error; err != nil {
		s.log.Errorw("delivery log open failed", "user", userID, "err", err)
		return false
	}

	ok, sendErr := s.sendToDevices(msg, devs)
	if ok {
		now := time.Now()
		if err := s.db.Model(entry).Updates(map[string]any{
			"status":  models.DeliverySent,
			"sent_at": now,
		}).Error; err != nil {
			s.log.Errorw("delivery log close failed", "log", entry.ID, "err", err)
		}
		if s.hub != nil {
			s.hub.Broadcast(userID, map[string]any{
				"kind":     "notification",
				"category": msg.Category,
				"title":    msg.Title,
				"body":     entry.Body,
			})
		}
		return true
	}

	errText := "no device accepted the notification"
	if sendErr != nil {
		errText = sendErr.Error()
	}
	if err := s.db.Model(entry).Updates(map[string]any{
		"status": models.DeliveryFailed,
		"error":  errText,
	}).Error; err != nil {
		s.log.Errorw("delivery log close failed", "log", entry.ID, "err", err)
	}
	return false
}

// DispatchToMany runs Dispatch per user, independently. One user's failure
// never short-circuits the rest; the counts always sum to len(userIDs).
func (s *PushService) DispatchToMany(userIDs []uint, msg Message) DispatchSummary {
	var sum DispatchSummary
	for _, id := range userIDs {
		if s.Dispatch(id, msg) {
			sum.Success++
		} else {
			sum.Failure++
		}
	}
	return sum
}

// sendToDevices fires the gateway once per device and aggregates. Any
// panic is converted into a failed attempt so a broken payload cannot take
// down a scheduler sweep.
func (s *PushService) sendToDevices(msg Message, devs []models.UserDevice) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			err = fmt.Errorf("dispatch panic: %v", r)
		}
	}()

	data := coercePayload(msg.Data)
	ctx := context.Background()

	var delivered int
	var invalid []string
	var lastErr error
	for _, dev := range devs {
		resp, callErr := s.gateway.Send(ctx, dev.Token, msg.Title, s.renderBody(msg, dev.Timezone), data)
		switch {
		case callErr != nil:
			lastErr = callErr
		case resp.Delivered():
			delivered++
		case resp.TokenInvalid():
			invalid = append(invalid, dev.Token)
		default:
			lastErr = fmt.Errorf("gateway status %d: %s", resp.StatusCode, truncate(resp.Body, 200))
		}
	}

	if len(invalid) > 0 {
		if pruneErr := s.devices.PruneTokens(invalid); pruneErr != nil {
			s.log.Errorw("prune of invalid tokens failed", "count", len(invalid), "err", pruneErr)
		}
	}

	if delivered > 0 {
		return true, nil
	}
	if lastErr == nil && len(invalid) > 0 {
		lastErr = fmt.Errorf("all %d device tokens invalid", len(invalid))
	}
	if lastErr == nil {
		lastErr = errors.New("no device accepted the notification")
	}
	return false, lastErr
}

func (s *PushService) renderBody(msg Message, tz string) string {
	if msg.EventAt == nil || !strings.Contains(msg.Body, TimePlaceholder) {
		return msg.Body
	}
	return strings.ReplaceAll(msg.Body, TimePlaceholder, FormatEventTime(*msg.EventAt, tz))
}

// coercePayload flattens the payload for the gateway wire format, which
// only carries string values. Numbers and booleans are stringified
// losslessly; anything structured is JSON-encoded.
func coercePayload(data map[string]any) map[string]string {
	if len(data) == 0 {
		return nil
	}
	out := make(map[string]string, len(data))
	for k, v := range data {
		switch t := v.(type) {
		case string:
			out[k] = t
		case bool:
			out[k] = strconv.FormatBool(t)
		case int:
			out[k] = strconv.Itoa(t)
		case int64:
			out[k] = strconv.FormatInt(t, 10)
		case uint:
			out[k] = strconv.FormatUint(uint64(t), 10)
		case float64:
			out[k] = strconv.FormatFloat(t, 'f', -1, 64)
		case time.Time:
			out[k] = t.UTC().Format(time.RFC3339)
		default:
			raw, err := json.Marshal(v)
			if err != nil {
				out[k] = fmt.Sprintf("%v", v)
				continue
			}
			out[k] = string(raw)
		}
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
