package services

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/notmarkmiranda/golf-dads-api-sub000/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.GroupMember{},
		&models.Posting{},
		&models.PostingPlayer{},
		&models.Reservation{},
		&models.UserDevice{},
		&models.NotificationPreference{},
		&models.NotificationLog{},
	))
	return db
}

type gatewayCall struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

// fakeGateway records every call and answers per token. Tokens without a
// scripted response are accepted.
type fakeGateway struct {
	mu        sync.Mutex
	calls     []gatewayCall
	responses map[string]*GatewayResponse
	errs      map[string]error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		responses: make(map[string]*GatewayResponse),
		errs:      make(map[string]error),
	}
}

func (g *fakeGateway) Send(_ context.Context, token, title, body string, data map[string]string) (*GatewayResponse, error) {
	g.mu.Lock()
	g.calls = append(g.calls, gatewayCall{Token: token, Title: title, Body: body, Data: data})
	g.mu.Unlock()

	if err, ok := g.errs[token]; ok {
		return nil, err
	}
	if resp, ok := g.responses[token]; ok {
		return resp, nil
	}
	return &GatewayResponse{StatusCode: http.StatusOK, Body: `{"status":"ok"}`}, nil
}

func (g *fakeGateway) callsFor(token string) []gatewayCall {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []gatewayCall
	for _, c := range g.calls {
		if c.Token == token {
			out = append(out, c)
		}
	}
	return out
}

func newTestPush(t *testing.T, db *gorm.DB, gw PushGateway) *PushService {
	t.Helper()
	return NewPushService(
		db, gw,
		NewPreferenceService(db),
		NewDeviceService(db),
		nil,
		zap.NewNop().Sugar(),
	)
}

var userSeq int

func createUser(t *testing.T, db *gorm.DB, firstName string) *models.User {
	t.Helper()
	userSeq++
	u := &models.User{
		Email:     fmt.Sprintf("%s%d@example.com", firstName, userSeq),
		Password:  "x",
		FirstName: firstName,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createDevice(t *testing.T, db *gorm.DB, userID uint, token, tz string) *models.UserDevice {
	t.Helper()
	d := &models.UserDevice{
		UserID:     userID,
		Token:      token,
		Platform:   "ios",
		Timezone:   tz,
		LastUsedAt: time.Now(),
	}
	require.NoError(t, db.Create(d).Error)
	return d
}

func logEntries(t *testing.T, db *gorm.DB, userID uint) []models.NotificationLog {
	t.Helper()
	var out []models.NotificationLog
	require.NoError(t, db.Where("user_id = ?", userID).Find(&out).Error)
	return out
}
