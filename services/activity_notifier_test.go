package services

import (
	"testing"
	"time"

	"github.com/notmarkmiranda/golf-dads-api-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestNotifier(t *testing.T, db *gorm.DB, push *PushService) *ActivityNotifier {
	t.Helper()
	return NewActivityNotifier(db, push, zap.NewNop().Sugar())
}

func createGroup(t *testing.T, db *gorm.DB, ownerID uint, name string) *models.Group {
	t.Helper()
	g := &models.Group{Name: name, OwnerID: ownerID, InviteCode: name + "-code"}
	require.NoError(t, db.Create(g).Error)
	require.NoError(t, db.Create(&models.GroupMember{GroupID: g.ID, UserID: ownerID}).Error)
	return g
}

func addMember(t *testing.T, db *gorm.DB, groupID, userID uint, muted bool) {
	t.Helper()
	require.NoError(t, db.Create(&models.GroupMember{GroupID: groupID, UserID: userID, Muted: muted}).Error)
}

func createGroupPosting(t *testing.T, db *gorm.DB, ownerID uint, course string, teeTime time.Time, groups ...models.Group) *models.Posting {
	t.Helper()
	p := &models.Posting{OwnerID: ownerID, CourseName: course, TeeTime: teeTime, Slots: 4, Groups: groups}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestPostingCreatedNoGroupsIsNoop(t *testing.T) {
	db := newTestDB(t)
	gw := newFakeGateway()
	push := newTestPush(t, db, gw)
	actor := createUser(t, db, "pat")
	createDevice(t, db, actor.ID, "tok-actor", "")

	p := createGroupPosting(t, db, actor.ID, "Augusta", time.Now().Add(48*time.Hour))
	newTestNotifier(t, db, push).PostingCreated(p.ID, actor.ID)

	assert.Empty(t, gw.calls, "public postings are not broadcast")
}

func TestPostingCreatedMissingPostingIsNoop(t *testing.T) {
	db := newTestDB(t)
	gw := newFakeGateway()
	push := newTestPush(t, db, gw)

	newTestNotifier(t, db, push).PostingCreated(9999, 1)

	assert.Empty(t, gw.calls)
}

func TestPostingCreatedExcludesActorAndMuted(t *testing.T) {
	db := newTestDB(t)
	gw := newFakeGateway()
	push := newTestPush(t, db, gw)

	actor := createUser(t, db, "pat")
	createDevice(t, db, actor.ID, "tok-actor", "")
	member := createUser(t, db, "sam")
	createDevice(t, db, member.ID, "tok-member", "")
	mutedMember := createUser(t, db, "lee")
	createDevice(t, db, mutedMember.ID, "tok-muted", "")

	g := createGroup(t, db, actor.ID, "dawn-patrol")
	addMember(t, db, g.ID, member.ID, false)
	addMember(t, db, g.ID, mutedMember.ID, true)

	p := createGroupPosting(t, db, actor.ID, "Augusta", time.Now().Add(48*time.Hour), *g)
	newTestNotifier(t, db, push).PostingCreated(p.ID, actor.ID)

	assert.Empty(t, gw.callsFor("tok-actor"), "never notify your own post")
	assert.Empty(t, gw.callsFor("tok-muted"))
	require.Len(t, gw.callsFor("tok-member"), 1)
}

// Two associated groups, three distinct members besides the actor. One of
// them is muted in one group only: they still get exactly one dispatch,
// for the unmuted group.
func TestPostingCreatedAcrossTwoGroups(t *testing.T) {
	db := newTestDB(t)
	gw := newFakeGateway()
	push := newTestPush(t, db, gw)

	actor := createUser(t, db, "pat")
	alice := createUser(t, db, "alice")
	createDevice(t, db, alice.ID, "tok-alice", "")
	bob := createUser(t, db, "bob")
	createDevice(t, db, bob.ID, "tok-bob", "")
	carol := createUser(t, db, "carol")
	createDevice(t, db, carol.ID, "tok-carol", "")

	g1 := createGroup(t, db, actor.ID, "weekday")
	addMember(t, db, g1.ID, alice.ID, false)
	addMember(t, db, g1.ID, bob.ID, false)

	g2 := createGroup(t, db, actor.ID, "weekend")
	addMember(t, db, g2.ID, bob.ID, true) // muted here only
	addMember(t, db, g2.ID, carol.ID, false)

	p := createGroupPosting(t, db, actor.ID, "Augusta", time.Now().Add(48*time.Hour), *g1, *g2)
	newTestNotifier(t, db, push).PostingCreated(p.ID, actor.ID)

	assert.Len(t, gw.callsFor("tok-alice"), 1)
	assert.Len(t, gw.callsFor("tok-bob"), 1, "muted in one group, still notified for the other")
	assert.Len(t, gw.callsFor("tok-carol"), 1)
}

func TestPostingCreatedBodyContents(t *testing.T) {
	db := newTestDB(t)
	gw := newFakeGateway()
	push := newTestPush(t, db, gw)

	actor := createUser(t, db, "") // no name set: falls back to email local part
	member := createUser(t, db, "sam")
	createDevice(t, db, member.ID, "tok-member", "America/Denver")

	g := createGroup(t, db, actor.ID, "dawn-patrol")
	addMember(t, db, g.ID, member.ID, false)

	teeTime := time.Date(2026, time.July, 4, 16, 0, 0, 0, time.UTC)
	p := createGroupPosting(t, db, actor.ID, "", teeTime, *g)
	newTestNotifier(t, db, push).PostingCreated(p.ID, actor.ID)

	calls := gw.callsFor("tok-member")
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Title, "dawn-patrol")
	assert.Contains(t, calls[0].Body, actor.DisplayName())
	assert.Contains(t, calls[0].Body, "Unknown Course")
	assert.Contains(t, calls[0].Body, "Jul 4 at 10:00am", "recipient's own timezone")
}
