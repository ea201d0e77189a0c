package services

import (
	"testing"
	"time"

	"github.com/notmarkmiranda/golf-dads-api-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostingCreateBroadcastsToGroup(t *testing.T) {
	db := newTestDB(t)
	gw := newFakeGateway()
	push := newTestPush(t, db, gw)
	svc := NewPostingService(db, newTestNotifier(t, db, push))

	owner := createUser(t, db, "pat")
	member := createUser(t, db, "sam")
	createDevice(t, db, member.ID, "tok-member", "")

	g := createGroup(t, db, owner.ID, "dawn-patrol")
	addMember(t, db, g.ID, member.ID, false)

	posting, err := svc.Create(owner.ID, PostingInput{
		CourseName: "Augusta",
		TeeTime:    time.Now().Add(48 * time.Hour),
		GroupIDs:   []uint{g.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, posting.Slots, "default party size")

	require.Len(t, gw.callsFor("tok-member"), 1)

	// owner is automatically a player
	var player models.PostingPlayer
	require.NoError(t, db.Where("posting_id = ? AND user_id = ?", posting.ID, owner.ID).First(&player).Error)
}

func TestPostingCreateIgnoresForeignGroups(t *testing.T) {
	db := newTestDB(t)
	gw := newFakeGateway()
	push := newTestPush(t, db, gw)
	svc := NewPostingService(db, newTestNotifier(t, db, push))

	owner := createUser(t, db, "pat")
	stranger := createUser(t, db, "sam")
	strangersGroup := createGroup(t, db, stranger.ID, "private")
	createDevice(t, db, stranger.ID, "tok-stranger", "")

	// owner is not a member of strangersGroup: association is dropped
	posting, err := svc.Create(owner.ID, PostingInput{
		CourseName: "Augusta",
		TeeTime:    time.Now().Add(48 * time.Hour),
		GroupIDs:   []uint{strangersGroup.ID},
	})
	require.NoError(t, err)

	loaded, err := svc.Get(posting.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Groups)
	assert.Empty(t, gw.calls)
}

func TestPostingJoinAndSlots(t *testing.T) {
	db := newTestDB(t)
	push := newTestPush(t, db, newFakeGateway())
	svc := NewPostingService(db, newTestNotifier(t, db, push))

	owner := createUser(t, db, "pat")
	posting, err := svc.Create(owner.ID, PostingInput{
		CourseName: "Augusta",
		TeeTime:    time.Now().Add(48 * time.Hour),
		Slots:      2,
	})
	require.NoError(t, err)

	second := createUser(t, db, "sam")
	require.NoError(t, svc.Join(posting.ID, second.ID))
	// joining twice is a no-op
	require.NoError(t, svc.Join(posting.ID, second.ID))

	third := createUser(t, db, "lee")
	assert.Error(t, svc.Join(posting.ID, third.ID), "posting is full")
}

func TestPostingDeleteOwnerOnly(t *testing.T) {
	db := newTestDB(t)
	push := newTestPush(t, db, newFakeGateway())
	svc := NewPostingService(db, newTestNotifier(t, db, push))

	owner := createUser(t, db, "pat")
	other := createUser(t, db, "sam")
	posting, err := svc.Create(owner.ID, PostingInput{
		CourseName: "Augusta",
		TeeTime:    time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)

	assert.Error(t, svc.Delete(posting.ID, other.ID))
	require.NoError(t, svc.Delete(posting.ID, owner.ID))

	_, err = svc.Get(posting.ID)
	assert.Error(t, err)
}
