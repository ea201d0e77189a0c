package services

import (
	"testing"

	"github.com/notmarkmiranda/golf-dads-api-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupCreateAndJoin(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupService(db)
	owner := createUser(t, db, "pat")
	joiner := createUser(t, db, "sam")

	group, err := svc.Create(owner.ID, "dawn-patrol")
	require.NoError(t, err)
	assert.NotEmpty(t, group.InviteCode)

	joined, err := svc.Join(joiner.ID, group.InviteCode)
	require.NoError(t, err)
	assert.Equal(t, group.ID, joined.ID)

	// joining twice stays a single membership
	_, err = svc.Join(joiner.ID, group.InviteCode)
	require.NoError(t, err)

	members, err := svc.Members(group.ID)
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestGroupJoinUnknownCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupService(db)
	user := createUser(t, db, "pat")

	_, err := svc.Join(user.ID, "nope")
	assert.Error(t, err)
}

func TestGroupSetMuted(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupService(db)
	owner := createUser(t, db, "pat")
	outsider := createUser(t, db, "sam")

	group, err := svc.Create(owner.ID, "dawn-patrol")
	require.NoError(t, err)

	require.NoError(t, svc.SetMuted(owner.ID, group.ID, true))

	var member models.GroupMember
	require.NoError(t, db.Where("group_id = ? AND user_id = ?", group.ID, owner.ID).First(&member).Error)
	assert.True(t, member.Muted)

	// not a member: nothing to mute
	assert.Error(t, svc.SetMuted(outsider.ID, group.ID, true))
}

func TestGroupLeave(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupService(db)
	owner := createUser(t, db, "pat")

	group, err := svc.Create(owner.ID, "dawn-patrol")
	require.NoError(t, err)

	require.NoError(t, svc.Leave(owner.ID, group.ID))
	assert.Error(t, svc.Leave(owner.ID, group.ID), "already gone")
}
