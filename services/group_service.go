package services

import (
	"errors"

	"github.com/notmarkmiranda/golf-dads-api-sub000/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GroupService struct {
	db *gorm.DB
}

func NewGroupService(db *gorm.DB) *GroupService {
	return &GroupService{db: db}
}

func (s *GroupService) Create(ownerID uint, name string) (*models.Group, error) {
	if name == "" {
		return nil, validationErrorf("group name is required")
	}
	group := models.Group{
		Name:       name,
		OwnerID:    ownerID,
		InviteCode: uuid.NewString(),
	}
	if err := s.db.Create(&group).Error; err != nil {
		return nil, err
	}
	if err := s.db.Create(&models.GroupMember{GroupID: group.ID, UserID: ownerID}).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (s *GroupService) Join(userID uint, inviteCode string) (*models.Group, error) {
	var group models.Group
	if err := s.db.Where("invite_code = ?", inviteCode).First(&group).Error; err != nil {
		return nil, errors.New("group not found")
	}
	member := models.GroupMember{GroupID: group.ID, UserID: userID}
	err := s.db.
		Where("group_id = ? AND user_id = ?", group.ID, userID).
		FirstOrCreate(&member).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (s *GroupService) Leave(userID, groupID uint) error {
	res := s.db.Where("group_id = ? AND user_id = ?", groupID, userID).Delete(&models.GroupMember{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("not a member of this group")
	}
	return nil
}

func (s *GroupService) Members(groupID uint) ([]models.User, error) {
	var users []models.User
	err := s.db.
		Joins("JOIN group_members gm ON gm.user_id = users.id").
		Where("gm.group_id = ?", groupID).
		Find(&users).Error
	return users, err
}

// SetMuted flips the caller's per-group mute. Muting only silences
// group-activity pushes for this group; the global preference toggles are
// untouched.
func (s *GroupService) SetMuted(userID, groupID uint, muted bool) error {
	res := s.db.Model(&models.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Update("muted", muted)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("not a member of this group")
	}
	return nil
}
