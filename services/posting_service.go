package services

import (
	"errors"
	"time"

	"github.com/notmarkmiranda/golf-dads-api-sub000/models"

	"gorm.io/gorm"
)

type PostingService struct {
	db       *gorm.DB
	notifier *ActivityNotifier
}

func NewPostingService(db *gorm.DB, notifier *ActivityNotifier) *PostingService {
	return &PostingService{db: db, notifier: notifier}
}

type PostingInput struct {
	CourseName string    `json:"course_name" binding:"required"`
	TeeTime    time.Time `json:"tee_time" binding:"required"`
	Notes      string    `json:"notes"`
	Slots      int       `json:"slots"`
	GroupIDs   []uint    `json:"group_ids"`
}

// Create stores the posting and fans it out to the associated groups. Only
// groups the owner actually belongs to are attached.
func (s *PostingService) Create(ownerID uint, in PostingInput) (*models.Posting, error) {
	posting := models.Posting{
		OwnerID:    ownerID,
		CourseName: in.CourseName,
		TeeTime:    in.TeeTime,
		Notes:      in.Notes,
		Slots:      in.Slots,
	}
	if posting.Slots <= 0 {
		posting.Slots = 4
	}

	if len(in.GroupIDs) > 0 {
		var groups []models.Group
		err := s.db.
			Joins("JOIN group_members gm ON gm.group_id = groups.id AND gm.user_id = ?", ownerID).
			Where("groups.id IN ?", in.GroupIDs).
			Find(&groups).Error
		if err != nil {
			return nil, err
		}
		posting.Groups = groups
	}

	if err := s.db.Create(&posting).Error; err != nil {
		return nil, err
	}
	// the owner plays their own tee time
	if err := s.db.Create(&models.PostingPlayer{PostingID: posting.ID, UserID: ownerID}).Error; err != nil {
		return nil, err
	}

	s.notifier.PostingCreated(posting.ID, ownerID)
	return &posting, nil
}

func (s *PostingService) Get(postingID uint) (*models.Posting, error) {
	var posting models.Posting
	err := s.db.Preload("Groups").Preload("Players").First(&posting, postingID).Error
	if err != nil {
		return nil, errors.New("posting not found")
	}
	return &posting, nil
}

// Upcoming lists postings visible to the user: their own, ones they play
// in, and ones shared with their groups.
func (s *PostingService) Upcoming(userID uint) ([]models.Posting, error) {
	var postings []models.Posting
	err := s.db.
		Distinct("postings.*").
		Joins("LEFT JOIN posting_players pp ON pp.posting_id = postings.id").
		Joins("LEFT JOIN posting_groups pg ON pg.posting_id = postings.id").
		Joins("LEFT JOIN group_members gm ON gm.group_id = pg.group_id").
		Where("postings.tee_time > ?", time.Now()).
		Where("postings.owner_id = ? OR pp.user_id = ? OR gm.user_id = ?", userID, userID, userID).
		Order("postings.tee_time ASC").
		Find(&postings).Error
	return postings, err
}

// Join adds the user as a player. Joining twice is a no-op.
func (s *PostingService) Join(postingID, userID uint) error {
	var posting models.Posting
	if err := s.db.Preload("Players").First(&posting, postingID).Error; err != nil {
		return errors.New("posting not found")
	}
	for _, p := range posting.Players {
		if p.UserID == userID {
			return nil
		}
	}
	if posting.Slots > 0 && len(posting.Players) >= posting.Slots {
		return errors.New("posting is full")
	}
	return s.db.Create(&models.PostingPlayer{PostingID: postingID, UserID: userID}).Error
}

func (s *PostingService) Delete(postingID, ownerID uint) error {
	res := s.db.Where("id = ? AND owner_id = ?", postingID, ownerID).Delete(&models.Posting{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("posting not found")
	}
	return nil
}
