package services

import (
	"errors"
	"fmt"

	"github.com/notmarkmiranda/golf-dads-api-sub000/models"
	"github.com/notmarkmiranda/golf-dads-api-sub000/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ReservationService struct {
	db   *gorm.DB
	push *PushService
	log  *zap.SugaredLogger
}

func NewReservationService(db *gorm.DB, push *PushService, log *zap.SugaredLogger) *ReservationService {
	return &ReservationService{db: db, push: push, log: log}
}

// Create books the user onto a posting and tells the posting owner. The
// push and the confirmation email are both best-effort.
func (s *ReservationService) Create(userID, postingID uint) (*models.Reservation, error) {
	var posting models.Posting
	if err := s.db.First(&posting, postingID).Error; err != nil {
		return nil, errors.New("posting not found")
	}

	res := models.Reservation{
		PostingID: postingID,
		UserID:    userID,
		Status:    models.ReservationConfirmed,
	}
	if err := s.db.Create(&res).Error; err != nil {
		return nil, err
	}

	course := posting.CourseName
	if course == "" {
		course = "Unknown Course"
	}
	teeTime := posting.TeeTime

	var reserver models.User
	if err := s.db.First(&reserver, userID).Error; err == nil {
		if posting.OwnerID != userID {
			s.push.Dispatch(posting.OwnerID, Message{
				Category: models.CategoryReservationCreated,
				Title:    "New reservation",
				Body:     fmt.Sprintf("%s reserved a spot at %s, %s.", reserver.DisplayName(), course, TimePlaceholder),
				Data: map[string]any{
					"posting_id":     posting.ID,
					"reservation_id": res.ID,
				},
				EventAt: &teeTime,
			})
		}
		if err := utils.SendReservationEmail(reserver.Email, course, FormatEventTime(posting.TeeTime, "")); err != nil {
			s.log.Warnw("confirmation email failed", "reservation", res.ID, "err", err)
		}
	}

	return &res, nil
}

// Cancel marks the caller's reservation cancelled and tells the posting
// owner. Cancelling an already-cancelled reservation is a no-op.
func (s *ReservationService) Cancel(userID, reservationID uint) error {
	var res models.Reservation
	if err := s.db.Where("id = ? AND user_id = ?", reservationID, userID).First(&res).Error; err != nil {
		return errors.New("reservation not found")
	}
	if res.Status == models.ReservationCancelled {
		return nil
	}

	if err := s.db.Model(&res).Update("status", models.ReservationCancelled).Error; err != nil {
		return err
	}

	var posting models.Posting
	if err := s.db.First(&posting, res.PostingID).Error; err != nil {
		return nil
	}
	if posting.OwnerID == userID {
		return nil
	}

	course := posting.CourseName
	if course == "" {
		course = "Unknown Course"
	}
	teeTime := posting.TeeTime

	var reserver models.User
	name := "Someone"
	if err := s.db.First(&reserver, userID).Error; err == nil {
		name = reserver.DisplayName()
	}
	s.push.Dispatch(posting.OwnerID, Message{
		Category: models.CategoryReservationCancelled,
		Title:    "Reservation cancelled",
		Body:     fmt.Sprintf("%s cancelled their spot at %s, %s.", name, course, TimePlaceholder),
		Data: map[string]any{
			"posting_id":     posting.ID,
			"reservation_id": res.ID,
		},
		EventAt: &teeTime,
	})
	return nil
}

func (s *ReservationService) ListForUser(userID uint) ([]models.Reservation, error) {
	var out []models.Reservation
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&out).Error
	return out, err
}
