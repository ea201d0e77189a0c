package services

import (
	"fmt"

	"github.com/notmarkmiranda/golf-dads-api-sub000/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ActivityNotifier announces a new posting to the members of each group it
// was shared with.
type ActivityNotifier struct {
	db   *gorm.DB
	push *PushService
	log  *zap.SugaredLogger
}

func NewActivityNotifier(db *gorm.DB, push *PushService, log *zap.SugaredLogger) *ActivityNotifier {
	return &ActivityNotifier{db: db, push: push, log: log}
}

// PostingCreated fans one batch dispatch out per associated group. The
// actor never hears about their own posting, and members who muted a group
// are skipped for that group only. A member of two associated groups may
// get the message twice; that duplication is accepted rather than
// deduplicated across groups.
func (n *ActivityNotifier) PostingCreated(postingID, actorID uint) {
	var posting models.Posting
	if err := n.db.Preload("Groups").First(&posting, postingID).Error; err != nil {
		n.log.Warnw("group fanout: posting not found", "posting", postingID, "err", err)
		return
	}
	if len(posting.Groups) == 0 {
		return // public posting, no broadcast
	}

	actorName := "Someone"
	var actor models.User
	if err := n.db.First(&actor, actorID).Error; err == nil {
		actorName = actor.DisplayName()
	}

	course := posting.CourseName
	if course == "" {
		course = "Unknown Course"
	}
	teeTime := posting.TeeTime

	for _, g := range posting.Groups {
		var members []models.GroupMember
		err := n.db.
			Where("group_id = ? AND user_id <> ? AND muted = ?", g.ID, actorID, false).
			Find(&members).Error
		if err != nil {
			n.log.Errorw("group fanout: member query failed", "group", g.ID, "err", err)
			continue
		}
		if len(members) == 0 {
			continue
		}

		ids := make([]uint, 0, len(members))
		for _, m := range members {
			ids = append(ids, m.UserID)
		}

		sum := n.push.DispatchToMany(ids, Message{
			Category: models.CategoryGroupTeeTime,
			Title:    fmt.Sprintf("New tee time in %s", g.Name),
			Body:     fmt.Sprintf("%s posted a tee time at %s, %s.", actorName, course, TimePlaceholder),
			Data: map[string]any{
				"posting_id": posting.ID,
				"group_id":   g.ID,
			},
			EventAt: &teeTime,
		})
		n.log.Infow("group fanout", "group", g.ID, "posting", posting.ID, "sent", sum.Success, "failed", sum.Failure)
	}
}
