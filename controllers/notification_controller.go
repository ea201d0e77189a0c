package controllers

import (
	"net/http"
	"strconv"

	"github.com/notmarkmiranda/golf-dads-api-sub000/config"
	"github.com/notmarkmiranda/golf-dads-api-sub000/models"
	"github.com/notmarkmiranda/golf-dads-api-sub000/services"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Prefs *services.PreferenceService
}

// constructor
func NewNotificationController(ps *services.PreferenceService) *NotificationController {
	return &NotificationController{Prefs: ps}
}

func (nc *NotificationController) GetPreferences(c *gin.Context) {
	uid := c.GetUint("userID")

	pref, err := nc.Prefs.GetOrCreate(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reservation_alerts": pref.ReservationAlerts,
		"group_activity":     pref.GroupActivity,
		"reminders_enabled":  pref.RemindersEnabled,
		"reminder_24h":       pref.Reminder24h,
		"reminder_2h":        pref.Reminder2h,
	})
}

// PUT /user/notifications/preferences — only provided fields change
func (nc *NotificationController) UpdatePreferences(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.PreferenceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	pref, err := nc.Prefs.Update(uid, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reservation_alerts": pref.ReservationAlerts,
		"group_activity":     pref.GroupActivity,
		"reminders_enabled":  pref.RemindersEnabled,
		"reminder_24h":       pref.Reminder24h,
		"reminder_2h":        pref.Reminder2h,
	})
}

// GET /user/notifications — the delivery log, newest first
func (nc *NotificationController) ListDeliveries(c *gin.Context) {
	uid := c.GetUint("userID")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var entries []models.NotificationLog
	err := config.DB.
		Where("user_id = ?", uid).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&entries).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page, "entries": entries})
}
