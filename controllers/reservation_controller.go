package controllers

import (
	"net/http"

	"github.com/notmarkmiranda/golf-dads-api-sub000/services"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	Reservations *services.ReservationService
}

// constructor
func NewReservationController(rs *services.ReservationService) *ReservationController {
	return &ReservationController{Reservations: rs}
}

func (rc *ReservationController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var req struct {
		PostingID uint `json:"posting_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := rc.Reservations.Create(uid, req.PostingID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": res.ID, "status": res.Status})
}

func (rc *ReservationController) Cancel(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := rc.Reservations.Cancel(uid, pathID(c, "id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (rc *ReservationController) ListMine(c *gin.Context) {
	uid := c.GetUint("userID")

	out, err := rc.Reservations.ListForUser(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": out})
}
