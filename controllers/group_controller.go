package controllers

import (
	"net/http"
	"strconv"

	"github.com/notmarkmiranda/golf-dads-api-sub000/services"

	"github.com/gin-gonic/gin"
)

type GroupController struct {
	Groups *services.GroupService
}

// constructor
func NewGroupController(gs *services.GroupService) *GroupController {
	return &GroupController{Groups: gs}
}

func (gc *GroupController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := gc.Groups.Create(uid, req.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          group.ID,
		"name":        group.Name,
		"invite_code": group.InviteCode,
	})
}

func (gc *GroupController) Join(c *gin.Context) {
	uid := c.GetUint("userID")

	var req struct {
		InviteCode string `json:"invite_code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := gc.Groups.Join(uid, req.InviteCode)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": group.ID, "name": group.Name})
}

func (gc *GroupController) Leave(c *gin.Context) {
	uid := c.GetUint("userID")
	groupID := pathID(c, "id")

	if err := gc.Groups.Leave(uid, groupID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (gc *GroupController) Members(c *gin.Context) {
	groupID := pathID(c, "id")

	users, err := gc.Groups.Members(groupID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{"id": u.ID, "name": u.DisplayName()})
	}
	c.JSON(http.StatusOK, gin.H{"members": out})
}

// POST /groups/:id/mute
func (gc *GroupController) Mute(c *gin.Context) {
	uid := c.GetUint("userID")
	groupID := pathID(c, "id")

	var req struct {
		Muted bool `json:"muted"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := gc.Groups.SetMuted(uid, groupID, req.Muted); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"muted": req.Muted})
}

func pathID(c *gin.Context, name string) uint {
	id, _ := strconv.ParseUint(c.Param(name), 10, 32)
	return uint(id)
}
