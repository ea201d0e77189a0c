package controllers

import (
	"errors"
	"net/http"

	"github.com/notmarkmiranda/golf-dads-api-sub000/services"

	"github.com/gin-gonic/gin"
)

type DeviceController struct {
	Devices *services.DeviceService
}

// constructor
func NewDeviceController(ds *services.DeviceService) *DeviceController {
	return &DeviceController{Devices: ds}
}

type registerDeviceReq struct {
	Token    string `json:"token" binding:"required"`
	Platform string `json:"platform" binding:"required"`
	Timezone string `json:"timezone"`
}

func (dc *DeviceController) Register(c *gin.Context) {
	uid := c.GetUint("userID")

	var req registerDeviceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dev, err := dc.Devices.Register(uid, req.Token, req.Platform, req.Timezone)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "device registration failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       dev.ID,
		"platform": dev.Platform,
		"timezone": dev.Timezone,
	})
}

func (dc *DeviceController) Unregister(c *gin.Context) {
	uid := c.GetUint("userID")

	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := dc.Devices.Unregister(uid, req.Token); err != nil {
		if errors.Is(err, services.ErrDeviceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "device not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "device removal failed"})
		return
	}

	c.Status(http.StatusNoContent)
}
