package controllers

import (
	"net/http"

	"github.com/notmarkmiranda/golf-dads-api-sub000/services"

	"github.com/gin-gonic/gin"
)

type PostingController struct {
	Postings *services.PostingService
}

// constructor
func NewPostingController(ps *services.PostingService) *PostingController {
	return &PostingController{Postings: ps}
}

func (pc *PostingController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.PostingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	posting, err := pc.Postings.Create(uid, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, posting)
}

func (pc *PostingController) Get(c *gin.Context) {
	posting, err := pc.Postings.Get(pathID(c, "id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, posting)
}

func (pc *PostingController) Upcoming(c *gin.Context) {
	uid := c.GetUint("userID")

	postings, err := pc.Postings.Upcoming(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"postings": postings})
}

func (pc *PostingController) Join(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := pc.Postings.Join(pathID(c, "id"), uid); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (pc *PostingController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := pc.Postings.Delete(pathID(c, "id"), uid); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
