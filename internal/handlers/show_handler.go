package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mviana/showbill/internal/helpers"
	"github.com/mviana/showbill/internal/models"
	"github.com/mviana/showbill/internal/repository"
)

type ShowHandler struct {
	shows repository.ShowRepository
}

func NewShowHandler(shows repository.ShowRepository) *ShowHandler {
	return &ShowHandler{shows: shows}
}

type ShowRequest struct {
	ArtistID  uint   `form:"artist_id" binding:"required"`
	VenueID   uint   `form:"venue_id" binding:"required"`
	StartTime string `form:"start_time" binding:"required"`
}

// List is the flat, unpartitioned show listing in insertion order.
func (h *ShowHandler) List(c *gin.Context) {
	listings, err := h.shows.ListAll()
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving shows.")
		return
	}

	c.JSON(http.StatusOK, listings)
}

func (h *ShowHandler) Create(c *gin.Context) {
	var req ShowRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	startTime, err := helpers.ParseStartTime(req.StartTime)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid start time format.")
		return
	}

	show := models.Show{
		VenueID:   req.VenueID,
		ArtistID:  req.ArtistID,
		StartTime: startTime,
	}

	if err := h.shows.Create(&show); err != nil {
		switch {
		case errors.Is(err, repository.ErrVenueNotFound):
			helpers.RespondWithError(c, http.StatusBadRequest, "Venue does not exist.")
		case errors.Is(err, repository.ErrArtistNotFound):
			helpers.RespondWithError(c, http.StatusBadRequest, "Artist does not exist.")
		default:
			helpers.RespondWithError(c, http.StatusInternalServerError, "An error occurred. Show could not be listed.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Show was successfully listed!",
	})
}
