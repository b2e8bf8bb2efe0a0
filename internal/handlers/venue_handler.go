package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/mviana/showbill/internal/helpers"
	"github.com/mviana/showbill/internal/models"
	"github.com/mviana/showbill/internal/repository"
)

type VenueHandler struct {
	venues repository.VenueRepository
	shows  repository.ShowRepository
}

func NewVenueHandler(venues repository.VenueRepository, shows repository.ShowRepository) *VenueHandler {
	return &VenueHandler{venues: venues, shows: shows}
}

type VenueGroup struct {
	City   string               `json:"city"`
	State  string               `json:"state"`
	Venues []repository.NameRef `json:"venues"`
}

type VenueDetail struct {
	models.Venue
	PastShows          []repository.VenueShow `json:"past_shows"`
	UpcomingShows      []repository.VenueShow `json:"upcoming_shows"`
	PastShowsCount     int                    `json:"past_shows_count"`
	UpcomingShowsCount int                    `json:"upcoming_shows_count"`
}

// List groups venues by their exact (city, state) pair, one group per
// distinct pair.
func (h *VenueHandler) List(c *gin.Context) {
	locations, err := h.venues.DistinctLocations()
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venues.")
		return
	}

	groups := make([]VenueGroup, 0, len(locations))
	for _, location := range locations {
		refs, err := h.venues.VenuesAt(location.City, location.State)
		if err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venues.")
			return
		}
		groups = append(groups, VenueGroup{
			City:   location.City,
			State:  location.State,
			Venues: refs,
		})
	}

	c.JSON(http.StatusOK, groups)
}

func (h *VenueHandler) Search(c *gin.Context) {
	term := c.PostForm("search_term")

	refs, err := h.venues.SearchByName(term)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error searching venues.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(refs),
		"data":  refs,
	})
}

func (h *VenueHandler) Get(c *gin.Context) {
	id, err := helpers.StringToInt(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid venue id.")
		return
	}

	venue, err := h.venues.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venue.")
		return
	}

	shows, err := h.shows.ByVenue(uint(id))
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venue.")
		return
	}

	past, upcoming := repository.PartitionVenueShows(shows, time.Now())

	c.JSON(http.StatusOK, VenueDetail{
		Venue:              *venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	})
}

func (h *VenueHandler) Create(c *gin.Context) {
	venue := venueFromForm(c)

	if venue.Name == "" || venue.City == "" || venue.State == "" || venue.Address == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	if err := h.venues.Create(&venue); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "An error occurred. Venue "+venue.Name+" could not be listed.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Venue " + venue.Name + " was successfully listed!",
		"venue_id": venue.ID,
	})
}

// Update replaces every field with the submitted values. Optional
// fields left off the form arrive empty and clear the stored values.
func (h *VenueHandler) Update(c *gin.Context) {
	id, err := helpers.StringToInt(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid venue id.")
		return
	}

	existing, err := h.venues.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding venue.")
		return
	}

	venue := venueFromForm(c)
	if venue.Name == "" || venue.City == "" || venue.State == "" || venue.Address == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}
	venue.ID = existing.ID

	if err := h.venues.Update(&venue); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update venue.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Venue " + venue.Name + " was successfully updated!",
		"venue":   venue,
	})
}

func (h *VenueHandler) Delete(c *gin.Context) {
	id, err := helpers.StringToInt(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid venue id.")
		return
	}

	if err := h.venues.Delete(uint(id)); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete venue.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

func venueFromForm(c *gin.Context) models.Venue {
	return models.Venue{
		Name:               c.PostForm("name"),
		City:               c.PostForm("city"),
		State:              c.PostForm("state"),
		Address:            c.PostForm("address"),
		Phone:              c.PostForm("phone"),
		Genres:             pq.StringArray(c.PostFormArray("genres")),
		ImageLink:          c.PostForm("image_link"),
		FacebookLink:       c.PostForm("facebook_link"),
		Website:            c.PostForm("website_link"),
		SeekingTalent:      helpers.ParseCheckbox(c.PostForm("seeking_talent")),
		SeekingDescription: c.PostForm("seeking_description"),
	}
}
