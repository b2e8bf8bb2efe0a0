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

type ArtistHandler struct {
	artists repository.ArtistRepository
	shows   repository.ShowRepository
}

func NewArtistHandler(artists repository.ArtistRepository, shows repository.ShowRepository) *ArtistHandler {
	return &ArtistHandler{artists: artists, shows: shows}
}

type ArtistDetail struct {
	models.Artist
	PastShows          []repository.ArtistShow `json:"past_shows"`
	UpcomingShows      []repository.ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int                     `json:"past_shows_count"`
	UpcomingShowsCount int                     `json:"upcoming_shows_count"`
}

func (h *ArtistHandler) List(c *gin.Context) {
	refs, err := h.artists.ListRefs()
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artists.")
		return
	}

	c.JSON(http.StatusOK, refs)
}

func (h *ArtistHandler) Search(c *gin.Context) {
	term := c.PostForm("search_term")

	refs, err := h.artists.SearchByName(term)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error searching artists.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(refs),
		"data":  refs,
	})
}

func (h *ArtistHandler) Get(c *gin.Context) {
	id, err := helpers.StringToInt(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid artist id.")
		return
	}

	artist, err := h.artists.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artist.")
		return
	}

	shows, err := h.shows.ByArtist(uint(id))
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artist.")
		return
	}

	past, upcoming := repository.PartitionArtistShows(shows, time.Now())

	c.JSON(http.StatusOK, ArtistDetail{
		Artist:             *artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	})
}

func (h *ArtistHandler) Create(c *gin.Context) {
	artist := artistFromForm(c)

	if artist.Name == "" || artist.City == "" || artist.State == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	if err := h.artists.Create(&artist); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "An error occurred. Artist "+artist.Name+" could not be listed.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Artist " + artist.Name + " was successfully listed!",
		"artist_id": artist.ID,
	})
}

// Update replaces every artist field with the submitted values, same
// contract as the venue update.
func (h *ArtistHandler) Update(c *gin.Context) {
	id, err := helpers.StringToInt(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid artist id.")
		return
	}

	existing, err := h.artists.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding artist.")
		return
	}

	artist := artistFromForm(c)
	if artist.Name == "" || artist.City == "" || artist.State == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}
	artist.ID = existing.ID

	if err := h.artists.Update(&artist); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update artist.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Artist " + artist.Name + " was successfully updated!",
		"artist":  artist,
	})
}

func artistFromForm(c *gin.Context) models.Artist {
	return models.Artist{
		Name:               c.PostForm("name"),
		City:               c.PostForm("city"),
		State:              c.PostForm("state"),
		Phone:              c.PostForm("phone"),
		Genres:             pq.StringArray(c.PostFormArray("genres")),
		ImageLink:          c.PostForm("image_link"),
		FacebookLink:       c.PostForm("facebook_link"),
		Website:            c.PostForm("website_link"),
		SeekingVenue:       helpers.ParseCheckbox(c.PostForm("seeking_venue")),
		SeekingDescription: c.PostForm("seeking_description"),
	}
}
