package repository

import (
	"time"

	"github.com/mviana/showbill/internal/helpers"
	"github.com/mviana/showbill/internal/models"
)

// NameRef is the minimal projection used by listings and search
// results.
type NameRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Location is a distinct (city, state) pair. Distinctness is an exact
// tuple match; pairs differing only in case or whitespace form
// separate groups.
type Location struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// VenueShow is a show as seen from a venue page, with the counterpart
// artist joined in.
type VenueShow struct {
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ArtistShow is a show as seen from an artist page, with the
// counterpart venue joined in.
type ArtistShow struct {
	VenueID        uint   `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// ShowListing is one row of the flat show listing, both counterparts
// joined.
type ShowListing struct {
	VenueID         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// upcoming iff start_time >= now. The classification is derived at
// evaluation time, never stored.
func isUpcoming(start, now time.Time) bool {
	return !start.Before(now)
}

// PartitionVenueShows splits a venue's shows into past and upcoming
// relative to now. Shows must have their Artist association loaded.
// The two slices partition the input exactly.
func PartitionVenueShows(shows []models.Show, now time.Time) (past, upcoming []VenueShow) {
	past = []VenueShow{}
	upcoming = []VenueShow{}
	for _, s := range shows {
		view := VenueShow{
			ArtistID:        s.Artist.ID,
			ArtistName:      s.Artist.Name,
			ArtistImageLink: s.Artist.ImageLink,
			StartTime:       helpers.FormatShowTime(s.StartTime),
		}
		if isUpcoming(s.StartTime, now) {
			upcoming = append(upcoming, view)
		} else {
			past = append(past, view)
		}
	}
	return past, upcoming
}

// PartitionArtistShows is the venue-side mirror: shows must have their
// Venue association loaded.
func PartitionArtistShows(shows []models.Show, now time.Time) (past, upcoming []ArtistShow) {
	past = []ArtistShow{}
	upcoming = []ArtistShow{}
	for _, s := range shows {
		view := ArtistShow{
			VenueID:        s.Venue.ID,
			VenueName:      s.Venue.Name,
			VenueImageLink: s.Venue.ImageLink,
			StartTime:      helpers.FormatShowTime(s.StartTime),
		}
		if isUpcoming(s.StartTime, now) {
			upcoming = append(upcoming, view)
		} else {
			past = append(past, view)
		}
	}
	return past, upcoming
}
