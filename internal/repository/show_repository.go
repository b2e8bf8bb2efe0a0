package repository

import (
	"errors"

	"github.com/mviana/showbill/internal/helpers"
	"github.com/mviana/showbill/internal/models"
	"gorm.io/gorm"
)

// ShowRepository is the store contract the show and detail handlers
// consume. Shows are created but never updated.
type ShowRepository interface {
	ListAll() ([]ShowListing, error)
	ByVenue(venueID uint) ([]models.Show, error)
	ByArtist(artistID uint) ([]models.Show, error)
	Create(s *models.Show) error
}

type ShowRepo struct {
	db *gorm.DB
}

func NewShowRepo(db *gorm.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// ListAll returns every show with both counterparts joined, in
// insertion order, with no temporal partitioning.
func (r *ShowRepo) ListAll() ([]ShowListing, error) {
	var shows []models.Show
	err := r.db.Preload("Venue").Preload("Artist").Order("id").Find(&shows).Error
	if err != nil {
		return nil, err
	}

	listings := make([]ShowListing, 0, len(shows))
	for _, s := range shows {
		listings = append(listings, ShowListing{
			VenueID:         s.Venue.ID,
			VenueName:       s.Venue.Name,
			ArtistID:        s.Artist.ID,
			ArtistName:      s.Artist.Name,
			ArtistImageLink: s.Artist.ImageLink,
			StartTime:       helpers.FormatShowTime(s.StartTime),
		})
	}
	return listings, nil
}

// ByVenue returns a venue's shows with the Artist association loaded,
// ready for partitioning.
func (r *ShowRepo) ByVenue(venueID uint) ([]models.Show, error) {
	var shows []models.Show
	err := r.db.Preload("Artist").Where("venue_id = ?", venueID).Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

// ByArtist returns an artist's shows with the Venue association
// loaded.
func (r *ShowRepo) ByArtist(artistID uint) ([]models.Show, error) {
	var shows []models.Show
	err := r.db.Preload("Venue").Where("artist_id = ?", artistID).Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

// Create verifies both references and inserts the show in a single
// transaction. A missing parent rolls the whole operation back.
func (r *ShowRepo) Create(s *models.Show) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var venue models.Venue
		if err := tx.First(&venue, s.VenueID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVenueNotFound
			}
			return err
		}

		var artist models.Artist
		if err := tx.First(&artist, s.ArtistID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArtistNotFound
			}
			return err
		}

		return tx.Create(s).Error
	})
}
