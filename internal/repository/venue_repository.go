package repository

import (
	"errors"

	"github.com/mviana/showbill/internal/models"
	"gorm.io/gorm"
)

// VenueRepository is the store contract the venue handlers consume.
type VenueRepository interface {
	DistinctLocations() ([]Location, error)
	VenuesAt(city, state string) ([]NameRef, error)
	SearchByName(term string) ([]NameRef, error)
	GetByID(id uint) (*models.Venue, error)
	Create(v *models.Venue) error
	Update(v *models.Venue) error
	Delete(id uint) error
}

type VenueRepo struct {
	db *gorm.DB
}

func NewVenueRepo(db *gorm.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// DistinctLocations returns every distinct (city, state) pair present
// across venues, in store iteration order.
func (r *VenueRepo) DistinctLocations() ([]Location, error) {
	var locations []Location
	err := r.db.Model(&models.Venue{}).
		Select("DISTINCT city, state").
		Scan(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

// VenuesAt returns the id/name projection of every venue whose city
// and state match the given pair exactly.
func (r *VenueRepo) VenuesAt(city, state string) ([]NameRef, error) {
	refs := []NameRef{}
	err := r.db.Model(&models.Venue{}).
		Select("id, name").
		Where("city = ? AND state = ?", city, state).
		Scan(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}

// SearchByName matches the term as a case-insensitive substring of the
// venue name. An empty term matches every venue.
func (r *VenueRepo) SearchByName(term string) ([]NameRef, error) {
	refs := []NameRef{}
	err := r.db.Model(&models.Venue{}).
		Select("id, name").
		Where("name ILIKE ?", "%"+term+"%").
		Scan(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}

func (r *VenueRepo) GetByID(id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.First(&venue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &venue, nil
}

// Create inserts the venue and populates its ID from the insert
// itself.
func (r *VenueRepo) Create(v *models.Venue) error {
	return r.db.Create(v).Error
}

// Update saves every field unconditionally. Omitted optional fields
// arrive empty and overwrite the stored values.
func (r *VenueRepo) Update(v *models.Venue) error {
	return r.db.Save(v).Error
}

// Delete removes the venue and cascade-deletes its shows in one
// transaction.
func (r *VenueRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", id).Delete(&models.Show{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Venue{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrVenueNotFound
		}
		return nil
	})
}
