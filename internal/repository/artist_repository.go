package repository

import (
	"errors"

	"github.com/mviana/showbill/internal/models"
	"gorm.io/gorm"
)

// ArtistRepository is the store contract the artist handlers consume.
// Artists have no delete operation.
type ArtistRepository interface {
	ListRefs() ([]NameRef, error)
	SearchByName(term string) ([]NameRef, error)
	GetByID(id uint) (*models.Artist, error)
	Create(a *models.Artist) error
	Update(a *models.Artist) error
}

type ArtistRepo struct {
	db *gorm.DB
}

func NewArtistRepo(db *gorm.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

// ListRefs returns the id/name projection of every artist.
func (r *ArtistRepo) ListRefs() ([]NameRef, error) {
	refs := []NameRef{}
	err := r.db.Model(&models.Artist{}).
		Select("id, name").
		Scan(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}

// SearchByName matches the term as a case-insensitive substring of the
// artist name. An empty term matches every artist.
func (r *ArtistRepo) SearchByName(term string) ([]NameRef, error) {
	refs := []NameRef{}
	err := r.db.Model(&models.Artist{}).
		Select("id, name").
		Where("name ILIKE ?", "%"+term+"%").
		Scan(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}

func (r *ArtistRepo) GetByID(id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.First(&artist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return &artist, nil
}

func (r *ArtistRepo) Create(a *models.Artist) error {
	return r.db.Create(a).Error
}

// Update saves every field unconditionally, mirroring the venue
// replace-all-fields contract.
func (r *ArtistRepo) Update(a *models.Artist) error {
	return r.db.Save(a).Error
}
