package models

import (
	"github.com/lib/pq"
)

type Artist struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	Name               string         `gorm:"not null" json:"name"`
	City               string         `gorm:"size:120" json:"city"`
	State              string         `gorm:"size:120" json:"state"`
	Phone              string         `gorm:"size:120" json:"phone"`
	Genres             pq.StringArray `gorm:"type:text[]" json:"genres"`
	ImageLink          string         `gorm:"size:500" json:"image_link"`
	FacebookLink       string         `gorm:"size:120" json:"facebook_link"`
	Website            string         `gorm:"size:120" json:"website"`
	SeekingVenue       bool           `json:"seeking_venue"`
	SeekingDescription string         `json:"seeking_description"`
	Shows              []Show         `gorm:"foreignKey:ArtistID" json:"-"`
}

func (Artist) TableName() string {
	return "artist"
}
