package models

import (
	"github.com/lib/pq"
)

type Venue struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	Name               string         `gorm:"not null" json:"name"`
	Genres             pq.StringArray `gorm:"type:text[]" json:"genres"`
	City               string         `gorm:"size:120" json:"city"`
	State              string         `gorm:"size:120" json:"state"`
	Address            string         `gorm:"size:120" json:"address"`
	Phone              string         `gorm:"size:120" json:"phone"`
	ImageLink          string         `gorm:"size:500" json:"image_link"`
	FacebookLink       string         `gorm:"size:120" json:"facebook_link"`
	Website            string         `gorm:"size:120" json:"website"`
	SeekingTalent      bool           `json:"seeking_talent"`
	SeekingDescription string         `json:"seeking_description"`
	Shows              []Show         `gorm:"foreignKey:VenueID" json:"-"`
}

func (Venue) TableName() string {
	return "venue"
}
