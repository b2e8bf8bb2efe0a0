package models

import (
	"time"
)

// Show links one Artist to one Venue at a start time. The start time is
// stored naive and treated as UTC everywhere it is surfaced.
type Show struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VenueID   uint      `gorm:"not null" json:"venue_id"`
	ArtistID  uint      `gorm:"not null" json:"artist_id"`
	StartTime time.Time `gorm:"not null" json:"start_time"`
	Venue     Venue     `json:"-"`
	Artist    Artist    `json:"-"`
}

func (Show) TableName() string {
	return "show"
}
