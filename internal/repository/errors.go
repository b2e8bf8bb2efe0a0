// Package repository contains data access for venues, artists and
// shows, separated from the HTTP handlers. Sentinel errors let the
// handlers distinguish a missing record or a broken reference from a
// plain store failure.
package repository

import "errors"

// ErrVenueNotFound is returned when a venue id has no matching record.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound is returned when an artist id has no matching record.
var ErrArtistNotFound = errors.New("artist not found")
