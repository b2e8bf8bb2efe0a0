package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mviana/showbill/internal/helpers"
	"github.com/mviana/showbill/internal/models"
	"github.com/mviana/showbill/internal/repository"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeVenueRepo is an in-memory VenueRepository with the same matching
// semantics as the SQL implementation.
type fakeVenueRepo struct {
	venues []models.Venue
	nextID uint
}

func newFakeVenueRepo(venues ...models.Venue) *fakeVenueRepo {
	repo := &fakeVenueRepo{nextID: 1}
	for _, v := range venues {
		v.ID = repo.nextID
		repo.nextID++
		repo.venues = append(repo.venues, v)
	}
	return repo
}

func (f *fakeVenueRepo) DistinctLocations() ([]repository.Location, error) {
	seen := map[repository.Location]bool{}
	locations := []repository.Location{}
	for _, v := range f.venues {
		loc := repository.Location{City: v.City, State: v.State}
		if !seen[loc] {
			seen[loc] = true
			locations = append(locations, loc)
		}
	}
	return locations, nil
}

func (f *fakeVenueRepo) VenuesAt(city, state string) ([]repository.NameRef, error) {
	refs := []repository.NameRef{}
	for _, v := range f.venues {
		if v.City == city && v.State == state {
			refs = append(refs, repository.NameRef{ID: v.ID, Name: v.Name})
		}
	}
	return refs, nil
}

func (f *fakeVenueRepo) SearchByName(term string) ([]repository.NameRef, error) {
	refs := []repository.NameRef{}
	for _, v := range f.venues {
		if strings.Contains(strings.ToLower(v.Name), strings.ToLower(term)) {
			refs = append(refs, repository.NameRef{ID: v.ID, Name: v.Name})
		}
	}
	return refs, nil
}

func (f *fakeVenueRepo) GetByID(id uint) (*models.Venue, error) {
	for i := range f.venues {
		if f.venues[i].ID == id {
			venue := f.venues[i]
			return &venue, nil
		}
	}
	return nil, repository.ErrVenueNotFound
}

func (f *fakeVenueRepo) Create(v *models.Venue) error {
	v.ID = f.nextID
	f.nextID++
	f.venues = append(f.venues, *v)
	return nil
}

func (f *fakeVenueRepo) Update(v *models.Venue) error {
	for i := range f.venues {
		if f.venues[i].ID == v.ID {
			f.venues[i] = *v
			return nil
		}
	}
	return repository.ErrVenueNotFound
}

func (f *fakeVenueRepo) Delete(id uint) error {
	for i := range f.venues {
		if f.venues[i].ID == id {
			f.venues = append(f.venues[:i], f.venues[i+1:]...)
			return nil
		}
	}
	return repository.ErrVenueNotFound
}

type fakeArtistRepo struct {
	artists []models.Artist
	nextID  uint
}

func newFakeArtistRepo(artists ...models.Artist) *fakeArtistRepo {
	repo := &fakeArtistRepo{nextID: 1}
	for _, a := range artists {
		a.ID = repo.nextID
		repo.nextID++
		repo.artists = append(repo.artists, a)
	}
	return repo
}

func (f *fakeArtistRepo) ListRefs() ([]repository.NameRef, error) {
	refs := []repository.NameRef{}
	for _, a := range f.artists {
		refs = append(refs, repository.NameRef{ID: a.ID, Name: a.Name})
	}
	return refs, nil
}

func (f *fakeArtistRepo) SearchByName(term string) ([]repository.NameRef, error) {
	refs := []repository.NameRef{}
	for _, a := range f.artists {
		if strings.Contains(strings.ToLower(a.Name), strings.ToLower(term)) {
			refs = append(refs, repository.NameRef{ID: a.ID, Name: a.Name})
		}
	}
	return refs, nil
}

func (f *fakeArtistRepo) GetByID(id uint) (*models.Artist, error) {
	for i := range f.artists {
		if f.artists[i].ID == id {
			artist := f.artists[i]
			return &artist, nil
		}
	}
	return nil, repository.ErrArtistNotFound
}

func (f *fakeArtistRepo) Create(a *models.Artist) error {
	a.ID = f.nextID
	f.nextID++
	f.artists = append(f.artists, *a)
	return nil
}

func (f *fakeArtistRepo) Update(a *models.Artist) error {
	for i := range f.artists {
		if f.artists[i].ID == a.ID {
			f.artists[i] = *a
			return nil
		}
	}
	return repository.ErrArtistNotFound
}

type fakeShowRepo struct {
	shows     []models.Show
	venueIDs  map[uint]bool
	artistIDs map[uint]bool
}

func newFakeShowRepo(shows ...models.Show) *fakeShowRepo {
	repo := &fakeShowRepo{
		venueIDs:  map[uint]bool{},
		artistIDs: map[uint]bool{},
	}
	for i, s := range shows {
		s.ID = uint(i + 1)
		repo.shows = append(repo.shows, s)
		repo.venueIDs[s.VenueID] = true
		repo.artistIDs[s.ArtistID] = true
	}
	return repo
}

func (f *fakeShowRepo) allow(venueIDs, artistIDs []uint) {
	for _, id := range venueIDs {
		f.venueIDs[id] = true
	}
	for _, id := range artistIDs {
		f.artistIDs[id] = true
	}
}

func (f *fakeShowRepo) ListAll() ([]repository.ShowListing, error) {
	listings := []repository.ShowListing{}
	for _, s := range f.shows {
		listings = append(listings, repository.ShowListing{
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

func (f *fakeShowRepo) ByVenue(venueID uint) ([]models.Show, error) {
	shows := []models.Show{}
	for _, s := range f.shows {
		if s.VenueID == venueID {
			shows = append(shows, s)
		}
	}
	return shows, nil
}

func (f *fakeShowRepo) ByArtist(artistID uint) ([]models.Show, error) {
	shows := []models.Show{}
	for _, s := range f.shows {
		if s.ArtistID == artistID {
			shows = append(shows, s)
		}
	}
	return shows, nil
}

func (f *fakeShowRepo) Create(s *models.Show) error {
	if !f.venueIDs[s.VenueID] {
		return repository.ErrVenueNotFound
	}
	if !f.artistIDs[s.ArtistID] {
		return repository.ErrArtistNotFound
	}
	s.ID = uint(len(f.shows) + 1)
	f.shows = append(f.shows, *s)
	return nil
}

func performForm(r *gin.Engine, method, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func performGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
