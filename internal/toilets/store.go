// Package toilets implements the location store: the canonical list of
// toilets, distance from the user, review aggregation and the filtered view.
package toilets

import (
	"cmp"
	"context"
	"log/slog"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/loofinder/internal/calculator"
	"github.com/mmynk/loofinder/internal/geolocation"
	"github.com/mmynk/loofinder/internal/models"
)

// Store holds one canonical list of toilets sorted by distance from the user.
// The filtered view is never stored; it is recomputed from the canonical
// list on every read, so both views always agree on every aggregate.
//
// Store is safe for concurrent use.
type Store struct {
	mu           sync.RWMutex
	toilets      []*models.Toilet
	filter       Filter
	userLocation *models.Coordinate

	locateTimeout time.Duration
	newID         func() string
	now           func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides how new toilet IDs are assigned.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithClock overrides the clock used to date reviews.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.now = fn }
}

// WithLocateTimeout bounds the user location lookup in Initialize.
func WithLocateTimeout(d time.Duration) Option {
	return func(s *Store) { s.locateTimeout = d }
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		locateTimeout: geolocation.DefaultTimeout,
		newID:         func() string { return uuid.New().String() },
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize loads the seed list after a single lookup of the user position.
// If the lookup fails the store runs in distance-less mode: every distance is
// 0 and the seed order is kept. Initialize never fails.
func (s *Store) Initialize(ctx context.Context, seed []models.Toilet, locator geolocation.Locator) {
	pos, err := geolocation.Resolve(ctx, locator, s.locateTimeout)
	if err != nil {
		slog.Warn("User location unavailable, distances disabled", "error", err)
		s.Load(seed, nil)
		return
	}
	slog.Info("User location resolved", "lat", pos.Lat, "lng", pos.Lng)
	s.Load(seed, &pos)
}

// Load replaces the store contents with copies of seed. With a user position
// every distance is computed and the list is stably sorted by it; without one
// distances are 0 and seed order is kept. The active filter is cleared.
func (s *Store) Load(seed []models.Toilet, user *models.Coordinate) {
	list := make([]*models.Toilet, len(seed))
	for i := range seed {
		t := seed[i].Clone()
		t.Distance = 0
		if user != nil {
			t.Distance = calculator.Distance(*user, t.Location)
		}
		list[i] = t
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.toilets = list
	s.filter = Filter{}
	s.userLocation = nil
	if user != nil {
		u := *user
		s.userLocation = &u
		s.sortByDistance()
	}

	slog.Info("Toilet store loaded", "count", len(list), "has_user_location", user != nil)
}

// Get returns a copy of the toilet with the given id, or ErrNotFound.
func (s *Store) Get(id string) (*models.Toilet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := s.find(id)
	if t == nil {
		return nil, ErrNotFound
	}
	return t.Clone(), nil
}

// List returns copies of every toilet, nearest first.
func (s *Store) List() []models.Toilet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Toilet, len(s.toilets))
	for i, t := range s.toilets {
		out[i] = *t.Clone()
	}
	return out
}

// Filtered returns the toilets passing the active filter, nearest first.
func (s *Store) Filtered() []models.Toilet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filter.Apply(s.toilets)
}

// ActiveFilter returns the filter currently applied to the filtered view.
func (s *Store) ActiveFilter() Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filter
}

// ApplyFilters replaces the active filter and returns the recomputed
// filtered view. The full list is never modified.
func (s *Store) ApplyFilters(f Filter) []models.Toilet {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter = f
	return f.Apply(s.toilets)
}

// UserLocation returns the last known user position.
func (s *Store) UserLocation() (models.Coordinate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.userLocation == nil {
		return models.Coordinate{}, false
	}
	return *s.userLocation, true
}

// Add validates the draft and inserts a new toilet, returning its id.
// ID, distance, aggregates and reviews are always assigned here.
func (s *Store) Add(draft models.ToiletDraft) (string, error) {
	t, err := newToilet(draft)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = s.newID()
	if s.userLocation != nil {
		t.Distance = calculator.Distance(*s.userLocation, t.Location)
	}

	s.toilets = append(s.toilets, t)
	s.sortByDistance()

	slog.Info("Toilet added", "toilet_id", t.ID, "name", t.Name, "distance_km", t.Distance)
	return t.ID, nil
}

// AddReview appends a review to the toilet and folds its rating into the
// cleanliness average. Unknown ids fail with ErrNotFound; a rating outside
// 1-5 or a blank comment fails with a ValidationError. Neither failure
// modifies the store.
func (s *Store) AddReview(toiletID string, review models.Review) (*models.Toilet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(toiletID)
	if t == nil {
		return nil, ErrNotFound
	}

	errs := fieldErrors{}
	switch {
	case review.Rating == 0:
		errs.add("rating", "Please select a rating")
	case review.Rating < calculator.MinRating || review.Rating > calculator.MaxRating:
		errs.add("rating", "Rating must be between 1 and 5")
	}
	review.Comment = strings.TrimSpace(review.Comment)
	if review.Comment == "" {
		errs.add("comment", "Please enter a comment")
	}
	if err := errs.err(); err != nil {
		return nil, err
	}

	cleanliness, err := calculator.NextCleanliness(t.Cleanliness, t.ReviewCount, review.Rating)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"rating": err.Error()}}
	}

	review.Likes = 0
	if review.Date == "" {
		review.Date = s.now().UTC().Format(time.RFC3339)
	}

	t.Reviews = append(t.Reviews, review)
	t.ReviewCount++
	t.Cleanliness = cleanliness

	slog.Info("Review added",
		"toilet_id", t.ID,
		"rating", review.Rating,
		"cleanliness", t.Cleanliness,
		"review_count", t.ReviewCount,
	)
	return t.Clone(), nil
}

// Markers returns one map marker per toilet in the filtered view, plus a
// marker for the user when their position is known.
func (s *Store) Markers() []models.Marker {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var markers []models.Marker
	for _, t := range s.toilets {
		if !s.filter.Matches(t) {
			continue
		}
		markers = append(markers, models.Marker{
			ToiletID:    t.ID,
			Location:    t.Location,
			Label:       t.Name,
			Cleanliness: t.Cleanliness,
			Color:       calculator.MarkerColor(t.Cleanliness),
		})
	}
	if s.userLocation != nil {
		markers = append(markers, models.Marker{
			Location: *s.userLocation,
			Label:    "You are here",
			User:     true,
		})
	}
	return markers
}

// find must be called with s.mu held.
func (s *Store) find(id string) *models.Toilet {
	for _, t := range s.toilets {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// sortByDistance must be called with s.mu held.
func (s *Store) sortByDistance() {
	slices.SortStableFunc(s.toilets, func(a, b *models.Toilet) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
}

// newToilet validates a draft and builds an unsaved toilet with zeroed
// aggregates.
func newToilet(d models.ToiletDraft) (*models.Toilet, error) {
	errs := fieldErrors{}

	name := strings.TrimSpace(d.Name)
	if name == "" {
		errs.add("name", "Name is required")
	}
	address := strings.TrimSpace(d.Address)
	if address == "" {
		errs.add("address", "Address is required")
	}
	if d.Location == nil || !d.Location.Valid() {
		errs.add("location", "Please mark the location on the map")
	}

	gender := d.Gender
	if gender == "" {
		gender = models.GenderAll
	}
	if !gender.Valid() {
		errs.add("gender", "Gender must be male, female or all")
	}

	price := d.Price
	if d.IsFree {
		price = 0
	} else if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		errs.add("price", "Please enter a valid price")
	}

	if err := errs.err(); err != nil {
		return nil, err
	}

	return &models.Toilet{
		Name:             name,
		Address:          address,
		Description:      strings.TrimSpace(d.Description),
		Location:         *d.Location,
		Gender:           gender,
		OpeningHours:     strings.TrimSpace(d.OpeningHours),
		Is24Hours:        d.Is24Hours,
		IsFree:           d.IsFree,
		Price:            price,
		HasAccessibility: d.HasAccessibility,
		HasToiletPaper:   d.HasToiletPaper,
		HasWater:         d.HasWater,
		Reviews:          []models.Review{},
	}, nil
}
