package toilets

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/mmynk/loofinder/internal/geolocation"
	"github.com/mmynk/loofinder/internal/models"
	"github.com/mmynk/loofinder/internal/seed"
)

var colombo = models.Coordinate{Lat: 6.9271, Lng: 79.8612}

func ids(list []models.Toilet) []string {
	out := make([]string, len(list))
	for i, t := range list {
		out[i] = t.ID
	}
	return out
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("new-%d", n)
	}
}

func validDraft() models.ToiletDraft {
	return models.ToiletDraft{
		Name:         "Fort Railway Station Toilet",
		Address:      "Fort, Colombo 1",
		Location:     &models.Coordinate{Lat: 6.9344, Lng: 79.8501},
		Gender:       models.GenderAll,
		OpeningHours: "24 hours",
		Is24Hours:    true,
		IsFree:       false,
		Price:        30,
		HasWater:     true,
	}
}

func TestInitialize(t *testing.T) {
	ctx := context.Background()

	t.Run("location denied keeps seed order and zero distances", func(t *testing.T) {
		store := New()
		store.Initialize(ctx, seed.Toilets(), geolocation.Denied{})

		list := store.List()
		want := []string{"1", "2", "3", "4", "5"}
		if got := ids(list); fmt.Sprint(got) != fmt.Sprint(want) {
			t.Errorf("order = %v, want %v", got, want)
		}
		for _, toilet := range list {
			if toilet.Distance != 0 {
				t.Errorf("toilet %s distance = %v, want 0", toilet.ID, toilet.Distance)
			}
		}
		if _, ok := store.UserLocation(); ok {
			t.Error("expected no user location")
		}
		if got := ids(store.Filtered()); fmt.Sprint(got) != fmt.Sprint(want) {
			t.Errorf("filtered order = %v, want %v", got, want)
		}
	})

	t.Run("known location sorts by distance", func(t *testing.T) {
		store := New()
		store.Initialize(ctx, seed.Toilets(), &geolocation.Static{Position: colombo})

		list := store.List()
		want := []string{"1", "2", "3", "5", "4"}
		if got := ids(list); fmt.Sprint(got) != fmt.Sprint(want) {
			t.Errorf("order = %v, want %v", got, want)
		}
		for i := 1; i < len(list); i++ {
			if list[i-1].Distance > list[i].Distance {
				t.Errorf("list not sorted at %d: %v > %v", i, list[i-1].Distance, list[i].Distance)
			}
		}
		if list[0].Distance != 1.0 {
			t.Errorf("nearest distance = %v, want 1.0", list[0].Distance)
		}
		if got := ids(store.Filtered()); fmt.Sprint(got) != fmt.Sprint(want) {
			t.Errorf("filtered order = %v, want %v", got, want)
		}
	})

	t.Run("slow locator falls back to distance-less mode", func(t *testing.T) {
		store := New(WithLocateTimeout(10 * time.Millisecond))
		slow := geolocation.LocatorFunc(func(ctx context.Context) (models.Coordinate, error) {
			<-ctx.Done()
			return models.Coordinate{}, ctx.Err()
		})
		store.Initialize(ctx, seed.Toilets(), slow)

		if _, ok := store.UserLocation(); ok {
			t.Error("expected no user location after timeout")
		}
		if got := ids(store.List()); fmt.Sprint(got) != "[1 2 3 4 5]" {
			t.Errorf("order = %v, want seed order", got)
		}
	})

	t.Run("equal distances keep seed order", func(t *testing.T) {
		same := models.Coordinate{Lat: 7.0, Lng: 80.0}
		seedList := []models.Toilet{
			{ID: "a", Location: same},
			{ID: "b", Location: models.Coordinate{Lat: 6.9, Lng: 79.9}},
			{ID: "c", Location: same},
		}
		store := New()
		store.Load(seedList, &same)

		if got := ids(store.List()); fmt.Sprint(got) != "[a c b]" {
			t.Errorf("order = %v, want [a c b]", got)
		}
	})

	t.Run("seed slice is not aliased", func(t *testing.T) {
		seedList := seed.Toilets()
		store := New()
		store.Load(seedList, nil)

		seedList[0].Name = "changed"
		seedList[0].Reviews[0].Comment = "changed"

		got, err := store.Get("1")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Name == "changed" || got.Reviews[0].Comment == "changed" {
			t.Error("store shares memory with the seed slice")
		}
	})
}

func TestGet(t *testing.T) {
	store := New()
	store.Load(seed.Toilets(), nil)

	t.Run("existing id", func(t *testing.T) {
		got, err := store.Get("3")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Name != "Galle Face Hotel Public Toilet" {
			t.Errorf("name = %q", got.Name)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.Get("nope")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("returned copy cannot mutate the store", func(t *testing.T) {
		got, _ := store.Get("1")
		got.Cleanliness = 0
		got.Reviews = append(got.Reviews, models.Review{Rating: 1})

		again, _ := store.Get("1")
		if again.Cleanliness != 3.5 {
			t.Errorf("cleanliness = %v, want 3.5", again.Cleanliness)
		}
		if len(again.Reviews) != 2 {
			t.Errorf("reviews = %d, want 2", len(again.Reviews))
		}
	})
}

func TestAdd(t *testing.T) {
	t.Run("assigns id and zeroes aggregates", func(t *testing.T) {
		store := New(WithIDGenerator(sequentialIDs()))
		store.Load(seed.Toilets(), nil)

		id, err := store.Add(validDraft())
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if id != "new-1" {
			t.Errorf("id = %q, want new-1", id)
		}

		got, err := store.Get(id)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Cleanliness != 0 || got.ReviewCount != 0 || got.Likes != 0 || got.Dislikes != 0 {
			t.Errorf("aggregates not zeroed: %+v", got)
		}
		if len(got.Reviews) != 0 {
			t.Errorf("reviews = %d, want 0", len(got.Reviews))
		}
		if got.Distance != 0 {
			t.Errorf("distance = %v, want 0 without user location", got.Distance)
		}
		if len(store.List()) != 6 {
			t.Errorf("list size = %d, want 6", len(store.List()))
		}
	})

	t.Run("ids are unique", func(t *testing.T) {
		store := New()
		store.Load(nil, nil)

		seen := map[string]bool{}
		for i := 0; i < 20; i++ {
			id, err := store.Add(validDraft())
			if err != nil {
				t.Fatalf("Add failed: %v", err)
			}
			if seen[id] {
				t.Fatalf("duplicate id %q", id)
			}
			seen[id] = true
		}
	})

	t.Run("computes distance and re-sorts", func(t *testing.T) {
		store := New(WithIDGenerator(sequentialIDs()))
		store.Load(seed.Toilets(), &colombo)

		draft := validDraft()
		draft.Location = &models.Coordinate{Lat: 6.9271, Lng: 79.8612}
		id, err := store.Add(draft)
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}

		list := store.List()
		if list[0].ID != id {
			t.Errorf("nearest = %q, want new toilet %q", list[0].ID, id)
		}
		if list[0].Distance != 0 {
			t.Errorf("distance = %v, want 0", list[0].Distance)
		}
	})

	t.Run("free toilet has zero price", func(t *testing.T) {
		store := New()
		draft := validDraft()
		draft.IsFree = true
		draft.Price = 99
		id, err := store.Add(draft)
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		got, _ := store.Get(id)
		if got.Price != 0 {
			t.Errorf("price = %v, want 0", got.Price)
		}
	})

	t.Run("empty gender defaults to all", func(t *testing.T) {
		store := New()
		draft := validDraft()
		draft.Gender = ""
		id, err := store.Add(draft)
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		got, _ := store.Get(id)
		if got.Gender != models.GenderAll {
			t.Errorf("gender = %q, want all", got.Gender)
		}
	})

	t.Run("validation reports every field", func(t *testing.T) {
		store := New()
		store.Load(seed.Toilets(), nil)

		_, err := store.Add(models.ToiletDraft{
			Name:    "  ",
			Gender:  "unisex",
			IsFree:  false,
			Price:   math.NaN(),
			Address: "",
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
		fields := FieldErrors(err)
		for _, field := range []string{"name", "address", "location", "gender", "price"} {
			if fields[field] == "" {
				t.Errorf("missing field error for %q in %v", field, fields)
			}
		}
		if len(store.List()) != 5 {
			t.Errorf("list size = %d, want 5 after rejected add", len(store.List()))
		}
	})

	t.Run("negative price rejected when not free", func(t *testing.T) {
		store := New()
		draft := validDraft()
		draft.Price = -5
		_, err := store.Add(draft)
		if FieldErrors(err)["price"] == "" {
			t.Errorf("expected price error, got %v", err)
		}
	})

	t.Run("new toilet appears in filtered view when it matches", func(t *testing.T) {
		store := New()
		store.Load(seed.Toilets(), nil)
		store.ApplyFilters(Filter{ToiletPaper: true})

		draft := validDraft()
		draft.HasToiletPaper = true
		matching, _ := store.Add(draft)

		draft.HasToiletPaper = false
		other, _ := store.Add(draft)

		filtered := ids(store.Filtered())
		if !contains(filtered, matching) {
			t.Errorf("filtered view %v missing matching toilet %q", filtered, matching)
		}
		if contains(filtered, other) {
			t.Errorf("filtered view %v contains non-matching toilet %q", filtered, other)
		}
	})
}

func TestAddReview(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("ratings 4 3 5 average to 4.0", func(t *testing.T) {
		store := New(WithClock(func() time.Time { return now }))
		id, err := store.Add(validDraft())
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}

		for _, rating := range []int{4, 3, 5} {
			_, err := store.AddReview(id, models.Review{
				UserID:   "u1",
				UserName: "Nimal",
				Rating:   rating,
				Comment:  "ok",
			})
			if err != nil {
				t.Fatalf("AddReview(%d) failed: %v", rating, err)
			}
		}

		got, _ := store.Get(id)
		if math.Abs(got.Cleanliness-4.0) > 1e-9 {
			t.Errorf("cleanliness = %v, want 4.0", got.Cleanliness)
		}
		if got.ReviewCount != 3 {
			t.Errorf("reviewCount = %d, want 3", got.ReviewCount)
		}
		if len(got.Reviews) != 3 {
			t.Fatalf("reviews = %d, want 3", len(got.Reviews))
		}
		for i, want := range []int{4, 3, 5} {
			if got.Reviews[i].Rating != want {
				t.Errorf("review %d rating = %d, want %d", i, got.Reviews[i].Rating, want)
			}
		}
		if got.Reviews[0].Date != "2024-03-01T12:00:00Z" {
			t.Errorf("date = %q", got.Reviews[0].Date)
		}
	})

	t.Run("folds into seeded aggregate", func(t *testing.T) {
		store := New()
		store.Load(seed.Toilets(), nil)

		updated, err := store.AddReview("1", models.Review{Rating: 5, Comment: "Much better now", Likes: 9})
		if err != nil {
			t.Fatalf("AddReview failed: %v", err)
		}
		// (3.5 × 12 + 5) / 13 = 3.615...
		if updated.Cleanliness != 3.6 {
			t.Errorf("cleanliness = %v, want 3.6", updated.Cleanliness)
		}
		if updated.ReviewCount != 13 {
			t.Errorf("reviewCount = %d, want 13", updated.ReviewCount)
		}
		if last := updated.Reviews[len(updated.Reviews)-1]; last.Likes != 0 {
			t.Errorf("review likes = %d, want 0", last.Likes)
		}
	})

	t.Run("full and filtered views agree", func(t *testing.T) {
		store := New()
		store.Load(seed.Toilets(), nil)
		store.ApplyFilters(Filter{Water: true})

		if _, err := store.AddReview("2", models.Review{Rating: 1, Comment: "Dirty today"}); err != nil {
			t.Fatalf("AddReview failed: %v", err)
		}

		full, _ := store.Get("2")
		var filtered *models.Toilet
		for _, toilet := range store.Filtered() {
			if toilet.ID == "2" {
				filtered = &toilet
				break
			}
		}
		if filtered == nil {
			t.Fatal("toilet 2 missing from filtered view")
		}
		if full.Cleanliness != filtered.Cleanliness || full.ReviewCount != filtered.ReviewCount {
			t.Errorf("views disagree: full=%v/%d filtered=%v/%d",
				full.Cleanliness, full.ReviewCount, filtered.Cleanliness, filtered.ReviewCount)
		}
	})

	t.Run("unknown id leaves store unmodified", func(t *testing.T) {
		store := New()
		store.Load(seed.Toilets(), nil)
		before := store.List()

		_, err := store.AddReview("missing", models.Review{Rating: 4, Comment: "fine"})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}

		after := store.List()
		for i := range before {
			if before[i].ReviewCount != after[i].ReviewCount || len(before[i].Reviews) != len(after[i].Reviews) {
				t.Errorf("toilet %s modified", before[i].ID)
			}
		}
	})

	t.Run("invalid ratings and comments rejected", func(t *testing.T) {
		tests := []struct {
			name   string
			review models.Review
			field  string
		}{
			{name: "rating zero", review: models.Review{Rating: 0, Comment: "ok"}, field: "rating"},
			{name: "rating six", review: models.Review{Rating: 6, Comment: "ok"}, field: "rating"},
			{name: "negative rating", review: models.Review{Rating: -1, Comment: "ok"}, field: "rating"},
			{name: "blank comment", review: models.Review{Rating: 3, Comment: "   "}, field: "comment"},
		}

		store := New()
		store.Load(seed.Toilets(), nil)

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := store.AddReview("1", tt.review)
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				if FieldErrors(err)[tt.field] == "" {
					t.Errorf("missing %q field error in %v", tt.field, err)
				}
				got, _ := store.Get("1")
				if got.ReviewCount != 12 {
					t.Errorf("reviewCount = %d, want 12", got.ReviewCount)
				}
			})
		}
	})
}

func TestMarkers(t *testing.T) {
	t.Run("colors follow cleanliness and user marker added", func(t *testing.T) {
		store := New()
		store.Load(seed.Toilets(), &colombo)

		markers := store.Markers()
		if len(markers) != 6 {
			t.Fatalf("markers = %d, want 6", len(markers))
		}

		colors := map[string]string{}
		userMarkers := 0
		for _, m := range markers {
			if m.User {
				userMarkers++
				if m.Location != colombo {
					t.Errorf("user marker at %v, want %v", m.Location, colombo)
				}
				continue
			}
			colors[m.ToiletID] = m.Color
		}
		if userMarkers != 1 {
			t.Errorf("user markers = %d, want 1", userMarkers)
		}

		want := map[string]string{"1": "blue", "2": "green", "3": "green", "4": "yellow", "5": "blue"}
		for id, color := range want {
			if colors[id] != color {
				t.Errorf("toilet %s color = %q, want %q", id, colors[id], color)
			}
		}
	})

	t.Run("markers follow the active filter", func(t *testing.T) {
		store := New()
		store.Load(seed.Toilets(), nil)
		store.ApplyFilters(Filter{MinRating: 4})

		markers := store.Markers()
		if len(markers) != 2 {
			t.Errorf("markers = %d, want 2", len(markers))
		}
		for _, m := range markers {
			if m.User {
				t.Error("unexpected user marker without user location")
			}
		}
	})
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
