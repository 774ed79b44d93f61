package toilets

import (
	"fmt"
	"testing"

	"github.com/mmynk/loofinder/internal/models"
	"github.com/mmynk/loofinder/internal/seed"
)

func genderFixture() []models.Toilet {
	return []models.Toilet{
		{ID: "m", Gender: models.GenderMale, HasWater: true},
		{ID: "f", Gender: models.GenderFemale, HasAccessibility: true},
		{ID: "a", Gender: models.GenderAll, HasToiletPaper: true, HasWater: true},
	}
}

func TestApplyFilters(t *testing.T) {
	tests := []struct {
		name   string
		seed   []models.Toilet
		filter Filter
		want   []string
	}{
		{
			name:   "zero filter passes everything",
			seed:   seed.Toilets(),
			filter: Filter{},
			want:   []string{"1", "2", "3", "4", "5"},
		},
		{
			name:   "min rating 4",
			seed:   seed.Toilets(),
			filter: Filter{MinRating: 4},
			want:   []string{"2", "3"},
		},
		{
			name:   "min rating is inclusive",
			seed:   seed.Toilets(),
			filter: Filter{MinRating: 4.2},
			want:   []string{"2", "3"},
		},
		{
			name:   "accessibility",
			seed:   seed.Toilets(),
			filter: Filter{Accessibility: true},
			want:   []string{"1", "2", "3", "5"},
		},
		{
			name:   "toilet paper",
			seed:   seed.Toilets(),
			filter: Filter{ToiletPaper: true},
			want:   []string{"2", "3"},
		},
		{
			name:   "predicates are combined",
			seed:   seed.Toilets(),
			filter: Filter{Accessibility: true, Water: true, MinRating: 3.6},
			want:   []string{"2", "3", "5"},
		},
		{
			name:   "male only passes male and all",
			seed:   genderFixture(),
			filter: Filter{MaleOnly: true},
			want:   []string{"m", "a"},
		},
		{
			name:   "female only passes female and all",
			seed:   genderFixture(),
			filter: Filter{FemaleOnly: true},
			want:   []string{"f", "a"},
		},
		{
			name:   "both gender filters leave only unisex",
			seed:   genderFixture(),
			filter: Filter{MaleOnly: true, FemaleOnly: true},
			want:   []string{"a"},
		},
		{
			name:   "nothing matches",
			seed:   genderFixture(),
			filter: Filter{FemaleOnly: true, Water: true, ToiletPaper: false, Accessibility: true},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := New()
			store.Load(tt.seed, nil)

			got := ids(store.ApplyFilters(tt.filter))
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("ApplyFilters() = %v, want %v", got, tt.want)
			}
			if fmt.Sprint(ids(store.Filtered())) != fmt.Sprint(tt.want) {
				t.Errorf("Filtered() = %v, want %v", ids(store.Filtered()), tt.want)
			}
			if len(store.List()) != len(tt.seed) {
				t.Errorf("full list size = %d, want %d", len(store.List()), len(tt.seed))
			}
			if store.ActiveFilter() != tt.filter {
				t.Errorf("ActiveFilter() = %+v, want %+v", store.ActiveFilter(), tt.filter)
			}
		})
	}
}

func TestMaleOnlyNeverReturnsFemale(t *testing.T) {
	store := New()
	list := append(seed.Toilets(), genderFixture()...)
	store.Load(list, nil)

	for _, toilet := range store.ApplyFilters(Filter{MaleOnly: true}) {
		if toilet.Gender == models.GenderFemale {
			t.Errorf("male filter returned female toilet %s", toilet.ID)
		}
	}
}

func TestFiltersAreRecomputedFromFullList(t *testing.T) {
	store := New()
	store.Load(seed.Toilets(), nil)

	store.ApplyFilters(Filter{MinRating: 4})
	got := ids(store.ApplyFilters(Filter{}))
	if fmt.Sprint(got) != "[1 2 3 4 5]" {
		t.Errorf("clearing filters = %v, want all seed toilets", got)
	}
}
