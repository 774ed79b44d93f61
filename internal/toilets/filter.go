package toilets

import "github.com/mmynk/loofinder/internal/models"

// Filter is the set of active predicates. A toilet must pass all of them.
// The zero Filter passes everything.
type Filter struct {
	Accessibility bool `json:"accessibility"`
	// MaleOnly and FemaleOnly are mutually exclusive at the API boundary.
	// If both are set the store applies both, so only unisex toilets pass.
	MaleOnly    bool `json:"maleOnly"`
	FemaleOnly  bool `json:"femaleOnly"`
	ToiletPaper bool `json:"toiletPaper"`
	Water       bool `json:"water"`
	// MinRating is a minimum cleanliness; 0 disables it.
	MinRating float64 `json:"minRating"`
}

// Matches reports whether t passes every active predicate.
func (f Filter) Matches(t *models.Toilet) bool {
	if f.Accessibility && !t.HasAccessibility {
		return false
	}
	if f.MaleOnly && t.Gender != models.GenderMale && t.Gender != models.GenderAll {
		return false
	}
	if f.FemaleOnly && t.Gender != models.GenderFemale && t.Gender != models.GenderAll {
		return false
	}
	if f.ToiletPaper && !t.HasToiletPaper {
		return false
	}
	if f.Water && !t.HasWater {
		return false
	}
	if f.MinRating > 0 && t.Cleanliness < f.MinRating {
		return false
	}
	return true
}

// Apply returns copies of the toilets that match, preserving order.
func (f Filter) Apply(list []*models.Toilet) []models.Toilet {
	out := make([]models.Toilet, 0, len(list))
	for _, t := range list {
		if f.Matches(t) {
			out = append(out, *t.Clone())
		}
	}
	return out
}
