package models

import "math"

// Gender is the gender policy of a toilet.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderAll    Gender = "all"
)

// Valid reports whether g is one of the known gender policies.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderAll:
		return true
	}
	return false
}

// Coordinate is a geographic position in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the coordinate lies within latitude/longitude bounds.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Toilet represents a public toilet location.
type Toilet struct {
	// ID is the unique identifier (UUID format for user-added toilets).
	ID string `json:"id"`

	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Description string     `json:"description"`
	Location    Coordinate `json:"location"`
	Gender      Gender     `json:"gender"`

	// OpeningHours is free text, e.g. "6:00 AM - 10:00 PM".
	OpeningHours string `json:"openingHours"`
	Is24Hours    bool   `json:"is24Hours"`

	// IsFree toilets always carry a Price of 0.
	IsFree bool `json:"isFree"`
	// Price is the usage fee in LKR.
	Price float64 `json:"price"`

	HasAccessibility bool `json:"hasAccessibility"`
	HasToiletPaper   bool `json:"hasToiletPaper"`
	HasWater         bool `json:"hasWater"`

	// Cleanliness is the mean review rating (0-5, one decimal), 0 without reviews.
	Cleanliness float64 `json:"cleanliness"`
	ReviewCount int     `json:"reviewCount"`

	// Likes and Dislikes are seeded at creation and never incremented.
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`

	// Distance from the current user in kilometers, 0 when the user location is unknown.
	Distance float64 `json:"distance"`

	// Reviews in insertion order.
	Reviews []Review `json:"reviews"`
}

// Clone returns a deep copy of the toilet.
func (t *Toilet) Clone() *Toilet {
	c := *t
	c.Reviews = make([]Review, len(t.Reviews))
	copy(c.Reviews, t.Reviews)
	return &c
}

// Review is a single cleanliness review. Reviews are immutable once stored.
type Review struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	// Rating is an integer from 1 to 5.
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	// Date is an ISO-8601 timestamp.
	Date  string `json:"date"`
	Likes int    `json:"likes,omitempty"`
}

// ToiletDraft holds the caller-supplied attributes of a new toilet.
// ID, distance, aggregates and reviews are assigned by the store.
type ToiletDraft struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	// Location is nil until the caller has picked a spot on the map.
	Location     *Coordinate `json:"location"`
	Gender       Gender      `json:"gender"`
	OpeningHours string      `json:"openingHours"`
	Is24Hours    bool        `json:"is24Hours"`
	IsFree       bool        `json:"isFree"`
	Price        float64     `json:"price"`

	HasAccessibility bool `json:"hasAccessibility"`
	HasToiletPaper   bool `json:"hasToiletPaper"`
	HasWater         bool `json:"hasWater"`
}

// Marker is a point to draw on the map surface.
type Marker struct {
	ToiletID    string     `json:"toiletId,omitempty"`
	Location    Coordinate `json:"location"`
	Label       string     `json:"label"`
	Cleanliness float64    `json:"cleanliness"`
	Color       string     `json:"color"`
	// User is set on the single marker showing the user's own position.
	User bool `json:"user,omitempty"`
}
