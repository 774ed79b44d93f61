package service

import (
	"github.com/mmynk/loofinder/internal/models"
	"github.com/mmynk/loofinder/internal/toilets"
)

// Procedure paths, laid out the way protoc-gen-connect-go names them.
const (
	ToiletServiceName  = "loofinder.v1.ToiletService"
	SessionServiceName = "loofinder.v1.SessionService"

	ListToiletsProcedure        = "/loofinder.v1.ToiletService/ListToilets"
	GetToiletProcedure          = "/loofinder.v1.ToiletService/GetToilet"
	AddToiletProcedure          = "/loofinder.v1.ToiletService/AddToilet"
	AddReviewProcedure          = "/loofinder.v1.ToiletService/AddReview"
	ApplyFiltersProcedure       = "/loofinder.v1.ToiletService/ApplyFilters"
	ListMarkersProcedure        = "/loofinder.v1.ToiletService/ListMarkers"
	GetDefaultPositionProcedure = "/loofinder.v1.ToiletService/GetDefaultPosition"

	LoginProcedure       = "/loofinder.v1.SessionService/Login"
	RegisterProcedure    = "/loofinder.v1.SessionService/Register"
	LogoutProcedure      = "/loofinder.v1.SessionService/Logout"
	CurrentUserProcedure = "/loofinder.v1.SessionService/CurrentUser"
)

type ListToiletsRequest struct{}

type ListToiletsResponse struct {
	Toilets      []models.Toilet    `json:"toilets"`
	Filtered     []models.Toilet    `json:"filtered"`
	Filter       toilets.Filter     `json:"filter"`
	UserLocation *models.Coordinate `json:"userLocation,omitempty"`
}

type GetToiletRequest struct {
	ID string `json:"id"`
}

type GetToiletResponse struct {
	Toilet *models.Toilet `json:"toilet"`
}

// AddToiletRequest mirrors the add-toilet form. Price is the raw form text
// so that a non-numeric price can be reported against its field. Any id,
// distance, aggregate or review keys sent by the client are ignored.
type AddToiletRequest struct {
	Name             string             `json:"name"`
	Address          string             `json:"address"`
	Description      string             `json:"description"`
	Location         *models.Coordinate `json:"location"`
	Gender           models.Gender      `json:"gender"`
	OpeningHours     string             `json:"openingHours"`
	Is24Hours        bool               `json:"is24Hours"`
	IsFree           bool               `json:"isFree"`
	Price            string             `json:"price"`
	HasAccessibility bool               `json:"hasAccessibility"`
	HasToiletPaper   bool               `json:"hasToiletPaper"`
	HasWater         bool               `json:"hasWater"`
}

type AddToiletResponse struct {
	ID string `json:"id"`
}

type AddReviewRequest struct {
	ToiletID string `json:"toiletId"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

type AddReviewResponse struct {
	Toilet *models.Toilet `json:"toilet"`
}

type ApplyFiltersRequest struct {
	toilets.Filter
}

type ApplyFiltersResponse struct {
	Toilets []models.Toilet `json:"toilets"`
}

type ListMarkersRequest struct{}

type ListMarkersResponse struct {
	Markers []models.Marker `json:"markers"`
}

type GetDefaultPositionRequest struct{}

// GetDefaultPositionResponse seeds the add-toilet map marker. Located is
// false when the device location was unavailable and Location is the
// default map center.
type GetDefaultPositionResponse struct {
	Location models.Coordinate `json:"location"`
	Located  bool              `json:"located"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type LogoutRequest struct{}

type LogoutResponse struct{}

type CurrentUserRequest struct{}

type CurrentUserResponse struct {
	User     *models.User `json:"user,omitempty"`
	LoggedIn bool         `json:"loggedIn"`
}
