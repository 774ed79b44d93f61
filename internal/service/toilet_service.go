package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/loofinder/internal/auth"
	"github.com/mmynk/loofinder/internal/geolocation"
	"github.com/mmynk/loofinder/internal/middleware"
	"github.com/mmynk/loofinder/internal/models"
	"github.com/mmynk/loofinder/internal/session"
	"github.com/mmynk/loofinder/internal/toilets"
)

// ToiletService exposes the location store over Connect.
type ToiletService struct {
	store         *toilets.Store
	sessions      *session.Store
	locator       geolocation.Locator
	locateTimeout time.Duration
}

// NewToiletService creates a ToiletService. The locator is consulted again
// each time an add-toilet flow asks for its default marker position.
func NewToiletService(store *toilets.Store, sessions *session.Store, locator geolocation.Locator, locateTimeout time.Duration) *ToiletService {
	return &ToiletService{
		store:         store,
		sessions:      sessions,
		locator:       locator,
		locateTimeout: locateTimeout,
	}
}

// NewToiletServiceHandler builds the HTTP handler serving every ToiletService
// procedure. AddToilet and AddReview additionally require a session token.
func NewToiletServiceHandler(svc *ToiletService, jwtManager *auth.JWTManager, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
	authed := append(append([]connect.HandlerOption{}, opts...),
		connect.WithInterceptors(middleware.RequireAuth(jwtManager)),
	)

	mux := http.NewServeMux()
	mux.Handle(ListToiletsProcedure, connect.NewUnaryHandler(ListToiletsProcedure, svc.ListToilets, opts...))
	mux.Handle(GetToiletProcedure, connect.NewUnaryHandler(GetToiletProcedure, svc.GetToilet, opts...))
	mux.Handle(AddToiletProcedure, connect.NewUnaryHandler(AddToiletProcedure, svc.AddToilet, authed...))
	mux.Handle(AddReviewProcedure, connect.NewUnaryHandler(AddReviewProcedure, svc.AddReview, authed...))
	mux.Handle(ApplyFiltersProcedure, connect.NewUnaryHandler(ApplyFiltersProcedure, svc.ApplyFilters, opts...))
	mux.Handle(ListMarkersProcedure, connect.NewUnaryHandler(ListMarkersProcedure, svc.ListMarkers, opts...))
	mux.Handle(GetDefaultPositionProcedure, connect.NewUnaryHandler(GetDefaultPositionProcedure, svc.GetDefaultPosition, opts...))

	return "/" + ToiletServiceName + "/", mux
}

// ListToilets returns the full list, the filtered view and the active filter.
func (s *ToiletService) ListToilets(ctx context.Context, req *connect.Request[ListToiletsRequest]) (*connect.Response[ListToiletsResponse], error) {
	resp := &ListToiletsResponse{
		Toilets:  s.store.List(),
		Filtered: s.store.Filtered(),
		Filter:   s.store.ActiveFilter(),
	}
	if loc, ok := s.store.UserLocation(); ok {
		resp.UserLocation = &loc
	}

	slog.Debug("ListToilets successful", "count", len(resp.Toilets), "filtered", len(resp.Filtered))
	return connect.NewResponse(resp), nil
}

// GetToilet retrieves one toilet with its reviews.
func (s *ToiletService) GetToilet(ctx context.Context, req *connect.Request[GetToiletRequest]) (*connect.Response[GetToiletResponse], error) {
	if req.Msg.ID == "" {
		return nil, invalidArgument(map[string]string{"id": "id is required"})
	}

	toilet, err := s.store.Get(req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&GetToiletResponse{Toilet: toilet}), nil
}

// AddToilet validates the form and inserts a new toilet.
func (s *ToiletService) AddToilet(ctx context.Context, req *connect.Request[AddToiletRequest]) (*connect.Response[AddToiletResponse], error) {
	user, err := s.sessionUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("AddToilet request received", "name", req.Msg.Name, "user_id", user.ID)

	id, err := s.store.Add(draftFromRequest(req.Msg))
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&AddToiletResponse{ID: id}), nil
}

// AddReview records a review by the logged-in user.
func (s *ToiletService) AddReview(ctx context.Context, req *connect.Request[AddReviewRequest]) (*connect.Response[AddReviewResponse], error) {
	user, err := s.sessionUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("AddReview request received",
		"toilet_id", req.Msg.ToiletID,
		"rating", req.Msg.Rating,
		"user_id", user.ID,
	)

	toilet, err := s.store.AddReview(req.Msg.ToiletID, models.Review{
		UserID:   user.ID,
		UserName: user.Name,
		Rating:   req.Msg.Rating,
		Comment:  req.Msg.Comment,
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&AddReviewResponse{Toilet: toilet}), nil
}

// ApplyFilters replaces the active filter and returns the filtered view.
func (s *ToiletService) ApplyFilters(ctx context.Context, req *connect.Request[ApplyFiltersRequest]) (*connect.Response[ApplyFiltersResponse], error) {
	f := req.Msg.Filter

	fields := map[string]string{}
	if f.MaleOnly && f.FemaleOnly {
		fields["gender"] = "Choose either male or female, not both"
	}
	if math.IsNaN(f.MinRating) || f.MinRating < 0 || f.MinRating > 5 {
		fields["minRating"] = "Minimum rating must be between 0 and 5"
	}
	if len(fields) > 0 {
		return nil, invalidArgument(fields)
	}

	list := s.store.ApplyFilters(f)
	slog.Info("Filters applied", "filter", fmt.Sprintf("%+v", f), "count", len(list))

	return connect.NewResponse(&ApplyFiltersResponse{Toilets: list}), nil
}

// ListMarkers returns map markers for the filtered view and the user.
func (s *ToiletService) ListMarkers(ctx context.Context, req *connect.Request[ListMarkersRequest]) (*connect.Response[ListMarkersResponse], error) {
	return connect.NewResponse(&ListMarkersResponse{Markers: s.store.Markers()}), nil
}

// GetDefaultPosition looks the device location up again to place the
// initial marker of an add-toilet flow, falling back to the default center.
func (s *ToiletService) GetDefaultPosition(ctx context.Context, req *connect.Request[GetDefaultPositionRequest]) (*connect.Response[GetDefaultPositionResponse], error) {
	pos, located := geolocation.PositionOrDefault(ctx, s.locator, s.locateTimeout)
	if !located {
		slog.Info("Device location unavailable, using default center")
	}
	return connect.NewResponse(&GetDefaultPositionResponse{Location: pos, Located: located}), nil
}

// sessionUser returns the current session identity, which must be the one
// the request token was issued to.
func (s *ToiletService) sessionUser(ctx context.Context) (*models.User, error) {
	user, ok := s.sessions.Current()
	if !ok {
		return nil, connect.NewError(connect.CodeUnauthenticated, errNotLoggedIn)
	}
	if tokenUser := middleware.GetUserID(ctx); tokenUser != user.ID {
		return nil, connect.NewError(connect.CodeUnauthenticated, errSessionMismatch)
	}
	return user, nil
}

func draftFromRequest(msg *AddToiletRequest) models.ToiletDraft {
	draft := models.ToiletDraft{
		Name:             msg.Name,
		Address:          msg.Address,
		Description:      msg.Description,
		Location:         msg.Location,
		Gender:           msg.Gender,
		OpeningHours:     msg.OpeningHours,
		Is24Hours:        msg.Is24Hours,
		IsFree:           msg.IsFree,
		HasAccessibility: msg.HasAccessibility,
		HasToiletPaper:   msg.HasToiletPaper,
		HasWater:         msg.HasWater,
	}
	if !msg.IsFree {
		price, err := strconv.ParseFloat(strings.TrimSpace(msg.Price), 64)
		if err != nil {
			// NaN fails store validation on the price field
			price = math.NaN()
		}
		draft.Price = price
	}
	return draft
}
