package service

import (
	"connectrpc.com/connect"
)

// ToiletServiceClient calls the ToiletService procedures.
type ToiletServiceClient struct {
	ListToilets        *connect.Client[ListToiletsRequest, ListToiletsResponse]
	GetToilet          *connect.Client[GetToiletRequest, GetToiletResponse]
	AddToilet          *connect.Client[AddToiletRequest, AddToiletResponse]
	AddReview          *connect.Client[AddReviewRequest, AddReviewResponse]
	ApplyFilters       *connect.Client[ApplyFiltersRequest, ApplyFiltersResponse]
	ListMarkers        *connect.Client[ListMarkersRequest, ListMarkersResponse]
	GetDefaultPosition *connect.Client[GetDefaultPositionRequest, GetDefaultPositionResponse]
}

// NewToiletServiceClient creates a client for the server at baseURL.
func NewToiletServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ToiletServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &ToiletServiceClient{
		ListToilets:        connect.NewClient[ListToiletsRequest, ListToiletsResponse](httpClient, baseURL+ListToiletsProcedure, opts...),
		GetToilet:          connect.NewClient[GetToiletRequest, GetToiletResponse](httpClient, baseURL+GetToiletProcedure, opts...),
		AddToilet:          connect.NewClient[AddToiletRequest, AddToiletResponse](httpClient, baseURL+AddToiletProcedure, opts...),
		AddReview:          connect.NewClient[AddReviewRequest, AddReviewResponse](httpClient, baseURL+AddReviewProcedure, opts...),
		ApplyFilters:       connect.NewClient[ApplyFiltersRequest, ApplyFiltersResponse](httpClient, baseURL+ApplyFiltersProcedure, opts...),
		ListMarkers:        connect.NewClient[ListMarkersRequest, ListMarkersResponse](httpClient, baseURL+ListMarkersProcedure, opts...),
		GetDefaultPosition: connect.NewClient[GetDefaultPositionRequest, GetDefaultPositionResponse](httpClient, baseURL+GetDefaultPositionProcedure, opts...),
	}
}

// SessionServiceClient calls the SessionService procedures.
type SessionServiceClient struct {
	Login       *connect.Client[LoginRequest, LoginResponse]
	Register    *connect.Client[RegisterRequest, RegisterResponse]
	Logout      *connect.Client[LogoutRequest, LogoutResponse]
	CurrentUser *connect.Client[CurrentUserRequest, CurrentUserResponse]
}

// NewSessionServiceClient creates a client for the server at baseURL.
func NewSessionServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *SessionServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &SessionServiceClient{
		Login:       connect.NewClient[LoginRequest, LoginResponse](httpClient, baseURL+LoginProcedure, opts...),
		Register:    connect.NewClient[RegisterRequest, RegisterResponse](httpClient, baseURL+RegisterProcedure, opts...),
		Logout:      connect.NewClient[LogoutRequest, LogoutResponse](httpClient, baseURL+LogoutProcedure, opts...),
		CurrentUser: connect.NewClient[CurrentUserRequest, CurrentUserResponse](httpClient, baseURL+CurrentUserProcedure, opts...),
	}
}
