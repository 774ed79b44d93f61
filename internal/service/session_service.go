package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/loofinder/internal/auth"
	"github.com/mmynk/loofinder/internal/models"
	"github.com/mmynk/loofinder/internal/session"
)

// SessionService exposes the session store over Connect.
//
// Login and Register never verify credentials; see auth.MockAuthenticator.
type SessionService struct {
	sessions   *session.Store
	jwtManager *auth.JWTManager
}

// NewSessionService creates a new session service.
func NewSessionService(sessions *session.Store, jwtManager *auth.JWTManager) *SessionService {
	return &SessionService{
		sessions:   sessions,
		jwtManager: jwtManager,
	}
}

// NewSessionServiceHandler builds the HTTP handler serving every SessionService procedure.
func NewSessionServiceHandler(svc *SessionService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(LoginProcedure, connect.NewUnaryHandler(LoginProcedure, svc.Login, opts...))
	mux.Handle(RegisterProcedure, connect.NewUnaryHandler(RegisterProcedure, svc.Register, opts...))
	mux.Handle(LogoutProcedure, connect.NewUnaryHandler(LogoutProcedure, svc.Logout, opts...))
	mux.Handle(CurrentUserProcedure, connect.NewUnaryHandler(CurrentUserProcedure, svc.CurrentUser, opts...))

	return "/" + SessionServiceName + "/", mux
}

// Login starts a session for the given email.
func (s *SessionService) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	email := strings.TrimSpace(req.Msg.Email)
	if email == "" {
		return nil, invalidArgument(map[string]string{"email": "Email is required"})
	}

	user, err := s.sessions.Login(ctx, email, req.Msg.Password)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	token, err := s.issue(user)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&LoginResponse{User: user, Token: token}), nil
}

// Register creates an identity from the supplied name and email and logs it in.
func (s *SessionService) Register(ctx context.Context, req *connect.Request[RegisterRequest]) (*connect.Response[RegisterResponse], error) {
	name := strings.TrimSpace(req.Msg.Name)
	email := strings.TrimSpace(req.Msg.Email)

	fields := map[string]string{}
	if name == "" {
		fields["name"] = "Name is required"
	}
	if email == "" {
		fields["email"] = "Email is required"
	}
	if len(fields) > 0 {
		return nil, invalidArgument(fields)
	}

	user, err := s.sessions.Register(ctx, name, email, req.Msg.Password)
	if errors.Is(err, session.ErrInvalidCredential) {
		return nil, invalidArgument(map[string]string{"password": err.Error()})
	}
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	token, err := s.issue(user)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&RegisterResponse{User: user, Token: token}), nil
}

// Logout ends the current session. Tokens issued to it stop being accepted.
// If the snapshot cannot be cleared the session still ends in memory and the
// call fails with Internal.
func (s *SessionService) Logout(ctx context.Context, req *connect.Request[LogoutRequest]) (*connect.Response[LogoutResponse], error) {
	if err := s.sessions.Logout(ctx); err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&LogoutResponse{}), nil
}

// CurrentUser reports the logged-in identity, if any.
func (s *SessionService) CurrentUser(ctx context.Context, req *connect.Request[CurrentUserRequest]) (*connect.Response[CurrentUserResponse], error) {
	user, ok := s.sessions.Current()
	return connect.NewResponse(&CurrentUserResponse{User: user, LoggedIn: ok}), nil
}

func (s *SessionService) issue(user *models.User) (string, error) {
	token, err := s.jwtManager.Generate(user)
	if err != nil {
		return "", connect.NewError(connect.CodeInternal, err)
	}
	return token, nil
}
