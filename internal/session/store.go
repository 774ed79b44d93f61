// Package session holds the single logged-in identity and persists it to a
// durable key-value snapshot so it survives restarts.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mmynk/loofinder/internal/auth"
	"github.com/mmynk/loofinder/internal/models"
	"github.com/mmynk/loofinder/internal/storage"
)

// SnapshotKey is the fixed key the identity is stored under.
const SnapshotKey = "user"

// ErrInvalidCredential is returned by Register when the authenticator rejects
// the chosen credential.
var ErrInvalidCredential = errors.New("invalid credential")

// Store holds at most one identity. It is safe for concurrent use.
//
// Login and Register go through an auth.Authenticator; with the mock
// authenticator they always succeed and nothing here is a security boundary.
type Store struct {
	mu       sync.Mutex
	current  *models.User
	snapshot storage.Snapshot
	auth     auth.Authenticator
}

// New creates a Store and restores the identity saved in the snapshot.
// A missing, unreadable or corrupt snapshot starts the store logged out.
func New(ctx context.Context, snapshot storage.Snapshot, authenticator auth.Authenticator) *Store {
	s := &Store{snapshot: snapshot, auth: authenticator}
	s.current = s.restore(ctx)
	return s
}

func (s *Store) restore(ctx context.Context) *models.User {
	raw, ok, err := s.snapshot.Get(ctx, SnapshotKey)
	if err != nil {
		slog.Warn("Failed to read session snapshot, starting logged out", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil || user.ID == "" {
		slog.Warn("Corrupt session snapshot, starting logged out", "error", err)
		return nil
	}

	slog.Info("Session restored", "user_id", user.ID)
	return &user
}

// Current returns a copy of the logged-in identity.
func (s *Store) Current() (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, false
	}
	u := *s.current
	return &u, true
}

// Login replaces the current identity with the one the authenticator returns.
func (s *Store) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.auth.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.set(ctx, user); err != nil {
		return nil, err
	}
	slog.Info("User logged in", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Register creates an identity from name and email and logs it in.
func (s *Store) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if err := s.auth.ValidateCredential(password); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	user, err := s.auth.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.set(ctx, user); err != nil {
		return nil, err
	}
	slog.Info("User registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Logout clears the identity and removes it from the snapshot. The identity
// is cleared even when the snapshot delete fails; that error is returned so
// the caller knows a restart may restore the old session.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		slog.Info("User logged out", "user_id", s.current.ID)
	}
	s.current = nil

	if err := s.snapshot.Delete(ctx, SnapshotKey); err != nil {
		slog.Warn("Failed to clear session snapshot", "error", err)
		return fmt.Errorf("failed to clear session snapshot: %w", err)
	}
	return nil
}

func (s *Store) set(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.snapshot.Set(ctx, SnapshotKey, string(data)); err != nil {
		return fmt.Errorf("failed to save session snapshot: %w", err)
	}
	u := *user
	s.current = &u
	return nil
}
