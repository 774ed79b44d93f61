package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/mmynk/loofinder/internal/models"
)

// DemoUserName is the display name given to every mock login.
const DemoUserName = "Demo User"

// MockAuthenticator accepts every credential.
//
// WARNING: this is NOT a security boundary. No password is checked or
// stored anywhere; any caller can log in as any email address.
//
// TODO: replace with a credential-verifying Authenticator backed by a user
// store before exposing the service beyond a demo.
type MockAuthenticator struct {
	newID func() string
}

// NewMockAuthenticator creates the always-succeeding authenticator.
func NewMockAuthenticator() *MockAuthenticator {
	return &MockAuthenticator{newID: func() string { return uuid.New().String() }}
}

// ValidateCredential accepts anything.
func (a *MockAuthenticator) ValidateCredential(string) error {
	return nil
}

// Register synthesizes an identity from the supplied name and email.
func (a *MockAuthenticator) Register(_ context.Context, name, email, _ string) (*models.User, error) {
	return &models.User{
		ID:    a.newID(),
		Name:  name,
		Email: email,
	}, nil
}

// Authenticate synthesizes a placeholder identity for the supplied email.
func (a *MockAuthenticator) Authenticate(_ context.Context, email, _ string) (*models.User, error) {
	return &models.User{
		ID:    a.newID(),
		Name:  DemoUserName,
		Email: email,
	}, nil
}
