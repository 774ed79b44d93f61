package auth

import (
	"context"

	"github.com/mmynk/loofinder/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// The session store only talks to this interface, so a real credential check
// can replace MockAuthenticator without touching the store or the RPC layer.
type Authenticator interface {
	// Register creates a new identity with the given name, email and credential.
	Register(ctx context.Context, name, email, credential string) (*models.User, error)

	// Authenticate verifies the credential and returns the identity if successful.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
