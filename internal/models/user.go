package models

// User is the identity held by the session store.
// At most one User is logged in per running session.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	// Name is the display name shown next to reviews.
	Name string `json:"name"`

	// Email is the address supplied at login or registration.
	Email string `json:"email"`
}
