// Package admin provides use cases for administrator accounts.
// It implements account registration and credential verification,
// delegating password hashing to bcrypt and persistence to the repository.
package admin

import "errors"

// Sentinel errors for admin use case operations.
var (
	// ErrEmailTaken indicates that an account with the same email already exists.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials indicates that the email or password did not match.
	// The same error covers an unknown email and a wrong password so that
	// callers cannot distinguish the two cases.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
