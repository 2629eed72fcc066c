package usecase

import (
	authdomain "calendar-backend/internal/auth/domain"
	authdto "calendar-backend/internal/auth/dto"
)

// AuthUsecase defines the authentication operations exposed to delivery
type AuthUsecase interface {
	// Login authenticates by email or username and returns a bearer token
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// Register creates a new account with a server-generated id
	Register(req *authdto.RegisterRequest) (*authdomain.User, error)

	// Authenticate resolves an identifier (email or username) and checks
	// the password. Both unknown identifier and wrong password return
	// domain.ErrInvalidCredentials.
	Authenticate(identifier, password string) (*authdomain.User, error)

	// IssueToken signs a time-limited token with the email as subject
	IssueToken(email string) (string, error)

	// ValidateToken verifies signature and expiry and returns the subject
	ValidateToken(tokenString string) (string, error)

	// ResolveUser maps a validated subject back to a live user record
	ResolveUser(subject string) (*authdomain.User, error)
}
