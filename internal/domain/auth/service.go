package auth

import "context"

// AuthService verifies credentials against the user directory and issues
// access tokens.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
