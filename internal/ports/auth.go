package ports

// Package ports defines interfaces (hexagonal ports) for auth and profile
// behavior. Implementations live in internal/adapters; orchestration in
// internal/service.

import (
	"context"

	domainauth "github.com/cenentury0941/ready-api/internal/domain/auth"
)

// BeginInput carries inputs for initiating an auth flow.
type BeginInput struct {
	RedirectURL string
}

// ExchangeInput groups parameters for the code/token exchange.
type ExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// AuthProvider initiates and completes an authentication flow against an IdP.
type AuthProvider interface {
	// Begin starts the login flow and returns the provider auth URL, an opaque state, and a nonce.
	Begin(ctx context.Context, in BeginInput) (authURL, state, nonce string, err error)

	// Exchange completes the login flow, verifying state and nonce, and returns the authenticated identity.
	Exchange(ctx context.Context, in ExchangeInput) (domainauth.Identity, error)
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// RoleMapper folds provider role claims into an application role.
type RoleMapper interface {
	Map(claims []string) domainauth.Role
}

// ProfileDirectory resolves per-user profile attributes from an external
// profile endpoint. Location is required for order placement; PhotoURL is
// best-effort and may be empty.
type ProfileDirectory interface {
	Location(ctx context.Context, userID string) (string, error)
	PhotoURL(ctx context.Context, userID string) (string, error)
}
