package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/cenentury0941/ready-api/internal/domain/auth"
	mockauth "github.com/cenentury0941/ready-api/internal/mocks/auth"
	"github.com/cenentury0941/ready-api/internal/ports"
)

func newTestAuthService() (*AuthService, *mockauth.MockAuthProvider, *mockauth.MemorySessionStore) {
	provider := mockauth.NewMockAuthProvider()
	sessions := mockauth.NewMemorySessionStore()
	svc := NewAuthService(AuthServiceOptions{
		Provider: provider,
		Sessions: sessions,
		Roles:    mockauth.StaticRoleMapper{AdminClaim: "Dashboard.Write"},
	})
	return svc, provider, sessions
}

func TestAuthService_BeginLogin(t *testing.T) {
	svc, _, _ := newTestAuthService()

	result, err := svc.BeginLogin(context.Background(), "https://app.example.com/auth/callback")
	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", result.AuthURL)
	assert.Equal(t, "state-1", result.State)
	assert.Equal(t, "nonce-1", result.Nonce)

	// State and nonce are fresh per attempt.
	second, err := svc.BeginLogin(context.Background(), "https://app.example.com/auth/callback")
	require.NoError(t, err)
	assert.Equal(t, "state-2", second.State)
	assert.Equal(t, "nonce-2", second.Nonce)
}

func TestAuthService_BeginLogin_RequiresRedirectURL(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.BeginLogin(context.Background(), "")
	assert.Error(t, err)
}

func TestAuthService_BeginLogin_ProviderError(t *testing.T) {
	svc, provider, _ := newTestAuthService()
	provider.BeginFunc = func(_ context.Context, _ ports.BeginInput) (string, string, string, error) {
		return "", "", "", errors.New("idp unreachable")
	}

	_, err := svc.BeginLogin(context.Background(), "https://app.example.com/auth/callback")
	assert.ErrorContains(t, err, "begin auth flow")
}

func TestAuthService_CompleteLogin(t *testing.T) {
	svc, provider, sessions := newTestAuthService()
	provider.DefaultUser = domainauth.Identity{
		UserID:      "user-42",
		DisplayName: "Avid Reader",
		Email:       "avid.reader@example.com",
		Claims:      []string{"Catalog.Read"},
	}

	result, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{
		Code:  "auth-code",
		State: "state-1",
		Nonce: "nonce-1",
	})
	require.NoError(t, err)

	sess := result.Session
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "user-42", sess.UserID)
	assert.Equal(t, "Avid Reader", sess.DisplayName)
	assert.Equal(t, "avid.reader@example.com", sess.Email)
	assert.Equal(t, domainauth.RoleUser, sess.Role)
	assert.True(t, sess.ExpiresAt.After(time.Now()))

	stored, err := sessions.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess, stored)
}

func TestAuthService_CompleteLogin_AdminClaim(t *testing.T) {
	svc, provider, _ := newTestAuthService()
	provider.DefaultUser = domainauth.Identity{
		UserID:      "admin-1",
		DisplayName: "Store Admin",
		Claims:      []string{"Catalog.Read", "Dashboard.Write"},
	}

	result, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{
		Code:  "auth-code",
		State: "state-1",
		Nonce: "nonce-1",
	})
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleAdmin, result.Session.Role)
	assert.True(t, result.Session.IsAdmin())
}

func TestAuthService_CompleteLogin_Validation(t *testing.T) {
	svc, _, _ := newTestAuthService()

	tests := []struct {
		name  string
		input CompleteLoginInput
	}{
		{"missing code", CompleteLoginInput{State: "s", Nonce: "n"}},
		{"missing state", CompleteLoginInput{Code: "c", Nonce: "n"}},
		{"missing nonce", CompleteLoginInput{Code: "c", State: "s"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CompleteLogin(context.Background(), tt.input)
			assert.Error(t, err)
		})
	}
}

func TestAuthService_CompleteLogin_ExchangeError(t *testing.T) {
	svc, provider, _ := newTestAuthService()
	provider.ExchangeFunc = func(_ context.Context, _ ports.ExchangeInput) (domainauth.Identity, error) {
		return domainauth.Identity{}, errors.New("nonce mismatch")
	}

	_, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{
		Code:  "auth-code",
		State: "state-1",
		Nonce: "nonce-1",
	})
	assert.ErrorContains(t, err, "exchange authorization code")
}

func TestAuthService_GetSession(t *testing.T) {
	svc, _, sessions := newTestAuthService()
	require.NoError(t, sessions.Save(context.Background(), domainauth.Session{
		ID:        "sess-1",
		UserID:    "user-1",
		Role:      domainauth.RoleUser,
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	sess, err := svc.GetSession(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", sess.UserID)
}

func TestAuthService_GetSession_Expired(t *testing.T) {
	svc, _, sessions := newTestAuthService()
	require.NoError(t, sessions.Save(context.Background(), domainauth.Session{
		ID:        "sess-old",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, err := svc.GetSession(context.Background(), "sess-old")
	assert.ErrorIs(t, err, errSessionExpired)

	// Expired sessions are purged on read.
	_, err = sessions.Get(context.Background(), "sess-old")
	assert.ErrorIs(t, err, mockauth.ErrNotFound)
}

func TestAuthService_GetSession_NotFound(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.GetSession(context.Background(), "nope")
	assert.Error(t, err)
}

func TestAuthService_Logout(t *testing.T) {
	svc, _, sessions := newTestAuthService()
	require.NoError(t, sessions.Save(context.Background(), domainauth.Session{
		ID:        "sess-1",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	require.NoError(t, svc.Logout(context.Background(), "sess-1"))

	_, err := sessions.Get(context.Background(), "sess-1")
	assert.ErrorIs(t, err, mockauth.ErrNotFound)
}

func TestAuthService_Logout_EmptyID(t *testing.T) {
	svc, _, _ := newTestAuthService()
	assert.NoError(t, svc.Logout(context.Background(), ""))
}
