package httpx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	domainauth "github.com/cenentury0941/ready-api/internal/domain/auth"
	"github.com/cenentury0941/ready-api/internal/service"
)

// discardLogger returns a logger whose output is thrown away, for tests
// that exercise logging middleware without asserting on log lines.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockAuthService is a test double for the auth service interface.
// Zero value behaves as a happy path; override the func fields to steer
// individual cases.
type mockAuthService struct {
	beginLoginFunc    func(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error)
	completeLoginFunc func(ctx context.Context, input service.CompleteLoginInput) (*service.CompleteLoginResult, error)
	getSessionFunc    func(ctx context.Context, sessionID string) (*domainauth.Session, error)
	logoutFunc        func(ctx context.Context, sessionID string) error
}

func (m *mockAuthService) BeginLogin(
	ctx context.Context,
	redirectURL string,
) (*service.BeginLoginResult, error) {
	if m.beginLoginFunc != nil {
		return m.beginLoginFunc(ctx, redirectURL)
	}
	return &service.BeginLoginResult{
		AuthURL: "https://idp.example.com/auth?state=test-state&nonce=test-nonce",
		State:   "test-state",
		Nonce:   "test-nonce",
	}, nil
}

func (m *mockAuthService) CompleteLogin(
	ctx context.Context,
	input service.CompleteLoginInput,
) (*service.CompleteLoginResult, error) {
	if m.completeLoginFunc != nil {
		return m.completeLoginFunc(ctx, input)
	}
	return &service.CompleteLoginResult{
		Session: testUserSession(),
	}, nil
}

func (m *mockAuthService) GetSession(
	ctx context.Context,
	sessionID string,
) (*domainauth.Session, error) {
	if m.getSessionFunc != nil {
		return m.getSessionFunc(ctx, sessionID)
	}
	sess := testUserSession()
	sess.ID = sessionID
	return &sess, nil
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.logoutFunc != nil {
		return m.logoutFunc(ctx, sessionID)
	}
	return nil
}

func testUserSession() domainauth.Session {
	return domainauth.Session{
		ID:          "test-session-id",
		UserID:      "test-user",
		DisplayName: "Test Reader",
		Email:       "test@example.com",
		Role:        domainauth.RoleUser,
		ExpiresAt:   time.Now().Add(time.Hour),
	}
}

func testAdminSession() domainauth.Session {
	return domainauth.Session{
		ID:          "admin-session-id",
		UserID:      "admin-user",
		DisplayName: "Test Admin",
		Email:       "admin@example.com",
		Role:        domainauth.RoleAdmin,
		ExpiresAt:   time.Now().Add(time.Hour),
	}
}

// withSession attaches a session to the request context, as the auth
// middleware would.
func withSession(r *http.Request, sess domainauth.Session) *http.Request {
	return r.WithContext(SetSessionInContext(r.Context(), &sess))
}
