package devauth

import (
	"context"
	"strings"
	"testing"

	"github.com/cenentury0941/ready-api/internal/ports"
)

func TestProvider_BeginAndExchange(t *testing.T) {
	prov, err := NewProvider(Config{
		UserID:      "dev-user",
		DisplayName: "Dev Reader",
		Email:       "dev@example.com",
		Claims:      []string{"Dashboard.Write"},
	})
	if err != nil {
		t.Fatalf("NewProvider error: %v", err)
	}
	url, state, nonce, err := prov.Begin(context.Background(), ports.BeginInput{RedirectURL: "/"})
	if err != nil {
		t.Fatalf("Begin error: %v", err)
	}
	if !strings.HasPrefix(url, "/auth/callback?") {
		t.Fatalf("unexpected authURL: %s", url)
	}
	if state == "" || nonce == "" {
		t.Fatal("state and nonce should be generated")
	}
	id, err := prov.Exchange(context.Background(), ports.ExchangeInput{Code: "dev", State: state, Nonce: nonce})
	if err != nil {
		t.Fatalf("Exchange error: %v", err)
	}
	if id.UserID != "dev-user" || id.Email != "dev@example.com" || id.DisplayName != "Dev Reader" {
		t.Fatalf("unexpected identity: %+v", id)
	}
	if len(id.Claims) != 1 || id.Claims[0] != "Dashboard.Write" {
		t.Fatalf("unexpected claims: %+v", id.Claims)
	}
}

func TestNewProvider_Defaults(t *testing.T) {
	prov, err := NewProvider(Config{UserID: "dev-user", Email: "dev@example.com"})
	if err != nil {
		t.Fatalf("NewProvider error: %v", err)
	}
	id, err := prov.Exchange(context.Background(), ports.ExchangeInput{})
	if err != nil {
		t.Fatalf("Exchange error: %v", err)
	}
	if id.DisplayName != "dev-user" {
		t.Fatalf("display name should default to user ID, got %q", id.DisplayName)
	}
}

func TestNewProvider_Validation(t *testing.T) {
	if _, err := NewProvider(Config{Email: "dev@example.com"}); err == nil {
		t.Fatal("expected error for missing UserID")
	}
	if _, err := NewProvider(Config{UserID: "dev-user"}); err == nil {
		t.Fatal("expected error for missing Email")
	}
}
