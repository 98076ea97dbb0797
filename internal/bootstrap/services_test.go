package bootstrap

import (
	"io"
	"log/slog"
	"testing"

	"github.com/cenentury0941/ready-api/config"
)

func TestNewServicesNilDeps(t *testing.T) {
	container := NewServices(nil)
	if container.Books != nil || container.Orders != nil || container.Auth != nil {
		t.Fatalf("NewServices(nil) = %+v, want zero container", container)
	}
}

func TestNewServicesWiresDomainServices(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// No DB or redis connection is needed to wire the graph; adapters
	// only touch their backends on first use.
	container := NewServices(&ServiceDeps{
		Config: &config.AppConfig{},
		Logger: logger,
	})

	if container.Books == nil {
		t.Fatal("Books service not wired")
	}
	if container.Notes == nil {
		t.Fatal("Notes service not wired")
	}
	if container.Cart == nil {
		t.Fatal("Cart service not wired")
	}
	if container.Orders == nil {
		t.Fatal("Orders service not wired")
	}
	// Auth requires a redis client; without one it is disabled, not fatal.
	if container.Auth != nil {
		t.Fatalf("Auth = %v, want nil without redis", container.Auth)
	}
}

func TestBuildHTTPServerDefaults(t *testing.T) {
	server := BuildHTTPServer(&HTTPServerConfig{
		Config: &config.AppConfig{},
	})
	if server == nil {
		t.Fatal("BuildHTTPServer returned nil")
	}
	if server.Addr != ":8080" {
		t.Fatalf("Addr = %q, want :8080", server.Addr)
	}
	if server.Handler == nil {
		t.Fatal("Handler not set")
	}
}

func TestBuildHTTPServerNilConfig(t *testing.T) {
	if server := BuildHTTPServer(nil); server != nil {
		t.Fatalf("BuildHTTPServer(nil) = %v, want nil", server)
	}
}
