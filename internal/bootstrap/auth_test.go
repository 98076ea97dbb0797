package bootstrap

import (
	"io"
	"log/slog"
	"testing"

	"github.com/redis/go-redis/v9"

	"github.com/cenentury0941/ready-api/config"
)

func TestBuildAuthServiceReturnsNilWithoutRedis(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name string
		auth config.AuthConfig
	}{
		{
			name: "dev auth mode",
			auth: config.AuthConfig{
				Mode:       config.AuthModeMock,
				AdminClaim: "Dashboard.Write",
				DevAuth: config.DevAuthConfig{
					UserID: "dev",
					Email:  "dev@example.com",
					Claims: []string{"Dashboard.Write"},
				},
			},
		},
		{
			name: "oauth mode",
			auth: config.AuthConfig{
				Mode:       config.AuthModeOAuth,
				AdminClaim: "Dashboard.Write",
				OAuth: config.OAuthConfig{
					ClientID:     "client-id",
					ClientSecret: "client-secret",
					DiscoveryURL: "https://issuer.example.com",
					RedirectURL:  "https://shop.example.com/auth/callback",
					Scope:        "openid",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := AuthConfig{
				Auth:        tt.auth,
				RedisClient: nil,
				Logger:      logger,
			}

			if svc := BuildAuthService(cfg); svc != nil {
				t.Fatalf("BuildAuthService() = %v, want nil", svc)
			}
		})
	}
}

func TestBuildAuthServiceOAuthRequiresFullConfig(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	t.Cleanup(func() { _ = client.Close() })

	tests := []struct {
		name  string
		oauth config.OAuthConfig
	}{
		{
			name: "missing discovery url",
			oauth: config.OAuthConfig{
				ClientID:     "client-id",
				ClientSecret: "client-secret",
			},
		},
		{
			name: "missing client id",
			oauth: config.OAuthConfig{
				ClientSecret: "client-secret",
				DiscoveryURL: "https://issuer.example.com",
			},
		},
		{
			name: "missing client secret",
			oauth: config.OAuthConfig{
				ClientID:     "client-id",
				DiscoveryURL: "https://issuer.example.com",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := AuthConfig{
				Auth: config.AuthConfig{
					Mode:  config.AuthModeOAuth,
					OAuth: tt.oauth,
				},
				RedisClient: client,
				Logger:      logger,
			}

			if svc := BuildAuthService(cfg); svc != nil {
				t.Fatalf("BuildAuthService() = %v, want nil", svc)
			}
		})
	}
}

func TestBuildAuthServiceMockMode(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	t.Cleanup(func() { _ = client.Close() })

	cfg := AuthConfig{
		Auth: config.AuthConfig{
			Mode:       config.AuthModeMock,
			AdminClaim: "Dashboard.Write",
			DevAuth: config.DevAuthConfig{
				UserID:      "dev-user",
				DisplayName: "Dev Reader",
				Email:       "dev@example.com",
				Claims:      []string{"Dashboard.Write"},
			},
		},
		RedisClient: client,
		Logger:      logger,
	}

	if svc := BuildAuthService(cfg); svc == nil {
		t.Fatal("BuildAuthService() = nil, want service")
	}
}

func TestBuildAuthServiceMockModeRequiresIdentity(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	t.Cleanup(func() { _ = client.Close() })

	cfg := AuthConfig{
		Auth: config.AuthConfig{
			Mode:    config.AuthModeMock,
			DevAuth: config.DevAuthConfig{}, // no user id or email
		},
		RedisClient: client,
		Logger:      logger,
	}

	if svc := BuildAuthService(cfg); svc != nil {
		t.Fatalf("BuildAuthService() = %v, want nil", svc)
	}
}
