// Package profile resolves user profile attributes from an external
// directory endpoint.
package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/cenentury0941/ready-api/config"
	apperrors "github.com/cenentury0941/ready-api/internal/errors"
)

// JMESPathEvaluator abstracts JMESPath operations for testability.
type JMESPathEvaluator interface {
	Evaluate(expr string, data any) (any, error)
}

type jmespathLibEvaluator struct{}

func (j jmespathLibEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// Directory implements ports.ProfileDirectory against an HTTP profile API.
// Location is a hard dependency of order placement: a missing base URL is
// surfaced as a configuration error before any request is issued. PhotoURL
// is best-effort and degrades to empty.
type Directory struct {
	cfg        config.ProfileConfig
	httpClient *http.Client
	jems       JMESPathEvaluator
	logger     *slog.Logger
}

// Options groups dependencies for NewDirectory.
type Options struct {
	Config     config.ProfileConfig
	HTTPClient *http.Client      // Optional, defaults to a 10s-timeout client
	Evaluator  JMESPathEvaluator // Optional, defaults to the go-jmespath library
	Logger     *slog.Logger      // Optional, defaults to slog.Default
}

// NewDirectory constructs a profile directory adapter.
func NewDirectory(opts Options) *Directory {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	jems := opts.Evaluator
	if jems == nil {
		jems = jmespathLibEvaluator{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Directory{
		cfg:        opts.Config,
		httpClient: httpClient,
		jems:       jems,
		logger:     logger.With("component", "profile_directory"),
	}
}

// Location returns the user's delivery location. Falls back to the
// configured default when the profile carries none.
func (d *Directory) Location(ctx context.Context, userID string) (string, error) {
	payload, err := d.fetch(ctx, userID)
	if err != nil {
		return "", err
	}

	loc, err := d.extractString(payload, d.cfg.LocationExpr)
	if err != nil {
		return "", fmt.Errorf("extract location: %w", err)
	}
	if loc == "" {
		loc = d.cfg.DefaultLocation
	}
	return loc, nil
}

// PhotoURL returns the user's profile photo URL. Any failure degrades to
// an empty URL; notes and orders render without a photo.
func (d *Directory) PhotoURL(ctx context.Context, userID string) (string, error) {
	payload, err := d.fetch(ctx, userID)
	if err != nil {
		if apperrors.IsConfiguration(err) {
			return "", nil
		}
		d.logger.WarnContext(ctx, "profile photo lookup failed", "user_id", userID, "err", err)
		return "", nil
	}

	photo, err := d.extractString(payload, d.cfg.PhotoExpr)
	if err != nil {
		d.logger.WarnContext(ctx, "profile photo extraction failed", "user_id", userID, "err", err)
		return "", nil
	}
	return photo, nil
}

func (d *Directory) fetch(ctx context.Context, userID string) (map[string]any, error) {
	if strings.TrimSpace(d.cfg.BaseURL) == "" {
		return nil, apperrors.Configuration("Profile directory is not configured. Contact an administrator.")
	}
	if strings.TrimSpace(userID) == "" {
		return nil, apperrors.Validation("user ID is required")
	}

	endpoint := d.cfg.BaseURL + "/users/" + url.PathEscape(userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build profile request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.NotFound("Profile not found")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile endpoint returned status %d", resp.StatusCode)
	}

	var payload map[string]any
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, fmt.Errorf("decode profile payload: %w", decodeErr)
	}
	return payload, nil
}

func (d *Directory) extractString(payload map[string]any, expr string) (string, error) {
	if strings.TrimSpace(expr) == "" {
		return "", nil
	}
	v, err := d.jems.Evaluate(expr, payload)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", nil
	}
	return strings.TrimSpace(s), nil
}
