// Package backend selects the service.Service implementation named by the
// configuration.
package backend

import (
	"context"
	"errors"
	"fmt"

	"todo/internal/backend/googletasks"
	"todo/internal/backend/httpapi"
	"todo/internal/config"
	"todo/internal/service"
)

// ErrAuth marks failures the user fixes by (re)authenticating.
var ErrAuth = errors.New("auth error")

// New returns the backend selected by cfg.Backend.
func New(ctx context.Context, cfg *config.Config) (service.Service, error) {
	switch cfg.Backend {
	case config.BackendHTTP, "":
		return httpapi.New(cfg.Endpoint), nil
	case config.BackendGoogle:
		if !cfg.HasOAuthClient() {
			return nil, fmt.Errorf("%w: oauth_client.json not found in %s", ErrAuth, cfg.Dir)
		}
		if !cfg.HasToken() {
			return nil, fmt.Errorf("%w: not logged in (run: todo login)", ErrAuth)
		}
		c, err := googletasks.New(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrAuth, err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown backend: %s", cfg.Backend)
	}
}
