package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rosterhub/rosterhub/pkg/service/backend"
	"github.com/urfave/cli/v3"
)

// Backend holds upstream service configuration
type Backend struct {
	BaseURL string
	Timeout time.Duration
}

// Flags returns CLI flags for Backend configuration
func (b *Backend) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "backend-url",
			Usage:       "Base URL of the upstream API",
			Category:    "Backend",
			Sources:     cli.EnvVars("ROSTERHUB_BACKEND_URL"),
			Destination: &b.BaseURL,
		},
		&cli.DurationFlag{
			Name:        "backend-timeout",
			Usage:       "Per-request deadline for upstream calls",
			Category:    "Backend",
			Value:       5 * time.Second,
			Sources:     cli.EnvVars("ROSTERHUB_BACKEND_TIMEOUT"),
			Destination: &b.Timeout,
		},
	}
}

// Configure creates the backend client
func (b *Backend) Configure() (*backend.Client, error) {
	if b.BaseURL == "" {
		return nil, goerr.New("backend URL is required. Please provide ROSTERHUB_BACKEND_URL")
	}
	return backend.New(b.BaseURL, backend.WithTimeout(b.Timeout)), nil
}

// LogValue returns structured log value
func (b Backend) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("baseURL", b.BaseURL),
		slog.Duration("timeout", b.Timeout),
	)
}
