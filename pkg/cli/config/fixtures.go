package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/rosterhub/rosterhub/pkg/domain/interfaces"
	"github.com/rosterhub/rosterhub/pkg/domain/model"
	"github.com/rosterhub/rosterhub/pkg/repository"
	"github.com/urfave/cli/v3"
)

// Fixtures holds mock data configuration
type Fixtures struct {
	Path         string
	IncludeMocks bool
}

// Flags returns CLI flags for Fixtures configuration
func (f *Fixtures) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "fixtures-file",
			Usage:       "Path to a YAML file with mock search entries",
			Category:    "Fixtures",
			Sources:     cli.EnvVars("ROSTERHUB_FIXTURES_FILE"),
			Destination: &f.Path,
		},
		&cli.BoolFlag{
			Name:        "include-mocks",
			Usage:       "Include mock fixtures in search results",
			Category:    "Fixtures",
			Sources:     cli.EnvVars("ROSTERHUB_INCLUDE_MOCKS"),
			Destination: &f.IncludeMocks,
		},
	}
}

// Configure creates the local repository, seeded with fixtures when a
// file is configured
func (f *Fixtures) Configure(ctx context.Context) (interfaces.Repository, error) {
	repo := repository.NewMemory()

	if f.Path == "" {
		if f.IncludeMocks {
			ctxlog.From(ctx).Warn("include-mocks is set but no fixtures file is configured")
		}
		return repo, nil
	}

	cfg, err := model.LoadFixturesConfig(f.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load fixtures")
	}

	if err := repo.SeedFixtures(ctx, cfg.SearchResults()); err != nil {
		return nil, goerr.Wrap(err, "failed to seed fixtures")
	}

	ctxlog.From(ctx).Info("Fixtures loaded",
		"path", f.Path,
		"count", len(cfg.Fixtures),
	)

	return repo, nil
}

// LogValue returns structured log value
func (f Fixtures) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", f.Path),
		slog.Bool("includeMocks", f.IncludeMocks),
	)
}
