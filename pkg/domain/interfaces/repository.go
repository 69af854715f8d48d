package interfaces

import (
	"context"

	"github.com/rosterhub/rosterhub/pkg/domain/model"
)

// Repository is the local store backing the non-remote search sources:
// the signed-in user's own entity summaries and the mock fixtures.
type Repository interface {
	// Membership summaries (the caller's own teams/leagues)
	SaveSummary(ctx context.Context, result *model.SearchResult) error
	ListSummaries(ctx context.Context) ([]model.SearchResult, error)
	// FilterSummaries returns summaries whose name contains the query,
	// case-insensitively. An empty query matches nothing.
	FilterSummaries(ctx context.Context, query string) ([]model.SearchResult, error)

	// Fixture entries (mock data gated by IncludeMocks)
	SeedFixtures(ctx context.Context, fixtures []model.SearchResult) error
	ListFixtures(ctx context.Context) ([]model.SearchResult, error)

	// Close closes the repository
	Close() error
}
