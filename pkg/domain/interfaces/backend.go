package interfaces

//go:generate moq -out mocks/backend_mock.go -pkg mocks . BackendClient

import (
	"context"

	"github.com/rosterhub/rosterhub/pkg/domain/model"
	"github.com/rosterhub/rosterhub/pkg/domain/types"
)

// LookupFunc resolves one identifier to a display label. Implementations
// wrap a single backend call; an error or empty label means the caller
// substitutes the namespace fallback.
type LookupFunc func(ctx context.Context, id string) (string, error)

// BackendClient is the gateway to the upstream services. All methods
// issue exactly one HTTP call.
type BackendClient interface {
	// Identity lookups
	GetUser(ctx context.Context, id types.UserID) (*model.UserRecord, error)
	GetTeam(ctx context.Context, id types.TeamID) (*model.TeamRecord, error)
	GetLeague(ctx context.Context, id types.LeagueID) (*model.LeagueRecord, error)

	// Entity-scoped pending invite listings
	ListTeamInvites(ctx context.Context, id types.TeamID) ([]model.InviteRecord, error)
	ListMatchRefereeInvites(ctx context.Context, id types.MatchID) ([]model.InviteRecord, error)

	// Free-text entity search
	Search(ctx context.Context, query string) ([]model.SearchResult, error)
}
