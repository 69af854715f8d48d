package usecase

import (
	"context"

	"github.com/rosterhub/rosterhub/pkg/domain/interfaces"
	"github.com/rosterhub/rosterhub/pkg/domain/model"
	"github.com/rosterhub/rosterhub/pkg/domain/types"
)

// IdentityResolver resolves opaque identifiers to display labels
type IdentityResolver interface {
	// Resolve builds a label map for ids in one namespace. It never
	// fails; unresolvable ids map to the namespace fallback label.
	Resolve(ctx context.Context, ns types.Namespace, ids []string, lookup interfaces.LookupFunc) types.LabelMap

	// Namespace-bound lookups over the backend client
	UserLookup() interfaces.LookupFunc
	TeamLookup() interfaces.LookupFunc
	LeagueLookup() interfaces.LookupFunc
}

// InviteAggregator collects pending invites scattered across per-entity
// endpoints into labeled cards
type InviteAggregator interface {
	AggregateTeamInvites(ctx context.Context, teams []model.TeamSummary) []model.InviteCard
	AggregateRefereeInvites(ctx context.Context, matches []model.MatchSummary) []model.InviteCard
}

// SearchUseCase combines remote, fixture and local search sources
type SearchUseCase interface {
	Search(ctx context.Context, query string, includeMocks bool) []model.SearchResult
}
