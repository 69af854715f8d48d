package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/rosterhub/rosterhub/pkg/domain/interfaces"
	"github.com/rosterhub/rosterhub/pkg/domain/types"
	"github.com/rosterhub/rosterhub/pkg/utils/async"
)

// Resolver turns batches of opaque identifiers into display labels by
// fanning lookups out concurrently. A failing lookup settles as the
// namespace fallback label; resolution as a whole never fails.
type Resolver struct {
	client interfaces.BackendClient
}

// NewResolver creates a new identity resolver
func NewResolver(client interfaces.BackendClient) *Resolver {
	return &Resolver{
		client: client,
	}
}

var _ IdentityResolver = &Resolver{}

// Resolve looks up every id concurrently and returns one label per
// distinct input id. Repeated ids are looked up once; every occurrence
// resolves to the same label. Lookup errors and empty labels degrade to
// the namespace fallback and are logged, never returned.
func (r *Resolver) Resolve(ctx context.Context, ns types.Namespace, ids []string, lookup interfaces.LookupFunc) types.LabelMap {
	labels := make(types.LabelMap, len(ids))
	if len(ids) == 0 {
		return labels
	}

	outcomes := async.GatherMap(ctx, ids, func(ctx context.Context, id string) (string, error) {
		return lookup(ctx, id)
	})

	for id, outcome := range outcomes {
		if !outcome.OK() {
			ctxlog.From(ctx).Error("Identity lookup failed, using fallback label",
				"namespace", ns,
				"id", id,
				"error", outcome.Err,
			)
			labels[id] = ns.FallbackLabel()
			continue
		}
		if outcome.Value == "" {
			labels[id] = ns.FallbackLabel()
			continue
		}
		labels[id] = outcome.Value
	}

	return labels
}

// UserLookup returns a lookup over the user service. The label applies
// the user display rule: "first last", then email, then fallback.
func (r *Resolver) UserLookup() interfaces.LookupFunc {
	return func(ctx context.Context, id string) (string, error) {
		user, err := r.client.GetUser(ctx, types.UserID(id))
		if err != nil {
			return "", err
		}
		return user.DisplayName(), nil
	}
}

// TeamLookup returns a lookup over the team service
func (r *Resolver) TeamLookup() interfaces.LookupFunc {
	return func(ctx context.Context, id string) (string, error) {
		team, err := r.client.GetTeam(ctx, types.TeamID(id))
		if err != nil {
			return "", err
		}
		return team.DisplayName(), nil
	}
}

// LeagueLookup returns a lookup over the league service
func (r *Resolver) LeagueLookup() interfaces.LookupFunc {
	return func(ctx context.Context, id string) (string, error) {
		league, err := r.client.GetLeague(ctx, types.LeagueID(id))
		if err != nil {
			return "", err
		}
		return league.DisplayName(), nil
	}
}
