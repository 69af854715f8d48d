package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/rosterhub/rosterhub/pkg/domain/interfaces"
	"github.com/rosterhub/rosterhub/pkg/domain/model"
	"github.com/rosterhub/rosterhub/pkg/domain/types"
	"github.com/rosterhub/rosterhub/pkg/utils/async"
)

// Invites aggregates pending invitations scattered across per-entity
// endpoints. One entity's failing fetch contributes an empty list and
// never affects its siblings; the aggregate itself cannot fail.
type Invites struct {
	client   interfaces.BackendClient
	resolver IdentityResolver
}

// NewInvites creates a new invite aggregator
func NewInvites(client interfaces.BackendClient, resolver IdentityResolver) *Invites {
	return &Invites{
		client:   client,
		resolver: resolver,
	}
}

var _ InviteAggregator = &Invites{}

// teamInvite pairs a raw invite with the team context it was fetched for
type teamInvite struct {
	team   model.TeamSummary
	record model.InviteRecord
}

// AggregateTeamInvites fans out one invite fetch per team, resolves the
// counterpart names (leagues for league invites, opposing teams for
// match invites) and returns one card per pending invite. Cards keep
// the flatten order: all of the first team's invites before the second's.
func (u *Invites) AggregateTeamInvites(ctx context.Context, teams []model.TeamSummary) []model.InviteCard {
	if len(teams) == 0 {
		return []model.InviteCard{}
	}

	logger := ctxlog.From(ctx)
	logger.Info("Aggregating team invites", "teamCount", len(teams))

	outcomes := async.Gather(ctx, len(teams), func(ctx context.Context, i int) ([]model.InviteRecord, error) {
		return u.client.ListTeamInvites(ctx, teams[i].ID)
	})

	// Flatten in input order. A failed fetch contributes nothing.
	var flat []teamInvite
	for i, outcome := range outcomes {
		if !outcome.OK() {
			logger.Error("Team invite fetch failed, skipping entity",
				"teamID", teams[i].ID,
				"error", outcome.Err,
			)
			continue
		}
		for _, record := range outcome.Value {
			flat = append(flat, teamInvite{team: teams[i], record: record})
		}
	}

	if len(flat) == 0 {
		return []model.InviteCard{}
	}

	// Collect counterpart ids needing resolution, one batch per namespace
	var leagueIDs, opponentIDs []string
	for _, ti := range flat {
		switch ti.record.Kind {
		case types.InviteKindLeague:
			leagueIDs = append(leagueIDs, ti.record.LeagueID.String())
		case types.InviteKindTeamMatch:
			opponentIDs = append(opponentIDs, ti.record.TeamID.String())
		}
	}

	leagueNames := u.resolver.Resolve(ctx, types.NamespaceLeague, leagueIDs, u.resolver.LeagueLookup())
	opponentNames := u.resolver.Resolve(ctx, types.NamespaceTeam, opponentIDs, u.resolver.TeamLookup())

	cards := make([]model.InviteCard, 0, len(flat))
	for _, ti := range flat {
		card := model.InviteCard{
			ID:        ti.record.ID,
			Kind:      ti.record.Kind,
			TeamID:    ti.team.ID,
			TeamName:  ti.team.DisplayName(),
			CreatedAt: ti.record.CreatedAt,
		}

		switch ti.record.Kind {
		case types.InviteKindLeague:
			card.LeagueID = ti.record.LeagueID
			card.LeagueName = leagueNames.Get(ti.record.LeagueID.String(), types.NamespaceLeague)
		case types.InviteKindTeamMatch:
			card.MatchID = ti.record.MatchID
			card.OpponentID = ti.record.TeamID
			card.OpponentName = opponentNames.Get(ti.record.TeamID.String(), types.NamespaceTeam)
		default:
			logger.Warn("Skipping invite of unexpected kind",
				"inviteID", ti.record.ID,
				"kind", ti.record.Kind,
			)
			continue
		}

		cards = append(cards, card)
	}

	logger.Info("Team invite aggregation completed",
		"teamCount", len(teams),
		"cardCount", len(cards),
	)

	return cards
}

// AggregateRefereeInvites fans out one referee-invite fetch per match
// and resolves referee display names
func (u *Invites) AggregateRefereeInvites(ctx context.Context, matches []model.MatchSummary) []model.InviteCard {
	if len(matches) == 0 {
		return []model.InviteCard{}
	}

	logger := ctxlog.From(ctx)

	outcomes := async.Gather(ctx, len(matches), func(ctx context.Context, i int) ([]model.InviteRecord, error) {
		return u.client.ListMatchRefereeInvites(ctx, matches[i].ID)
	})

	type matchInvite struct {
		match  model.MatchSummary
		record model.InviteRecord
	}

	var flat []matchInvite
	for i, outcome := range outcomes {
		if !outcome.OK() {
			logger.Error("Referee invite fetch failed, skipping entity",
				"matchID", matches[i].ID,
				"error", outcome.Err,
			)
			continue
		}
		for _, record := range outcome.Value {
			flat = append(flat, matchInvite{match: matches[i], record: record})
		}
	}

	if len(flat) == 0 {
		return []model.InviteCard{}
	}

	var refereeIDs []string
	for _, mi := range flat {
		if mi.record.Kind == types.InviteKindRefereeMatch {
			refereeIDs = append(refereeIDs, mi.record.RefereeID.String())
		}
	}

	refereeNames := u.resolver.Resolve(ctx, types.NamespaceUser, refereeIDs, u.resolver.UserLookup())

	cards := make([]model.InviteCard, 0, len(flat))
	for _, mi := range flat {
		if mi.record.Kind != types.InviteKindRefereeMatch {
			logger.Warn("Skipping invite of unexpected kind",
				"inviteID", mi.record.ID,
				"kind", mi.record.Kind,
			)
			continue
		}
		cards = append(cards, model.InviteCard{
			ID:          mi.record.ID,
			Kind:        mi.record.Kind,
			MatchID:     mi.match.ID,
			MatchTitle:  mi.match.Title,
			RefereeID:   mi.record.RefereeID,
			RefereeName: refereeNames.Get(mi.record.RefereeID.String(), types.NamespaceUser),
			CreatedAt:   mi.record.CreatedAt,
		})
	}

	return cards
}
