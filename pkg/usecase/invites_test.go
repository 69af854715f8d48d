package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/rosterhub/rosterhub/pkg/domain/interfaces/mocks"
	"github.com/rosterhub/rosterhub/pkg/domain/model"
	"github.com/rosterhub/rosterhub/pkg/domain/types"
	"github.com/rosterhub/rosterhub/pkg/usecase"
)

func newInvitesUC(client *mocks.BackendClientMock) *usecase.Invites {
	return usecase.NewInvites(client, usecase.NewResolver(client))
}

func TestAggregateTeamInvites(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Empty input issues zero network calls", func(t *testing.T) {
		client := &mocks.BackendClientMock{}

		cards := newInvitesUC(client).AggregateTeamInvites(ctx, nil)

		gt.Equal(t, len(cards), 0)
		gt.Equal(t, len(client.ListTeamInvitesCalls()), 0)
		gt.Equal(t, len(client.GetLeagueCalls()), 0)
	})

	t.Run("No pending invites skips resolution", func(t *testing.T) {
		client := &mocks.BackendClientMock{
			ListTeamInvitesFunc: func(ctx context.Context, id types.TeamID) ([]model.InviteRecord, error) {
				return nil, nil
			},
		}

		cards := newInvitesUC(client).AggregateTeamInvites(ctx, []model.TeamSummary{
			{ID: "t1", Name: "Alpha"},
		})

		gt.Equal(t, len(cards), 0)
		gt.Equal(t, len(client.ListTeamInvitesCalls()), 1)
		gt.Equal(t, len(client.GetLeagueCalls()), 0)
		gt.Equal(t, len(client.GetTeamCalls()), 0)
	})

	t.Run("One failing team only loses its own invites", func(t *testing.T) {
		client := &mocks.BackendClientMock{
			ListTeamInvitesFunc: func(ctx context.Context, id types.TeamID) ([]model.InviteRecord, error) {
				if id == "t2" {
					return nil, goerr.New("service unavailable")
				}
				return []model.InviteRecord{{
					ID:        "inv-1",
					Kind:      types.InviteKindLeague,
					Status:    types.InviteStatusPending,
					LeagueID:  "L9",
					CreatedAt: now,
				}}, nil
			},
			GetLeagueFunc: func(ctx context.Context, id types.LeagueID) (*model.LeagueRecord, error) {
				return &model.LeagueRecord{ID: id, Name: "Metro League"}, nil
			},
		}

		cards := newInvitesUC(client).AggregateTeamInvites(ctx, []model.TeamSummary{
			{ID: "t1", Name: "Alpha"},
			{ID: "t2", Name: "Beta"},
		})

		gt.Equal(t, len(cards), 1)
		gt.Equal(t, cards[0].Kind, types.InviteKindLeague)
		gt.Equal(t, cards[0].TeamID, types.TeamID("t1"))
		gt.Equal(t, cards[0].TeamName, "Alpha")
		gt.Equal(t, cards[0].LeagueID, types.LeagueID("L9"))
		gt.Equal(t, cards[0].LeagueName, "Metro League")
	})

	t.Run("League lookup failure degrades to placeholder label", func(t *testing.T) {
		client := &mocks.BackendClientMock{
			ListTeamInvitesFunc: func(ctx context.Context, id types.TeamID) ([]model.InviteRecord, error) {
				return []model.InviteRecord{{
					ID:        "inv-1",
					Kind:      types.InviteKindLeague,
					Status:    types.InviteStatusPending,
					LeagueID:  "L9",
					CreatedAt: now,
				}}, nil
			},
			GetLeagueFunc: func(ctx context.Context, id types.LeagueID) (*model.LeagueRecord, error) {
				return nil, goerr.New("timeout")
			},
		}

		cards := newInvitesUC(client).AggregateTeamInvites(ctx, []model.TeamSummary{
			{ID: "t1", Name: "Alpha"},
		})

		gt.Equal(t, len(cards), 1)
		gt.Equal(t, cards[0].LeagueName, "League")
	})

	t.Run("Flatten order follows input order", func(t *testing.T) {
		client := &mocks.BackendClientMock{
			ListTeamInvitesFunc: func(ctx context.Context, id types.TeamID) ([]model.InviteRecord, error) {
				return []model.InviteRecord{{
					ID:        types.InviteID("inv-" + id.String()),
					Kind:      types.InviteKindLeague,
					Status:    types.InviteStatusPending,
					LeagueID:  "L1",
					CreatedAt: now,
				}}, nil
			},
			GetLeagueFunc: func(ctx context.Context, id types.LeagueID) (*model.LeagueRecord, error) {
				return &model.LeagueRecord{ID: id, Name: "City League"}, nil
			},
		}

		cards := newInvitesUC(client).AggregateTeamInvites(ctx, []model.TeamSummary{
			{ID: "t1", Name: "Alpha"},
			{ID: "t2", Name: "Beta"},
			{ID: "t3", Name: "Gamma"},
		})

		gt.Equal(t, len(cards), 3)
		gt.Equal(t, cards[0].ID, types.InviteID("inv-t1"))
		gt.Equal(t, cards[1].ID, types.InviteID("inv-t2"))
		gt.Equal(t, cards[2].ID, types.InviteID("inv-t3"))

		// One league referenced three times resolves with one lookup
		gt.Equal(t, len(client.GetLeagueCalls()), 1)
	})

	t.Run("Match invites resolve the opposing team", func(t *testing.T) {
		client := &mocks.BackendClientMock{
			ListTeamInvitesFunc: func(ctx context.Context, id types.TeamID) ([]model.InviteRecord, error) {
				return []model.InviteRecord{{
					ID:        "inv-m1",
					Kind:      types.InviteKindTeamMatch,
					Status:    types.InviteStatusPending,
					MatchID:   "m1",
					TeamID:    "t9",
					CreatedAt: now,
				}}, nil
			},
			GetTeamFunc: func(ctx context.Context, id types.TeamID) (*model.TeamRecord, error) {
				return &model.TeamRecord{ID: id, Name: "Rivals United"}, nil
			},
		}

		cards := newInvitesUC(client).AggregateTeamInvites(ctx, []model.TeamSummary{
			{ID: "t1", Name: "Alpha"},
		})

		gt.Equal(t, len(cards), 1)
		gt.Equal(t, cards[0].Kind, types.InviteKindTeamMatch)
		gt.Equal(t, cards[0].MatchID, types.MatchID("m1"))
		gt.Equal(t, cards[0].OpponentID, types.TeamID("t9"))
		gt.Equal(t, cards[0].OpponentName, "Rivals United")
		gt.Equal(t, cards[0].TeamName, "Alpha")
	})

	t.Run("Unknown kinds are dropped", func(t *testing.T) {
		client := &mocks.BackendClientMock{
			ListTeamInvitesFunc: func(ctx context.Context, id types.TeamID) ([]model.InviteRecord, error) {
				return []model.InviteRecord{{
					ID:        "inv-x",
					Kind:      types.InviteKind("sponsor"),
					Status:    types.InviteStatusPending,
					CreatedAt: now,
				}}, nil
			},
		}

		cards := newInvitesUC(client).AggregateTeamInvites(ctx, []model.TeamSummary{
			{ID: "t1", Name: "Alpha"},
		})

		gt.Equal(t, len(cards), 0)
	})
}

func TestAggregateRefereeInvites(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Empty input issues zero network calls", func(t *testing.T) {
		client := &mocks.BackendClientMock{}

		cards := newInvitesUC(client).AggregateRefereeInvites(ctx, nil)

		gt.Equal(t, len(cards), 0)
		gt.Equal(t, len(client.ListMatchRefereeInvitesCalls()), 0)
	})

	t.Run("Referee names come from the user service", func(t *testing.T) {
		client := &mocks.BackendClientMock{
			ListMatchRefereeInvitesFunc: func(ctx context.Context, id types.MatchID) ([]model.InviteRecord, error) {
				return []model.InviteRecord{{
					ID:        "inv-r1",
					Kind:      types.InviteKindRefereeMatch,
					Status:    types.InviteStatusPending,
					MatchID:   id,
					RefereeID: "u7",
					CreatedAt: now,
				}}, nil
			},
			GetUserFunc: func(ctx context.Context, id types.UserID) (*model.UserRecord, error) {
				return &model.UserRecord{ID: id, Firstname: "Jo", Lastname: "Ref"}, nil
			},
		}

		cards := newInvitesUC(client).AggregateRefereeInvites(ctx, []model.MatchSummary{
			{ID: "m1", Title: "Semifinal"},
		})

		gt.Equal(t, len(cards), 1)
		gt.Equal(t, cards[0].Kind, types.InviteKindRefereeMatch)
		gt.Equal(t, cards[0].MatchTitle, "Semifinal")
		gt.Equal(t, cards[0].RefereeID, types.UserID("u7"))
		gt.Equal(t, cards[0].RefereeName, "Jo Ref")
	})

	t.Run("Failed match fetch only loses its own invites", func(t *testing.T) {
		client := &mocks.BackendClientMock{
			ListMatchRefereeInvitesFunc: func(ctx context.Context, id types.MatchID) ([]model.InviteRecord, error) {
				if id == "m2" {
					return nil, goerr.New("gateway timeout")
				}
				return []model.InviteRecord{{
					ID:        "inv-r1",
					Kind:      types.InviteKindRefereeMatch,
					Status:    types.InviteStatusPending,
					MatchID:   id,
					RefereeID: "u7",
					CreatedAt: now,
				}}, nil
			},
			GetUserFunc: func(ctx context.Context, id types.UserID) (*model.UserRecord, error) {
				return nil, goerr.New("user service down")
			},
		}

		cards := newInvitesUC(client).AggregateRefereeInvites(ctx, []model.MatchSummary{
			{ID: "m1", Title: "Semifinal"},
			{ID: "m2", Title: "Final"},
		})

		gt.Equal(t, len(cards), 1)
		gt.Equal(t, cards[0].MatchID, types.MatchID("m1"))
		// User lookup failure degrades to the namespace placeholder
		gt.Equal(t, cards[0].RefereeName, "Unknown User")
	})
}
