package model

import (
	"time"

	"github.com/rosterhub/rosterhub/pkg/domain/types"
)

// InviteRecord is a raw pending invitation as returned by one entity's
// invite endpoint. Fetched read-only; never mutated by the pipeline.
// Which party fields are set depends on the kind:
//   - league: LeagueID + TeamID
//   - team-match: MatchID + TeamID (the opposing team)
//   - referee-match: MatchID + RefereeID
type InviteRecord struct {
	ID        types.InviteID     `json:"id"`
	Kind      types.InviteKind   `json:"kind"`
	Status    types.InviteStatus `json:"status"`
	LeagueID  types.LeagueID     `json:"leagueId,omitempty"`
	TeamID    types.TeamID       `json:"teamId,omitempty"`
	MatchID   types.MatchID      `json:"matchId,omitempty"`
	RefereeID types.UserID       `json:"refereeId,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}

// InviteCard is the presentation-ready record built from a raw invite
// plus resolved display names. Every identifier on the raw record has a
// corresponding non-empty label here.
type InviteCard struct {
	ID   types.InviteID   `json:"id"`
	Kind types.InviteKind `json:"kind"`

	// League invite fields
	LeagueID   types.LeagueID `json:"leagueId,omitempty"`
	LeagueName string         `json:"leagueName,omitempty"`

	// Team context (league and team-match invites)
	TeamID   types.TeamID `json:"teamId,omitempty"`
	TeamName string       `json:"teamName,omitempty"`

	// Match invite fields
	MatchID      types.MatchID `json:"matchId,omitempty"`
	MatchTitle   string        `json:"matchTitle,omitempty"`
	OpponentID   types.TeamID  `json:"opponentId,omitempty"`
	OpponentName string        `json:"opponentName,omitempty"`

	// Referee invite fields
	RefereeID   types.UserID `json:"refereeId,omitempty"`
	RefereeName string       `json:"refereeName,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
