package model

import (
	"strings"

	"github.com/rosterhub/rosterhub/pkg/domain/types"
)

// UserRecord is the user service response shape. Fields are optional on
// the wire; DisplayName applies all fallbacks so downstream code never
// re-checks for missing fields.
type UserRecord struct {
	ID        types.UserID `json:"id"`
	Firstname string       `json:"firstname"`
	Lastname  string       `json:"lastname"`
	Email     string       `json:"email"`
	AvatarURL string       `json:"avatarUrl,omitempty"`
}

// DisplayName returns "Firstname Lastname", falling back to the email
// address and then to the user namespace placeholder. Never empty.
func (u *UserRecord) DisplayName() string {
	if u == nil {
		return types.NamespaceUser.FallbackLabel()
	}
	name := strings.TrimSpace(strings.TrimSpace(u.Firstname) + " " + strings.TrimSpace(u.Lastname))
	if name != "" {
		return name
	}
	if u.Email != "" {
		return u.Email
	}
	return types.NamespaceUser.FallbackLabel()
}

// TeamRecord is the team service response shape
type TeamRecord struct {
	ID      types.TeamID `json:"id"`
	Name    string       `json:"name"`
	LogoURL string       `json:"logoUrl,omitempty"`
	Private bool         `json:"private,omitempty"`
}

// DisplayName returns the team name or the team namespace placeholder
func (t *TeamRecord) DisplayName() string {
	if t == nil || t.Name == "" {
		return types.NamespaceTeam.FallbackLabel()
	}
	return t.Name
}

// LeagueRecord is the league service response shape
type LeagueRecord struct {
	ID      types.LeagueID `json:"id"`
	Name    string         `json:"name"`
	LogoURL string         `json:"logoUrl,omitempty"`
	Private bool           `json:"private,omitempty"`
}

// DisplayName returns the league name or the league namespace placeholder
func (l *LeagueRecord) DisplayName() string {
	if l == nil || l.Name == "" {
		return types.NamespaceLeague.FallbackLabel()
	}
	return l.Name
}

// TeamSummary is the caller-side context for one team whose invites are
// aggregated. The name comes from the caller's own prior fetch, so the
// aggregator does not re-resolve it.
type TeamSummary struct {
	ID   types.TeamID `json:"id"`
	Name string       `json:"name"`
}

// DisplayName returns the summary name or the team namespace placeholder
func (t TeamSummary) DisplayName() string {
	if t.Name == "" {
		return types.NamespaceTeam.FallbackLabel()
	}
	return t.Name
}

// MatchSummary is the caller-side context for one match whose referee
// invites are aggregated
type MatchSummary struct {
	ID    types.MatchID `json:"id"`
	Title string        `json:"title"`
}
