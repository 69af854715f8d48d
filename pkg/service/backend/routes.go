package backend

import (
	"fmt"
	"net/url"

	"github.com/rosterhub/rosterhub/pkg/domain/types"
)

// Route building for the upstream services. Each function returns a
// path relative to the service base URL, with identifiers escaped.

func userRoute(id types.UserID) string {
	return fmt.Sprintf("user/id/%s", url.PathEscape(id.String()))
}

func teamRoute(id types.TeamID) string {
	return fmt.Sprintf("teams/%s", url.PathEscape(id.String()))
}

func leagueRoute(id types.LeagueID) string {
	return fmt.Sprintf("leagues/%s", url.PathEscape(id.String()))
}

func teamInvitesRoute(id types.TeamID) string {
	return fmt.Sprintf("teams/%s/invites", url.PathEscape(id.String()))
}

func matchRefereeInvitesRoute(id types.MatchID) string {
	return fmt.Sprintf("matches/%s/referee-invites", url.PathEscape(id.String()))
}

func searchRoute() string {
	return "search"
}
