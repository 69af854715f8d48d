package http

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/m-mizutani/goerr/v2"
	"github.com/rosterhub/rosterhub/pkg/domain/model"
	"github.com/rosterhub/rosterhub/pkg/domain/types"
	"github.com/rosterhub/rosterhub/pkg/usecase"
	"github.com/rosterhub/rosterhub/pkg/utils/apperr"
)

// AggregationHandler serves the invite and search aggregation endpoints
type AggregationHandler struct {
	invitesUC    usecase.InviteAggregator
	searchUC     usecase.SearchUseCase
	includeMocks bool
}

// NewAggregationHandler creates a new aggregation handler
func NewAggregationHandler(invitesUC usecase.InviteAggregator, searchUC usecase.SearchUseCase, includeMocks bool) *AggregationHandler {
	return &AggregationHandler{
		invitesUC:    invitesUC,
		searchUC:     searchUC,
		includeMocks: includeMocks,
	}
}

// HandleTeamInvites aggregates pending invites across the caller's
// teams. Teams come as repeated teamId params with positionally matched
// optional teamName params (the caller's own context).
//
//	GET /api/invites?teamId=t1&teamName=Alpha&teamId=t2&teamName=Beta
func (h *AggregationHandler) HandleTeamInvites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ids := r.URL.Query()["teamId"]
	names := r.URL.Query()["teamName"]

	teams := make([]model.TeamSummary, 0, len(ids))
	for i, id := range ids {
		if id == "" {
			apperr.Respond(ctx, w, goerr.New("empty teamId parameter"), http.StatusBadRequest)
			return
		}
		team := model.TeamSummary{ID: types.TeamID(id)}
		if i < len(names) {
			team.Name = names[i]
		}
		teams = append(teams, team)
	}

	cards := h.invitesUC.AggregateTeamInvites(ctx, teams)
	respondJSON(w, map[string]any{"invites": cards})
}

// HandleRefereeInvites aggregates pending referee invites across matches
//
//	GET /api/referee-invites?matchId=m1&matchTitle=Semifinal
func (h *AggregationHandler) HandleRefereeInvites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ids := r.URL.Query()["matchId"]
	titles := r.URL.Query()["matchTitle"]

	matches := make([]model.MatchSummary, 0, len(ids))
	for i, id := range ids {
		if id == "" {
			apperr.Respond(ctx, w, goerr.New("empty matchId parameter"), http.StatusBadRequest)
			return
		}
		match := model.MatchSummary{ID: types.MatchID(id)}
		if i < len(titles) {
			match.Title = titles[i]
		}
		matches = append(matches, match)
	}

	cards := h.invitesUC.AggregateRefereeInvites(ctx, matches)
	respondJSON(w, map[string]any{"invites": cards})
}

// HandleSearch merges remote, fixture and local search sources
//
//	GET /api/search?q=thunder
func (h *AggregationHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query().Get("q")
	if query == "" {
		apperr.Respond(ctx, w, goerr.New("missing query parameter 'q'"), http.StatusBadRequest)
		return
	}

	results := h.searchUC.Search(ctx, query, h.includeMocks)
	respondJSON(w, map[string]any{"results": results})
}

func respondJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(body)
}
