package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/m-mizutani/goerr/v2"
	"github.com/rosterhub/rosterhub/pkg/domain/interfaces"
	"github.com/rosterhub/rosterhub/pkg/domain/model"
	"github.com/rosterhub/rosterhub/pkg/domain/types"
)

const defaultTimeout = 5 * time.Second

var errNotFound = goerr.New("not found")

// Client talks to the upstream services over HTTP. The embedded
// http.Client is shared and safe for concurrent use; each request gets
// its own bounded deadline so one stalled service cannot hang a fan-out.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request deadline
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// New creates a backend client for the given base URL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: http.DefaultClient,
		timeout:    defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ interfaces.BackendClient = &Client{}

// get issues one GET request and decodes the JSON body into out
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := c.baseURL + "/" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to build request", goerr.V("url", u))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "request failed", goerr.V("url", u))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return goerr.Wrap(errNotFound, "resource not found", goerr.V("url", u))
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return goerr.New("unexpected response status",
			goerr.V("url", u),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode response body", goerr.V("url", u))
	}

	return nil
}

// GetUser fetches one user record
func (c *Client) GetUser(ctx context.Context, id types.UserID) (*model.UserRecord, error) {
	var user model.UserRecord
	if err := c.get(ctx, userRoute(id), nil, &user); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, goerr.Wrap(model.ErrUserNotFound, "user lookup failed", goerr.V("userID", id))
		}
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("userID", id))
	}
	return &user, nil
}

// GetTeam fetches one team record
func (c *Client) GetTeam(ctx context.Context, id types.TeamID) (*model.TeamRecord, error) {
	var team model.TeamRecord
	if err := c.get(ctx, teamRoute(id), nil, &team); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, goerr.Wrap(model.ErrTeamNotFound, "team lookup failed", goerr.V("teamID", id))
		}
		return nil, goerr.Wrap(err, "failed to get team", goerr.V("teamID", id))
	}
	return &team, nil
}

// GetLeague fetches one league record
func (c *Client) GetLeague(ctx context.Context, id types.LeagueID) (*model.LeagueRecord, error) {
	var league model.LeagueRecord
	if err := c.get(ctx, leagueRoute(id), nil, &league); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, goerr.Wrap(model.ErrLeagueNotFound, "league lookup failed", goerr.V("leagueID", id))
		}
		return nil, goerr.Wrap(err, "failed to get league", goerr.V("leagueID", id))
	}
	return &league, nil
}

// ListTeamInvites fetches the pending invites of one team. The server
// is asked to filter by status, and the list is re-filtered here in
// case it returns extra statuses anyway.
func (c *Client) ListTeamInvites(ctx context.Context, id types.TeamID) ([]model.InviteRecord, error) {
	query := url.Values{"status": []string{types.InviteStatusPending.String()}}

	var invites []model.InviteRecord
	if err := c.get(ctx, teamInvitesRoute(id), query, &invites); err != nil {
		return nil, goerr.Wrap(err, "failed to list team invites", goerr.V("teamID", id))
	}

	return filterPending(invites), nil
}

// ListMatchRefereeInvites fetches the pending referee invites of one match
func (c *Client) ListMatchRefereeInvites(ctx context.Context, id types.MatchID) ([]model.InviteRecord, error) {
	query := url.Values{"status": []string{types.InviteStatusPending.String()}}

	var invites []model.InviteRecord
	if err := c.get(ctx, matchRefereeInvitesRoute(id), query, &invites); err != nil {
		return nil, goerr.Wrap(err, "failed to list match referee invites", goerr.V("matchID", id))
	}

	return filterPending(invites), nil
}

// Search runs a free-text entity query
func (c *Client) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	q := url.Values{"q": []string{query}}

	var results []model.SearchResult
	if err := c.get(ctx, searchRoute(), q, &results); err != nil {
		return nil, goerr.Wrap(err, "search request failed", goerr.V("query", query))
	}

	return results, nil
}

func filterPending(invites []model.InviteRecord) []model.InviteRecord {
	pending := make([]model.InviteRecord, 0, len(invites))
	for _, inv := range invites {
		if inv.Status.IsPending() {
			pending = append(pending, inv)
		}
	}
	return pending
}
