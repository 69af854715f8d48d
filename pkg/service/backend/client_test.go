package backend_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/rosterhub/rosterhub/pkg/domain/model"
	"github.com/rosterhub/rosterhub/pkg/service/backend"
)

func TestClientGetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Decodes the user record", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.Equal(t, r.URL.Path, "/user/id/u1")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"u1","firstname":"Alice","lastname":"Smith","email":"a@x.com"}`))
		}))
		defer srv.Close()

		user, err := backend.New(srv.URL).GetUser(ctx, "u1")
		gt.NoError(t, err)
		gt.Equal(t, user.Firstname, "Alice")
		gt.Equal(t, user.DisplayName(), "Alice Smith")
	})

	t.Run("404 maps to the not-found sentinel", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := backend.New(srv.URL).GetUser(ctx, "u1")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrUserNotFound))
	})

	t.Run("Non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := backend.New(srv.URL).GetUser(ctx, "u1")
		gt.Error(t, err)
	})

	t.Run("Malformed body is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":`))
		}))
		defer srv.Close()

		_, err := backend.New(srv.URL).GetUser(ctx, "u1")
		gt.Error(t, err)
	})
}

func TestClientListTeamInvites(t *testing.T) {
	ctx := context.Background()

	t.Run("Requests the status filter and re-validates the response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.Equal(t, r.URL.Path, "/teams/t1/invites")
			gt.Equal(t, r.URL.Query().Get("status"), "PENDING")
			w.Header().Set("Content-Type", "application/json")
			// Server ignores the filter and returns extra statuses
			_, _ = w.Write([]byte(`[
				{"id":"inv-1","kind":"league","status":"PENDING","leagueId":"L9","createdAt":"2026-08-01T12:00:00Z"},
				{"id":"inv-2","kind":"league","status":"ACCEPTED","leagueId":"L9","createdAt":"2026-08-01T12:00:00Z"}
			]`))
		}))
		defer srv.Close()

		invites, err := backend.New(srv.URL).ListTeamInvites(ctx, "t1")
		gt.NoError(t, err)
		gt.Equal(t, len(invites), 1)
		gt.Equal(t, invites[0].ID.String(), "inv-1")
		gt.True(t, invites[0].Status.IsPending())
	})

	t.Run("Network failure is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, err := backend.New(srv.URL).ListTeamInvites(ctx, "t1")
		gt.Error(t, err)
	})
}

func TestClientListMatchRefereeInvites(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, r.URL.Path, "/matches/m1/referee-invites")
		gt.Equal(t, r.URL.Query().Get("status"), "PENDING")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"inv-r1","kind":"referee-match","status":"PENDING","matchId":"m1","refereeId":"u7","createdAt":"2026-08-01T12:00:00Z"}
		]`))
	}))
	defer srv.Close()

	invites, err := backend.New(srv.URL).ListMatchRefereeInvites(ctx, "m1")
	gt.NoError(t, err)
	gt.Equal(t, len(invites), 1)
	gt.Equal(t, invites[0].RefereeID.String(), "u7")
}

func TestClientSearch(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, r.URL.Path, "/search")
		gt.Equal(t, r.URL.Query().Get("q"), "thunder")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"t1","type":"team","name":"Thunder FC","subtitle":"Division 2"}]`))
	}))
	defer srv.Close()

	results, err := backend.New(srv.URL).Search(ctx, "thunder")
	gt.NoError(t, err)
	gt.Equal(t, len(results), 1)
	gt.Equal(t, results[0].Name, "Thunder FC")
}

func TestClientTimeout(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	client := backend.New(srv.URL, backend.WithTimeout(50*time.Millisecond))

	start := time.Now()
	_, err := client.GetTeam(ctx, "t1")
	gt.Error(t, err)
	gt.True(t, time.Since(start) < 2*time.Second)
}

func TestClientEscapesIdentifiers(t *testing.T) {
	ctx := context.Background()

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"id":"x","name":"Odd Team"}`))
	}))
	defer srv.Close()

	_, err := backend.New(srv.URL).GetTeam(ctx, "t 1/..")
	gt.NoError(t, err)
	gt.Equal(t, gotPath, "/teams/t%201%2F..")
}
