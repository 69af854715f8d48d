package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rosterhub/rosterhub/pkg/usecase"
)

// Server represents the HTTP server of the aggregation gateway
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server exposing the aggregation API
func NewServer(
	ctx context.Context,
	addr string,
	invitesUC usecase.InviteAggregator,
	searchUC usecase.SearchUseCase,
	includeMocks bool,
) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	handler := NewAggregationHandler(invitesUC, searchUC, includeMocks)

	router.Get("/health", handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Get("/invites", handler.HandleTeamInvites)
		r.Get("/referee-invites", handler.HandleRefereeInvites)
		r.Get("/search", handler.HandleSearch)
	})

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		router: router,
	}
}

// Router returns the chi router (used by tests)
func (s *Server) Router() chi.Router {
	return s.router
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
