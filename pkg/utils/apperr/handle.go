package apperr

import (
	"context"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/m-mizutani/ctxlog"
)

// Handle logs an application error with the context logger
func Handle(ctx context.Context, err error) {
	ctxlog.From(ctx).Error("application error", "error", err)
}

// Respond logs the error and writes a JSON error body with the given
// status. Internal error details are not leaked for 5xx responses.
func Respond(ctx context.Context, w http.ResponseWriter, err error, status int) {
	Handle(ctx, err)

	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = http.StatusText(status)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
