// internal/app/features/dashboard/faculty.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/campushub/internal/app/system/authz"
	"github.com/dalemusser/campushub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeFaculty builds and returns the faculty dashboard snapshot.
func (h *Handler) ServeFaculty(w http.ResponseWriter, r *http.Request) {
	_, uname, userID, ok := authz.UserCtx(r)
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Snapshot())
	defer cancel()

	loader := h.cache.facultyLoader(userID)
	tok := loader.Begin()

	snap := h.Metrics.FacultySnapshot(ctx, userID)
	loader.Publish(tok, snap)

	h.Log.Debug("faculty dashboard served", zap.String("user", uname))
	writeJSON(w, snap)
}
