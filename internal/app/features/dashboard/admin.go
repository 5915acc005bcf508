// internal/app/features/dashboard/admin.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/campushub/internal/app/system/authz"
	"github.com/dalemusser/campushub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeAdmin builds and returns the institution-wide dashboard snapshot.
func (h *Handler) ServeAdmin(w http.ResponseWriter, r *http.Request) {
	_, uname, _, ok := authz.UserCtx(r)
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Snapshot())
	defer cancel()

	tok := h.cache.admin.Begin()

	snap := h.Metrics.AdminSnapshot(ctx)
	h.cache.admin.Publish(tok, snap)

	h.Log.Debug("admin dashboard served", zap.String("user", uname))
	writeJSON(w, snap)
}
