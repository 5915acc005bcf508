// internal/app/features/dashboard/student.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/campushub/internal/app/system/authz"
	"github.com/dalemusser/campushub/internal/app/system/timeouts"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ServeStudent builds and returns the student dashboard snapshot.
//
// A student whose session carries no identity-provider UUID gets 403 and
// their cached dashboard never becomes ready; the computed aggregates
// cannot be invoked without the account key.
func (h *Handler) ServeStudent(w http.ResponseWriter, r *http.Request) {
	_, uname, userID, ok := authz.UserCtx(r)
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "sign-in required")
		return
	}
	accountID, err := uuid.Parse(authz.AccountID(r))
	if err != nil {
		h.Log.Warn("student dashboard without account id", zap.String("user", uname))
		errorJSON(w, http.StatusForbidden, "no linked account")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Snapshot())
	defer cancel()

	loader := h.cache.studentLoader(userID)
	tok := loader.Begin()

	snap := h.Metrics.StudentSnapshot(ctx, userID, accountID)
	loader.Publish(tok, snap)

	h.Log.Debug("student dashboard served", zap.String("user", uname))
	writeJSON(w, snap)
}
