// internal/app/features/dashboard/handler.go
package dashboard

import (
	"net/http"

	metricsstore "github.com/dalemusser/campushub/internal/app/store/metrics"
	"github.com/dalemusser/campushub/internal/app/system/authz"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the role-scoped dashboard snapshots. Each signed-in user
// gets the dashboard of their own role; there is no way to request
// another role's view.
type Handler struct {
	Metrics *metricsstore.Service
	Log     *zap.Logger

	cache snapshotCache
}

func NewHandler(db *mongo.Database, procs metricsstore.Aggregates, logger *zap.Logger) *Handler {
	return &Handler{
		Metrics: metricsstore.NewService(db, procs, logger),
		Log:     logger,
	}
}

// ServeDashboard dispatches to the role-specific snapshot.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	role, _, _, ok := authz.UserCtx(r)
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	switch role {
	case authz.RoleStudent:
		h.ServeStudent(w, r)
	case authz.RoleFaculty:
		h.ServeFaculty(w, r)
	case authz.RoleAdmin:
		h.ServeAdmin(w, r)
	default:
		errorJSON(w, http.StatusForbidden, "no dashboard for role")
	}
}

// ServeCached returns the last snapshot published for the caller without
// touching the database. A dashboard that has never loaded reports
// ready=false with no data.
func (h *Handler) ServeCached(w http.ResponseWriter, r *http.Request) {
	role, _, userID, ok := authz.UserCtx(r)
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	switch role {
	case authz.RoleStudent:
		snap, ready := h.cache.studentLoader(userID).Snapshot()
		writeCached(w, snap, ready)
	case authz.RoleFaculty:
		snap, ready := h.cache.facultyLoader(userID).Snapshot()
		writeCached(w, snap, ready)
	case authz.RoleAdmin:
		snap, ready := h.cache.admin.Snapshot()
		writeCached(w, snap, ready)
	default:
		errorJSON(w, http.StatusForbidden, "no dashboard for role")
	}
}
