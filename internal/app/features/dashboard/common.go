// internal/app/features/dashboard/common.go
package dashboard

import (
	"encoding/json"
	"net/http"
	"sync"

	metricsstore "github.com/dalemusser/campushub/internal/app/store/metrics"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// snapshotCache keeps the latest published snapshot per dashboard behind
// readiness flags. Student and faculty dashboards are cached per user;
// the admin dashboard is institution-wide and shared. Overlapping loads
// resolve latest-wins through the loader tokens.
type snapshotCache struct {
	students sync.Map // primitive.ObjectID -> *metricsstore.Loader[metricsstore.StudentSnapshot]
	faculty  sync.Map // primitive.ObjectID -> *metricsstore.Loader[metricsstore.FacultySnapshot]
	admin    metricsstore.Loader[metricsstore.AdminSnapshot]
}

func (c *snapshotCache) studentLoader(id primitive.ObjectID) *metricsstore.Loader[metricsstore.StudentSnapshot] {
	v, _ := c.students.LoadOrStore(id, &metricsstore.Loader[metricsstore.StudentSnapshot]{})
	return v.(*metricsstore.Loader[metricsstore.StudentSnapshot])
}

func (c *snapshotCache) facultyLoader(id primitive.ObjectID) *metricsstore.Loader[metricsstore.FacultySnapshot] {
	v, _ := c.faculty.LoadOrStore(id, &metricsstore.Loader[metricsstore.FacultySnapshot]{})
	return v.(*metricsstore.Loader[metricsstore.FacultySnapshot])
}

// cachedResponse wraps a snapshot with its readiness flag.
type cachedResponse struct {
	Ready bool `json:"ready"`
	Data  any  `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeCached(w http.ResponseWriter, snap any, ready bool) {
	resp := cachedResponse{Ready: ready}
	if ready {
		resp.Data = snap
	}
	writeJSON(w, resp)
}

func errorJSON(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
