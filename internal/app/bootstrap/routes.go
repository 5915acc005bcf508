// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	dashboardfeature "github.com/dalemusser/campushub/internal/app/features/dashboard"
	healthfeature "github.com/dalemusser/campushub/internal/app/features/health"
	academicsstore "github.com/dalemusser/campushub/internal/app/store/academics"
	"github.com/dalemusser/campushub/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. CampusHub applies session middleware
// and mounts the health endpoint and the role-scoped dashboard API.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.CampusHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Role-scoped dashboards. The academics store supplies the computed
	// CGPA and attendance aggregates the student dashboard invokes.
	procs := academicsstore.New(deps.CampusHubMongoDatabase)
	dashboardHandler := dashboardfeature.NewHandler(deps.CampusHubMongoDatabase, procs, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	return r, nil
}
