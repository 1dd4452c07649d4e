package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/chastucker/wrestling-club/internal/access"
	"github.com/chastucker/wrestling-club/internal/attendance"
	"github.com/chastucker/wrestling-club/internal/auth"
	"github.com/chastucker/wrestling-club/internal/observability"
	"github.com/chastucker/wrestling-club/internal/profiles"
	"github.com/chastucker/wrestling-club/internal/schedule"
	"github.com/chastucker/wrestling-club/internal/shared"
	"github.com/chastucker/wrestling-club/internal/tournaments"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger             *slog.Logger
	Config             *Config
	SessionManager     *shared.SessionManager
	Guard              access.Guard
	AuthHandler        *auth.Handler
	AccessHandler      *access.Handler
	ProfilesHandler    *profiles.Handler
	ScheduleHandler    *schedule.Handler
	TournamentsHandler *tournaments.Handler
	AttendanceHandler  *attendance.Handler
	Metrics            *observability.Metrics
}

// NewRouter constructs the chi.Router for the club API.
//
// Route layering mirrors the onboarding state machine: auth endpoints are
// open, profile onboarding needs only an identity, and everything else
// additionally requires a completed profile before the capability guards
// run.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
		Metrics:        params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", params.AuthHandler.MountRoutes)

		r.Group(func(r chi.Router) {
			r.Use(params.Guard.RequireIdentity)
			r.Use(params.Guard.WithRoles)

			// Onboarding surface: reachable before a profile exists.
			params.ProfilesHandler.MountRoutes(r)
			params.AccessHandler.MountRoutes(r)

			r.Group(func(r chi.Router) {
				r.Use(params.Guard.RequireOnboarded)
				params.ScheduleHandler.MountRoutes(r)
				params.TournamentsHandler.MountRoutes(r)
				params.AttendanceHandler.MountRoutes(r)
			})
		})
	})

	return r
}
