package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-job-tracker/internal/config"
	"go-job-tracker/internal/handler"
	"go-job-tracker/internal/middleware"
)

// New builds the route table. The authentication gate runs on every
// request; signin, signup and the health check are the public allow-list,
// everything else is enforced by RequireAuth.
func New(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	jobApplicationHandler *handler.JobApplicationHandler,
) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)
	r.Use(authMiddleware.Authenticate)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/signin", authHandler.SignIn)
			auth.Post("/signup", authHandler.SignUp)
		})

		api.Route("/users", func(users chi.Router) {
			users.Use(authMiddleware.RequireAuth)
			users.Get("/", userHandler.List)
			users.Get("/{id}", userHandler.Get)
			users.With(authMiddleware.RequireRoles("ADMIN")).Post("/", userHandler.Create)
			users.With(authMiddleware.RequireRoles("ADMIN")).Put("/{id}", userHandler.Update)
			users.With(authMiddleware.RequireRoles("ADMIN")).Delete("/{id}", userHandler.Delete)
		})

		api.Route("/job-applications", func(applications chi.Router) {
			applications.Use(authMiddleware.RequireAuth)
			applications.Get("/", jobApplicationHandler.List)
			applications.Get("/{id}", jobApplicationHandler.Get)
			applications.Post("/", jobApplicationHandler.Create)
			applications.Put("/{id}", jobApplicationHandler.Update)
			applications.Delete("/{id}", jobApplicationHandler.Delete)
		})
	})

	return r
}
