package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/jmoiron/sqlx"

	"github.com/masdika/employee-directory/internal/auth"
	"github.com/masdika/employee-directory/internal/dashboard"
	"github.com/masdika/employee-directory/internal/employee"
	"github.com/masdika/employee-directory/internal/transport/middleware"
	"github.com/masdika/employee-directory/internal/transport/swagger"
)

type RouterConfig struct {
	DB               *sqlx.DB
	AuthHandler      *auth.Handler
	EmployeeHandler  *employee.Handler
	DashboardHandler *dashboard.Handler
	AllowedOrigins   string
	Logger           *slog.Logger
}

// RegisterAllRoutes wires middleware and every HTTP route. The employee and
// dashboard groups sit behind the auth middleware; login, registration and
// health checks do not.
func RegisterAllRoutes(router *chi.Mux, cfg RouterConfig) {
	healthHandler := NewHealthHandler(cfg.DB)

	router.Use(middleware.CORSWithOrigins(cfg.AllowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(cfg.Logger))
	router.Use(middleware.LoggingMiddleware(cfg.Logger))

	// OpenAPI document at root, UI under /swagger
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", cfg.AuthHandler.Login)
			sr.Post("/register", cfg.AuthHandler.Register)
			sr.Post("/refresh", cfg.AuthHandler.RefreshToken)
			sr.Post("/logout", cfg.AuthHandler.Logout)
			sr.Get("/email-exists", cfg.AuthHandler.CheckEmail)
		})

		// Everything below requires a valid access token.
		r.Group(func(pr chi.Router) {
			pr.Use(cfg.AuthHandler.AuthMiddleware)

			pr.Get("/users/me", cfg.AuthHandler.Me)

			pr.Route("/employees", func(er chi.Router) {
				er.Get("/", cfg.EmployeeHandler.List)
				er.Post("/", cfg.EmployeeHandler.Create)
				er.Get("/export", cfg.EmployeeHandler.Export)
				er.Get("/email-exists", cfg.EmployeeHandler.CheckEmail)
				er.Get("/{id}", cfg.EmployeeHandler.Get)
				er.Put("/{id}", cfg.EmployeeHandler.Update)
				er.Delete("/{id}", cfg.EmployeeHandler.Delete)
			})

			pr.Get("/dashboard/stats", cfg.DashboardHandler.Stats)
		})
	})
}
