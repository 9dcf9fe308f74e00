package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/fundi/api/http/handlers"
)

// Handlers groups everything Register mounts.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Health       *handlers.HealthHandler
	Catalog      *handlers.CatalogHandler
	Jobs         *handlers.JobHandler
	Applications *handlers.ApplicationHandler
	Reviews      *handlers.ReviewHandler
}

// Register wires all HTTP routes onto given Fiber app. When authMW is not
// nil, every route except health probes and login requires a token.
func Register(app *fiber.App, h Handlers, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	v1.Post("/auth/login", h.Auth.Login)

	// the guard is mounted after the public routes so they never reach it
	protected := v1
	if authMW != nil {
		protected = v1.Group("", authMW)
	}

	// Catalog
	protected.Get("/categories", h.Catalog.Categories)
	protected.Get("/workers", h.Catalog.Workers)
	protected.Get("/workers/:id", h.Catalog.Worker)

	// Jobs
	protected.Post("/jobs", h.Jobs.Create)
	protected.Get("/jobs", h.Jobs.List)
	protected.Get("/jobs/:id", h.Jobs.Get)
	protected.Patch("/jobs/:id", h.Jobs.Update)
	protected.Post("/jobs/:id/invitations", h.Jobs.Invite)
	protected.Get("/worker/:id/jobs", h.Jobs.WorkerJobs)

	// Applications
	protected.Post("/jobs/:id/applications", h.Applications.Apply)
	protected.Get("/applications", h.Applications.List)
	protected.Post("/applications/:id/accept", h.Applications.Accept)
	protected.Post("/applications/:id/reject", h.Applications.Reject)

	// Reviews
	protected.Post("/reviews", h.Reviews.Create)
	protected.Get("/reviews", h.Reviews.List)
}
