package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"resumebuilder/internal/http/middleware"
	"resumebuilder/internal/service"
	"resumebuilder/internal/session"
)

// RouteConfig carries what the routes need besides the document service.
type RouteConfig struct {
	Sessions      *session.Store
	SessionMaxAge time.Duration
	LLMConfigured bool
}

// RegisterRoutes attaches the form UI, JSON API and probes to app.
// Only the form UI is session-scoped; the JSON API is stateless.
func RegisterRoutes(app *fiber.App, docSvc service.DocumentService, rc RouteConfig) {
	opts := PageOptions{LLMConfigured: rc.LLMConfigured}

	app.Get("/health", HealthCheck(rc.LLMConfigured))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api/v1")
	api.Post("/documents/:kind", APIGenerate(docSvc))
	api.Post("/pdf", APIRender(docSvc))

	sess := middleware.Session(rc.Sessions, rc.SessionMaxAge)
	app.Get("/", sess, Index(opts))
	app.Post("/generate/:kind", sess, Generate(docSvc, opts))
	app.Post("/clear", sess, Clear())
	app.Get("/download", sess, Download(docSvc, opts))
}
