package handler

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"atscv/docs"
	"atscv/internal/service"
)

// RegisterRoutes attaches the HTTP routes to app. db may be nil when the report index is disabled.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.AnalysisService, version string) {
	api := app.Group("/api")
	api.Get("/roles", ListRoles(svc))
	api.Post("/analyze", AnalyzeCV(svc))
	api.Get("/health", Health(version))

	app.Get("/healthz", LivenessProbe())
	app.Get("/readyz", HealthCheck(db))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}
		docs.SwaggerInfo.Version = version

		return swagger.HandlerDefault(c)
	})
}
