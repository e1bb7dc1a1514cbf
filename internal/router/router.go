package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/unigrade/unigrade-api/internal/config"
	"github.com/unigrade/unigrade-api/internal/handler"
	"github.com/unigrade/unigrade-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	ResultHandler *handler.ResultHandler
	RankHandler   *handler.RankHandler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	if deps.ResultHandler != nil {
		deps.ResultHandler.Register(api.Group("/results"))
		deps.ResultHandler.RegisterTranscript(api.Group("/students"))
	}

	if deps.RankHandler != nil {
		deps.RankHandler.Register(api.Group("/results/ranks"))
	}
}
