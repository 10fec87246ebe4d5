package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rperrot/recruteo/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	health *handlers.HealthHandler,
	profile *handlers.ProfileHandler,
	classify *handlers.ClassifyHandler,
	suggestions *handlers.SuggestionsHandler,
	skills *handlers.SkillsHandler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	// Resume profile extraction
	v1.Post("/profiles/extract", profile.Extract)

	// Job title classification
	v1.Post("/classify", classify.Classify)

	// Suggestion review workflow (admin)
	sg := v1.Group("/suggestions")
	sg.Get("/", suggestions.List)
	sg.Post("/:id/approve", suggestions.Approve)
	sg.Post("/:id/reject", suggestions.Reject)

	// Skill directory
	sk := v1.Group("/skills")
	sk.Get("/", skills.List)
	sk.Post("/", skills.Materialize)
}
