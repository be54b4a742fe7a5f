package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hr-backoffice/api/http/handlers"
)

// Handlers bundles everything Register mounts.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Health      *handlers.HealthHandler
	Preferences *handlers.PreferencesHandler
	Candidates  *handlers.CandidateHandler
	Forms       *handlers.FormsHandler
	Questions   *handlers.QuestionHandler
	Adaptation  *handlers.AdaptationHandler
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, h Handlers, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for orchestrators and monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	a := v1.Group("/auth")
	a.Post("/login", h.Auth.Login)
	a.Post("/logout", authMW, h.Auth.Logout)

	// Everything below needs an operator session.
	pg := v1.Group("/preferences", authMW)
	pg.Get("/language", h.Preferences.GetLanguage)
	pg.Put("/language", h.Preferences.SetLanguage)

	cg := v1.Group("/candidates", authMW)
	cg.Get("/recommended", h.Candidates.Recommended)
	cg.Post("/:id/actions", h.Candidates.Perform)
	cg.Put("/:id/status", h.Candidates.UpdateStatus)
	cg.Delete("/:id", h.Candidates.Delete)

	fg := v1.Group("/forms", authMW)
	fg.Get("/", h.Forms.List)
	fg.Get("/:telegramId/answers", h.Forms.Answers)
	fg.Post("/:id/analyze", h.Forms.Analyze)
	v1.Get("/analysis/:userId", authMW, h.Forms.Analysis)

	qg := v1.Group("/questions", authMW)
	qg.Get("/", h.Questions.List)
	qg.Post("/", h.Questions.Create)
	qg.Put("/:id", h.Questions.Update)
	qg.Delete("/:id", h.Questions.Delete)
	qg.Post("/:id/toggle", h.Questions.Toggle)

	ag := v1.Group("/adaptation", authMW)
	ag.Get("/", h.Adaptation.List)
	ag.Post("/", h.Adaptation.Start)
	ag.Put("/:id", h.Adaptation.Update)
}
