package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/cvforge/api/http/handlers"
	"github.com/artem13815/cvforge/pkg/security/identity"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	gate *identity.Gate,
	auth *handlers.AuthHandler,
	oauth *handlers.OAuthHandler,
	health *handlers.HealthHandler,
	resumes *handlers.ResumesHandler,
	editor *handlers.EditorHandler,
	renderer *handlers.RenderHandler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)
	a.Get("/google/login", oauth.Login)
	a.Get("/google/callback", oauth.Callback)
	a.Post("/logout", oauth.Logout)

	// Resume documents (session cookie or Bearer JWT)
	rg := v1.Group("/resumes", gate.RequireAPI())
	rg.Post("/", resumes.Create)
	rg.Post("/import", resumes.Import)
	rg.Get("/", resumes.List)
	rg.Get("/:id", resumes.Get)
	rg.Put("/:id", resumes.Save)
	rg.Delete("/:id", resumes.Delete)
	rg.Post("/:id/editor", editor.Open)

	// Editor sessions
	eg := v1.Group("/editor", gate.RequireAPI())
	eg.Get("/:sid", editor.State)
	eg.Patch("/:sid", editor.SetField)
	eg.Post("/:sid/reset", editor.Reset)
	eg.Post("/:sid/save", editor.Save)
	eg.Delete("/:sid", editor.Close)

	// Печатные маршруты открываются в браузере: аноним уходит на вход
	// с callback обратно на исходный адрес.
	app.Get("/:locale/resumes/:id/print", gate.RequirePage(), renderer.Print)
	app.Get("/:locale/resumes/:id/export", gate.RequirePage(), renderer.Export)
}
