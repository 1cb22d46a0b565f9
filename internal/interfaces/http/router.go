package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-client/internal/application/feedback"
	"github.com/jhoicas/inventario-client/internal/application/report"
	"github.com/jhoicas/inventario-client/internal/application/session"
	"github.com/jhoicas/inventario-client/internal/application/store"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Sessions *session.Manager
	Store    *store.Store
	Reports  *report.UseCase
	Feedback *feedback.Channel
	DataDir  string
}

// Router registra las rutas del shell local.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Sesión
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.Sessions, deps.Feedback)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	api.Get("/session", authHandler.Session)

	// Inventario
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.Store, deps.Feedback)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/adjust", productHandler.Adjust)

	// Reportes
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.Reports, deps.Sessions, deps.Store, deps.Feedback)
	reports.Get("/:kind", reportHandler.Download)

	// Feedback transitorio
	feedbackHandler := NewFeedbackHandler(deps.Feedback)
	api.Get("/feedback", feedbackHandler.Current)

	// Preferencias locales
	prefs := api.Group("/prefs")
	prefsHandler := NewPrefsHandler(deps.DataDir)
	prefs.Get("/theme", prefsHandler.GetTheme)
	prefs.Put("/theme", prefsHandler.PutTheme)
}
