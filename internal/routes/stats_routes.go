package routes

import (
	"github.com/gofiber/fiber/v2"

	"giveinstead/internal/handlers"
	"giveinstead/internal/middleware"
)

func StatsRoutes(app *fiber.App, deps Deps) {
	stats := app.Group("/stats", middleware.RequireAuth())

	stats.Get("/lifetime-raised/:clerkUserId", handlers.GetLifetimeRaisedHandler(deps.Stats))
	stats.Get("/top-charity/:clerkUserId", handlers.GetTopCharityHandler(deps.Stats))
	stats.Get("/most-successful-occasion/:clerkUserId", handlers.GetMostSuccessfulOccasionHandler(deps.Stats))
}
