package routes

import (
	"github.com/gofiber/fiber/v2"

	"giveinstead/internal/handlers"
	"giveinstead/internal/middleware"
)

func OccasionRoutes(app *fiber.App, deps Deps) {
	occasions := app.Group("/occasions")

	// The public occasion page needs no auth; register before the
	// :clerkUserId wildcard so /occasions/url/... is not shadowed.
	occasions.Get("/url/:url", handlers.GetOccasionByURLHandler(deps.Occasions))

	occasions.Post("/", middleware.RequireAuth(), handlers.CreateOccasionHandler(deps.Occasions))
	occasions.Get("/:clerkUserId", middleware.RequireAuth(), handlers.GetOccasionsByUserHandler(deps.Occasions))
	occasions.Patch("/:id", middleware.RequireAuth(), handlers.UpdateOccasionHandler(deps.Occasions))
	occasions.Delete("/:id", middleware.RequireAuth(), handlers.DeleteOccasionHandler(deps.Occasions))
}
