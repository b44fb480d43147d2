package routes

import (
	"github.com/gofiber/fiber/v2"

	"giveinstead/internal/handlers"
	"giveinstead/internal/middleware"
)

func FavouriteRoutes(app *fiber.App, deps Deps) {
	favourites := app.Group("/favourite-charities", middleware.RequireAuth())

	favourites.Post("/", handlers.CreateFavouriteHandler(deps.Favourites))
	favourites.Get("/:clerkUserId", handlers.GetFavouritesByUserHandler(deps.Favourites))
	favourites.Delete("/:id", handlers.DeleteFavouriteHandler(deps.Favourites))
}
