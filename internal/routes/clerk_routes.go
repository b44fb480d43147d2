package routes

import (
	"github.com/gofiber/fiber/v2"

	"giveinstead/internal/handlers"
)

func ClerkRoutes(app *fiber.App, deps Deps) {
	app.Get("/api/clerk/:clerkUserId", handlers.GetUserNameHandler(deps.Clerk))
}
