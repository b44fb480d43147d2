package routes

import (
	"github.com/gofiber/fiber/v2"

	"giveinstead/internal/handlers"
	"giveinstead/internal/middleware"
)

func WebhookRoutes(app *fiber.App, deps Deps) {
	app.Post("/everydotorg/donation",
		middleware.RequireWebhookToken(deps.WebhookTokenHash),
		handlers.CreateDonationHandler(deps.Donations),
	)
}
