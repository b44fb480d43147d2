package routes

import (
	"github.com/gofiber/fiber/v2"

	"giveinstead/services"
)

type Deps struct {
	Occasions  *services.OccasionService
	Donations  *services.DonationService
	Stats      *services.StatsService
	Favourites *services.FavouriteCharityService
	Clerk      *services.ClerkService

	WebhookTokenHash string
}

func Register(app *fiber.App, deps Deps) {
	OccasionRoutes(app, deps)
	StatsRoutes(app, deps)
	WebhookRoutes(app, deps)
	FavouriteRoutes(app, deps)
	ClerkRoutes(app, deps)
}
