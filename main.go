package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"giveinstead/config"
	"giveinstead/database"
	_ "giveinstead/docs"
	"giveinstead/internal/middleware"
	"giveinstead/internal/repository"
	"giveinstead/internal/routes"
	"giveinstead/services"
)

// @title		GiveInstead API
// @version		1.0
// @description	Charitable-giving occasions, every.org donation ingestion and giving statistics.
// @BasePath	/
func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	client := database.ConnectMongo(cfg.MongoURI)
	defer database.DisconnectMongo(client)
	db := client.Database(cfg.MongoDB)

	occasionRepo := repository.NewMongoOccasionRepo(db)
	favouriteRepo := repository.NewMongoFavouriteRepo(db)

	if err := occasionRepo.EnsureIndexes(context.TODO()); err != nil {
		log.Fatalf("ensure occasion indexes failed: %v", err)
	}
	if err := favouriteRepo.EnsureIndexes(context.TODO()); err != nil {
		log.Fatalf("ensure favourite indexes failed: %v", err)
	}

	app := fiber.New()

	app.Get("/docs/*", swagger.HandlerDefault)

	app.Use(middleware.JWTUserID(cfg.JWTSecret))

	routes.Register(app, routes.Deps{
		Occasions:        services.NewOccasionService(occasionRepo),
		Donations:        services.NewDonationService(occasionRepo),
		Stats:            services.NewStatsService(occasionRepo),
		Favourites:       services.NewFavouriteCharityService(favouriteRepo),
		Clerk:            services.NewClerkService(cfg.ClerkAPIURL, cfg.ClerkSecretKey),
		WebhookTokenHash: cfg.WebhookTokenHash,
	})

	log.Printf("listening at http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
