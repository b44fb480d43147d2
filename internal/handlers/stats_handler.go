package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"giveinstead/dto"
	"giveinstead/services"
)

// GetLifetimeRaisedHandler returns the user's lifetime donation total as a
// bare number, 0 when there is nothing yet.
//
//	@Summary	Lifetime amount raised
//	@Tags		stats
//	@Produce	json
//	@Param		clerkUserId	path	string	true	"Clerk user id"
//	@Success	200	{number}	float64
//	@Router		/stats/lifetime-raised/{clerkUserId} [get]
func GetLifetimeRaisedHandler(stats *services.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		total, err := stats.LifetimeRaised(ctx, c.Params("clerkUserId"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Error computing lifetime raised"})
		}
		return c.JSON(total)
	}
}

// GetTopCharityHandler returns the best-performing embedded charity, or
// null when the user has no donations.
//
//	@Summary	Top performing charity
//	@Tags		stats
//	@Produce	json
//	@Param		clerkUserId	path	string	true	"Clerk user id"
//	@Success	200	{object}	repository.TopCharityRow
//	@Router		/stats/top-charity/{clerkUserId} [get]
func GetTopCharityHandler(stats *services.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		row, err := stats.TopPerformingCharity(ctx, c.Params("clerkUserId"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Error computing top charity"})
		}
		return c.JSON(row)
	}
}

// GetMostSuccessfulOccasionHandler returns the occasion with the highest
// donation total, or null when the user has no donations.
//
//	@Summary	Most successful occasion
//	@Tags		stats
//	@Produce	json
//	@Param		clerkUserId	path	string	true	"Clerk user id"
//	@Success	200	{object}	repository.TopOccasionRow
//	@Router		/stats/most-successful-occasion/{clerkUserId} [get]
func GetMostSuccessfulOccasionHandler(stats *services.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		row, err := stats.MostSuccessfulOccasion(ctx, c.Params("clerkUserId"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Error computing most successful occasion"})
		}
		return c.JSON(row)
	}
}
