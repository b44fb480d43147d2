package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"giveinstead/dto"
	"giveinstead/services"
)

// CreateDonationHandler accepts the every.org donation webhook.
//
//	@Summary	Record a completed donation
//	@Tags		everydotorg
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	dto.EveryDotOrgWebhook	true	"every.org webhook payload"
//	@Success	201	{object}	model.Donation
//	@Failure	400	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/everydotorg/donation [post]
func CreateDonationHandler(donations *services.DonationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var hook dto.EveryDotOrgWebhook
		if err := c.BodyParser(&hook); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		donation, err := donations.IngestWebhook(ctx, hook)
		if err != nil {
			return c.Status(errorStatus(err)).JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(donation)
	}
}
