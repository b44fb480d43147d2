package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"giveinstead/dto"
	"giveinstead/services"
)

// GetUserNameHandler proxies a display-name lookup to Clerk.
//
//	@Summary	Resolve a user's display name
//	@Tags		clerk
//	@Produce	json
//	@Param		clerkUserId	path	string	true	"Clerk user id"
//	@Success	200	{string}	string
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/api/clerk/{clerkUserId} [get]
func GetUserNameHandler(clerk *services.ClerkService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		name, err := clerk.GetUserName(ctx, c.Params("clerkUserId"))
		if err != nil {
			return c.Status(errorStatus(err)).JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(name)
	}
}
