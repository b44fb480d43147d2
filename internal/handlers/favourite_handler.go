package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"giveinstead/dto"
	"giveinstead/services"
)

// CreateFavouriteHandler bookmarks a charity for a user.
//
//	@Summary	Add a favourite charity
//	@Tags		favourite-charities
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	dto.CreateFavouriteCharityDTO	true	"favourite"
//	@Success	201	{object}	model.FavouriteCharity
//	@Failure	400	{object}	dto.ErrorResponse
//	@Router		/favourite-charities [post]
func CreateFavouriteHandler(favourites *services.FavouriteCharityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CreateFavouriteCharityDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		fav, err := favourites.Create(ctx, body)
		if err != nil {
			return c.Status(errorStatus(err)).JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(fav)
	}
}

// GetFavouritesByUserHandler lists a user's favourite charities.
//
//	@Summary	List favourite charities
//	@Tags		favourite-charities
//	@Produce	json
//	@Param		clerkUserId	path	string	true	"Clerk user id"
//	@Success	200	{array}	model.FavouriteCharity
//	@Router		/favourite-charities/{clerkUserId} [get]
func GetFavouritesByUserHandler(favourites *services.FavouriteCharityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		list, err := favourites.FindByUser(ctx, c.Params("clerkUserId"))
		if err != nil {
			return c.Status(errorStatus(err)).JSON(dto.ErrorResponse{Message: "Error listing favourite charities"})
		}
		return c.JSON(list)
	}
}

// DeleteFavouriteHandler removes a bookmark and echoes the removed document.
//
//	@Summary	Remove a favourite charity
//	@Tags		favourite-charities
//	@Produce	json
//	@Param		id	path	string	true	"favourite id"
//	@Success	200	{object}	model.FavouriteCharity
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/favourite-charities/{id} [delete]
func DeleteFavouriteHandler(favourites *services.FavouriteCharityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		removed, err := favourites.Remove(ctx, c.Params("id"))
		if err != nil {
			return c.Status(errorStatus(err)).JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(removed)
	}
}
