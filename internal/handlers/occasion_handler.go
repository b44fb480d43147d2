package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"giveinstead/dto"
	"giveinstead/services"
)

// CreateOccasionHandler creates an occasion with its initial charity list.
//
//	@Summary	Create an occasion
//	@Tags		occasions
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	dto.CreateOccasionDTO	true	"occasion"
//	@Success	201	{object}	model.Occasion
//	@Failure	400	{object}	dto.ErrorResponse
//	@Router		/occasions [post]
func CreateOccasionHandler(occasions *services.OccasionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CreateOccasionDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		occ, err := occasions.Create(ctx, body)
		if err != nil {
			return c.Status(errorStatus(err)).JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(occ)
	}
}

// GetOccasionsByUserHandler lists a user's occasions; 404 when there are none.
//
//	@Summary	List a user's occasions
//	@Tags		occasions
//	@Produce	json
//	@Param		clerkUserId	path	string	true	"Clerk user id"
//	@Success	200	{array}		model.Occasion
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/occasions/{clerkUserId} [get]
func GetOccasionsByUserHandler(occasions *services.OccasionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clerkUserID := c.Params("clerkUserId")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		list, err := occasions.FindByUser(ctx, clerkUserID)
		if err != nil {
			msg := err.Error()
			if errorStatus(err) == fiber.StatusNotFound {
				msg = fmt.Sprintf("No occasions found for user %s", clerkUserID)
			}
			return c.Status(errorStatus(err)).JSON(dto.ErrorResponse{Message: msg})
		}
		return c.JSON(list)
	}
}

// GetOccasionByURLHandler resolves the public occasion page by slug.
//
//	@Summary	Get an occasion by public URL
//	@Tags		occasions
//	@Produce	json
//	@Param		url	path	string	true	"public slug"
//	@Success	200	{object}	model.Occasion
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/occasions/url/{url} [get]
func GetOccasionByURLHandler(occasions *services.OccasionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		url := c.Params("url")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		occ, err := occasions.FindByURL(ctx, url)
		if err != nil {
			msg := err.Error()
			if errorStatus(err) == fiber.StatusNotFound {
				msg = fmt.Sprintf("Occasion with URL %s not found", url)
			}
			return c.Status(errorStatus(err)).JSON(dto.ErrorResponse{Message: msg})
		}
		return c.JSON(occ)
	}
}

// UpdateOccasionHandler applies a partial update.
//
//	@Summary	Update an occasion
//	@Tags		occasions
//	@Accept		json
//	@Produce	json
//	@Param		id		path	string					true	"occasion id"
//	@Param		payload	body	dto.UpdateOccasionDTO	true	"fields to set"
//	@Success	200	{object}	model.Occasion
//	@Failure	400	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/occasions/{id} [patch]
func UpdateOccasionHandler(occasions *services.OccasionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.UpdateOccasionDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		occ, err := occasions.Update(ctx, c.Params("id"), body)
		if err != nil {
			return c.Status(errorStatus(err)).JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(occ)
	}
}

// DeleteOccasionHandler permanently removes an occasion.
//
//	@Summary	Delete an occasion
//	@Tags		occasions
//	@Param		id	path	string	true	"occasion id"
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/occasions/{id} [delete]
func DeleteOccasionHandler(occasions *services.OccasionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := occasions.Delete(ctx, c.Params("id")); err != nil {
			return c.Status(errorStatus(err)).JSON(dto.ErrorResponse{Message: err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
