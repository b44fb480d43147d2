package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"giveinstead/services"
)

// errorStatus maps service errors onto the HTTP taxonomy: NotFound-class
// errors are client-correctable 404s, malformed input is 400, anything
// else is an opaque store failure.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrOccasionNotFound),
		errors.Is(err, services.ErrCharityNotFound),
		errors.Is(err, services.ErrOccasionURLNotFound),
		errors.Is(err, services.ErrNoOccasionsForUser),
		errors.Is(err, services.ErrFavouriteNotFound),
		errors.Is(err, services.ErrUserNameUnavailable):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrMalformedPayload),
		errors.Is(err, services.ErrValidation):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
