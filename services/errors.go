package services

import "errors"

// Sentinel errors handlers translate to HTTP statuses. The two NotFound
// modes of the webhook path stay distinguishable for the sender.
var (
	ErrOccasionNotFound    = errors.New("Occasion not found for the provided partnerDonationId")
	ErrCharityNotFound     = errors.New("Charity not found for the provided slug in the occasion")
	ErrOccasionURLNotFound = errors.New("Occasion not found for the provided URL")
	ErrNoOccasionsForUser  = errors.New("No occasions found for user")
	ErrFavouriteNotFound   = errors.New("Favourite charity not found")
	ErrUserNameUnavailable = errors.New("User name not available")
	ErrMalformedPayload    = errors.New("Malformed payload")
	ErrValidation          = errors.New("Validation failed")
)
