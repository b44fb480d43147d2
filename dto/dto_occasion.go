package dto

import (
	"time"

	"giveinstead/model"
)

// CreateOccasionDTO is the body for POST /occasions.
type CreateOccasionDTO struct {
	ClerkUserID string            `json:"clerkUserId"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Type        string            `json:"type"`
	Start       time.Time         `json:"start"`
	End         time.Time         `json:"end"`
	URL         string            `json:"url"`
	Charities   []OccasionCharity `json:"charities"`
}

// OccasionCharity is a charity as submitted by the frontend, denormalized
// from the every.org directory at selection time.
type OccasionCharity struct {
	EveryID     string `json:"everyId"`
	EverySlug   string `json:"everySlug"`
	Name        string `json:"name"`
	Website     string `json:"website"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// UpdateOccasionDTO is the body for PATCH /occasions/:id. Nil fields are
// left untouched.
type UpdateOccasionDTO struct {
	Name        *string            `json:"name,omitempty"`
	Description *string            `json:"description,omitempty"`
	Type        *string            `json:"type,omitempty"`
	Start       *time.Time         `json:"start,omitempty"`
	End         *time.Time         `json:"end,omitempty"`
	URL         *string            `json:"url,omitempty"`
	Charities   *[]OccasionCharity `json:"charities,omitempty"`
}

func (c OccasionCharity) ToModel() model.Charity {
	return model.Charity{
		EveryID:     c.EveryID,
		EverySlug:   c.EverySlug,
		Name:        c.Name,
		Website:     c.Website,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		Donations:   []model.Donation{},
	}
}
