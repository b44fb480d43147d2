package dto

// CreateFavouriteCharityDTO is the body for POST /favourite-charities.
type CreateFavouriteCharityDTO struct {
	EveryID     string `json:"everyId"`
	EverySlug   string `json:"everySlug"`
	ClerkUserID string `json:"clerkUserId"`
	Name        string `json:"name"`
	Website     string `json:"website"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Note        string `json:"note"`
}
