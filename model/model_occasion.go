package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Occasion is a time-boxed fundraising event owned by one Clerk user.
// Charities and their donations live inside the occasion document.
type Occasion struct {
	ID          bson.ObjectID `json:"id"          bson:"_id,omitempty"`
	ClerkUserID string        `json:"clerkUserId" bson:"clerk_user_id"`
	Name        string        `json:"name"        bson:"name"`
	Description string        `json:"description" bson:"description"`
	Type        string        `json:"type"        bson:"type"`
	Start       time.Time     `json:"start"       bson:"start"`
	End         time.Time     `json:"end"         bson:"end"`
	URL         string        `json:"url"         bson:"url"`
	Charities   []Charity     `json:"charities"   bson:"charities"`
}

// Charity is a nonprofit's participation in one occasion. Display fields are
// denormalized from every.org at the time the user added the charity and are
// not kept in sync afterward. every_slug correlates inbound webhooks.
type Charity struct {
	ID          bson.ObjectID `json:"id"          bson:"_id,omitempty"`
	EveryID     string        `json:"everyId"     bson:"every_id"`
	EverySlug   string        `json:"everySlug"   bson:"every_slug"`
	Name        string        `json:"name"        bson:"name"`
	Website     string        `json:"website"     bson:"website,omitempty"`
	Description string        `json:"description" bson:"description,omitempty"`
	ImageURL    string        `json:"imageUrl"    bson:"image_url,omitempty"`
	Donations   []Donation    `json:"donations"   bson:"donations"`
}

// Donation is one completed contribution, appended by the webhook path only.
type Donation struct {
	Amount    float64   `json:"amount"            bson:"amount"`
	DonorName string    `json:"donorName"         bson:"donor_name"`
	CreatedAt time.Time `json:"createdAt"         bson:"created_at"`
	Message   string    `json:"message,omitempty" bson:"message,omitempty"`
}

// OccasionTypes are the accepted values for Occasion.Type.
var OccasionTypes = []string{
	"birthday",
	"graduation",
	"christmas",
	"hanukkah",
	"eid",
	"diwali",
	"mothers-day",
	"fathers-day",
	"other",
}

func ValidOccasionType(t string) bool {
	for _, v := range OccasionTypes {
		if v == t {
			return true
		}
	}
	return false
}
