package model

import "go.mongodb.org/mongo-driver/v2/bson"

// FavouriteCharity is a per-user bookmark of an every.org charity.
type FavouriteCharity struct {
	ID          bson.ObjectID `json:"id"          bson:"_id,omitempty"`
	EveryID     string        `json:"everyId"     bson:"every_id"`
	EverySlug   string        `json:"everySlug"   bson:"every_slug"`
	ClerkUserID string        `json:"clerkUserId" bson:"clerk_user_id"`
	Name        string        `json:"name"        bson:"name,omitempty"`
	Website     string        `json:"website"     bson:"website,omitempty"`
	Description string        `json:"description" bson:"description,omitempty"`
	ImageURL    string        `json:"imageUrl"    bson:"image_url,omitempty"`
	Note        string        `json:"note"        bson:"note,omitempty"`
}
