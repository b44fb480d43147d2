package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"giveinstead/dto"
	"giveinstead/internal/repository"
	"giveinstead/model"
)

type FavouriteCharityService struct {
	favourites repository.FavouriteCharityRepository
}

func NewFavouriteCharityService(favourites repository.FavouriteCharityRepository) *FavouriteCharityService {
	return &FavouriteCharityService{favourites: favourites}
}

func (s *FavouriteCharityService) Create(ctx context.Context, body dto.CreateFavouriteCharityDTO) (model.FavouriteCharity, error) {
	if strings.TrimSpace(body.ClerkUserID) == "" || strings.TrimSpace(body.EveryID) == "" || strings.TrimSpace(body.EverySlug) == "" {
		return model.FavouriteCharity{}, fmt.Errorf("%w: clerkUserId, everyId and everySlug are required", ErrValidation)
	}
	if len(body.Note) > 255 {
		return model.FavouriteCharity{}, fmt.Errorf("%w: note must be at most 255 characters", ErrValidation)
	}

	fav, err := s.favourites.Insert(ctx, model.FavouriteCharity{
		EveryID:     body.EveryID,
		EverySlug:   body.EverySlug,
		ClerkUserID: body.ClerkUserID,
		Name:        body.Name,
		Website:     body.Website,
		Description: body.Description,
		ImageURL:    body.ImageURL,
		Note:        body.Note,
	})
	if err != nil {
		log.Printf("favourites: creating for user %s: %v", body.ClerkUserID, err)
		return model.FavouriteCharity{}, err
	}
	return fav, nil
}

func (s *FavouriteCharityService) FindByUser(ctx context.Context, clerkUserID string) ([]model.FavouriteCharity, error) {
	favourites, err := s.favourites.FindByUser(ctx, clerkUserID)
	if err != nil {
		log.Printf("favourites: listing for user %s: %v", clerkUserID, err)
		return nil, err
	}
	if favourites == nil {
		favourites = []model.FavouriteCharity{}
	}
	return favourites, nil
}

func (s *FavouriteCharityService) Remove(ctx context.Context, idHex string) (*model.FavouriteCharity, error) {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid favourite id", ErrMalformedPayload)
	}

	removed, err := s.favourites.Delete(ctx, id)
	if err != nil {
		log.Printf("favourites: removing %s: %v", idHex, err)
		return nil, err
	}
	if removed == nil {
		return nil, ErrFavouriteNotFound
	}
	return removed, nil
}
