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

type OccasionService struct {
	occasions repository.OccasionRepository
}

func NewOccasionService(occasions repository.OccasionRepository) *OccasionService {
	return &OccasionService{occasions: occasions}
}

func (s *OccasionService) Create(ctx context.Context, body dto.CreateOccasionDTO) (model.Occasion, error) {
	if err := validateCreateOccasion(body); err != nil {
		return model.Occasion{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	charities := make([]model.Charity, 0, len(body.Charities))
	for _, c := range body.Charities {
		charities = append(charities, c.ToModel())
	}

	occ, err := s.occasions.Insert(ctx, model.Occasion{
		ClerkUserID: body.ClerkUserID,
		Name:        body.Name,
		Description: body.Description,
		Type:        body.Type,
		Start:       body.Start,
		End:         body.End,
		URL:         body.URL,
		Charities:   charities,
	})
	if err != nil {
		log.Printf("occasions: creating occasion for user %s: %v", body.ClerkUserID, err)
		return model.Occasion{}, err
	}
	return occ, nil
}

func (s *OccasionService) FindByUser(ctx context.Context, clerkUserID string) ([]model.Occasion, error) {
	occasions, err := s.occasions.FindByUser(ctx, clerkUserID)
	if err != nil {
		log.Printf("occasions: listing for user %s: %v", clerkUserID, err)
		return nil, err
	}
	if len(occasions) == 0 {
		return nil, ErrNoOccasionsForUser
	}
	return occasions, nil
}

func (s *OccasionService) FindByURL(ctx context.Context, url string) (*model.Occasion, error) {
	occ, err := s.occasions.FindByURL(ctx, url)
	if err != nil {
		log.Printf("occasions: finding by url %s: %v", url, err)
		return nil, err
	}
	if occ == nil {
		return nil, ErrOccasionURLNotFound
	}
	return occ, nil
}

func (s *OccasionService) Update(ctx context.Context, idHex string, body dto.UpdateOccasionDTO) (*model.Occasion, error) {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid occasion id", ErrMalformedPayload)
	}

	set, err := buildUpdateSet(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	updated, err := s.occasions.Update(ctx, id, set)
	if err != nil {
		log.Printf("occasions: updating %s: %v", idHex, err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrOccasionNotFound
	}
	return updated, nil
}

func (s *OccasionService) Delete(ctx context.Context, idHex string) error {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return fmt.Errorf("%w: invalid occasion id", ErrMalformedPayload)
	}

	deleted, err := s.occasions.Delete(ctx, id)
	if err != nil {
		log.Printf("occasions: deleting %s: %v", idHex, err)
		return err
	}
	if !deleted {
		return ErrOccasionNotFound
	}
	return nil
}

// ---- validation ----

func validateCreateOccasion(body dto.CreateOccasionDTO) error {
	if strings.TrimSpace(body.ClerkUserID) == "" {
		return fmt.Errorf("clerkUserId is required")
	}
	if l := len(body.Name); l < 1 || l > 40 {
		return fmt.Errorf("name must be 1-40 characters")
	}
	if l := len(body.Description); l < 1 || l > 255 {
		return fmt.Errorf("description must be 1-255 characters")
	}
	if !model.ValidOccasionType(body.Type) {
		return fmt.Errorf("unknown occasion type %q", body.Type)
	}
	if !body.End.After(body.Start) {
		return fmt.Errorf("end must be after start")
	}
	if strings.TrimSpace(body.URL) == "" {
		return fmt.Errorf("url is required")
	}
	return nil
}

// buildUpdateSet maps set fields onto their bson names, re-checking the
// same bounds as creation. Keys never come from the request body, so a
// '$'-prefixed operator cannot be smuggled into the update document.
func buildUpdateSet(body dto.UpdateOccasionDTO) (bson.M, error) {
	set := bson.M{}
	if body.Name != nil {
		if l := len(*body.Name); l < 1 || l > 40 {
			return nil, fmt.Errorf("name must be 1-40 characters")
		}
		set["name"] = *body.Name
	}
	if body.Description != nil {
		if l := len(*body.Description); l < 1 || l > 255 {
			return nil, fmt.Errorf("description must be 1-255 characters")
		}
		set["description"] = *body.Description
	}
	if body.Type != nil {
		if !model.ValidOccasionType(*body.Type) {
			return nil, fmt.Errorf("unknown occasion type %q", *body.Type)
		}
		set["type"] = *body.Type
	}
	if body.Start != nil {
		set["start"] = *body.Start
	}
	if body.End != nil {
		set["end"] = *body.End
	}
	if body.URL != nil {
		if strings.TrimSpace(*body.URL) == "" {
			return nil, fmt.Errorf("url must not be empty")
		}
		set["url"] = *body.URL
	}
	if body.Charities != nil {
		charities := make([]model.Charity, 0, len(*body.Charities))
		for _, c := range *body.Charities {
			m := c.ToModel()
			m.ID = bson.NewObjectID()
			charities = append(charities, m)
		}
		set["charities"] = charities
	}
	return set, nil
}
