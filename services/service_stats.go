package services

import (
	"context"
	"log"

	"giveinstead/internal/repository"
)

// StatsService exposes the three dashboard aggregations. Results are
// re-derived from the store on every call; nothing is cached.
type StatsService struct {
	occasions repository.OccasionRepository
}

func NewStatsService(occasions repository.OccasionRepository) *StatsService {
	return &StatsService{occasions: occasions}
}

// LifetimeRaised sums every donation under every occasion of the user.
// A user with no occasions or no donations gets 0, not an error.
func (s *StatsService) LifetimeRaised(ctx context.Context, clerkUserID string) (float64, error) {
	total, err := s.occasions.LifetimeRaised(ctx, clerkUserID)
	if err != nil {
		log.Printf("stats: lifetime raised for user %s: %v", clerkUserID, err)
		return 0, err
	}
	return total, nil
}

// TopPerformingCharity returns the embedded charity with the highest donation
// total, or nil when the user has no donations. Groups are per embedded
// charity sub-document, so the same nonprofit on two occasions is two groups.
func (s *StatsService) TopPerformingCharity(ctx context.Context, clerkUserID string) (*repository.TopCharityRow, error) {
	row, err := s.occasions.TopPerformingCharity(ctx, clerkUserID)
	if err != nil {
		log.Printf("stats: top charity for user %s: %v", clerkUserID, err)
		return nil, err
	}
	return row, nil
}

// MostSuccessfulOccasion returns the occasion with the highest donation
// total, or nil when the user has no donations.
func (s *StatsService) MostSuccessfulOccasion(ctx context.Context, clerkUserID string) (*repository.TopOccasionRow, error) {
	row, err := s.occasions.MostSuccessfulOccasion(ctx, clerkUserID)
	if err != nil {
		log.Printf("stats: most successful occasion for user %s: %v", clerkUserID, err)
		return nil, err
	}
	return row, nil
}
