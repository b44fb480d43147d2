package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"giveinstead/dto"
	"giveinstead/internal/repository"
	"giveinstead/model"
)

type DonationService struct {
	occasions repository.OccasionRepository
}

func NewDonationService(occasions repository.OccasionRepository) *DonationService {
	return &DonationService{occasions: occasions}
}

// IngestWebhook turns one every.org donation notification into a donation
// appended to the matching charity of the matching occasion. The returned
// donation is the constructed value, not a re-read of the stored document.
func (s *DonationService) IngestWebhook(ctx context.Context, hook dto.EveryDotOrgWebhook) (model.Donation, error) {
	occasionID, err := bson.ObjectIDFromHex(hook.PartnerDonationID)
	if err != nil {
		// A non-hex partnerDonationId cannot identify any occasion.
		log.Printf("webhook %s: partnerDonationId %q is not an occasion id", hook.ChargeID, hook.PartnerDonationID)
		return model.Donation{}, ErrOccasionNotFound
	}

	occ, err := s.occasions.FindByID(ctx, occasionID)
	if err != nil {
		log.Printf("webhook %s: loading occasion %s: %v", hook.ChargeID, hook.PartnerDonationID, err)
		return model.Donation{}, err
	}
	if occ == nil {
		log.Printf("webhook %s: no occasion for partnerDonationId %s", hook.ChargeID, hook.PartnerDonationID)
		return model.Donation{}, ErrOccasionNotFound
	}

	if !hasCharity(occ.Charities, hook.ToNonprofit.Slug) {
		log.Printf("webhook %s: occasion %s has no charity with slug %q", hook.ChargeID, hook.PartnerDonationID, hook.ToNonprofit.Slug)
		return model.Donation{}, ErrCharityNotFound
	}

	amount, err := parseAmount(hook.Amount)
	if err != nil {
		log.Printf("webhook %s: bad amount %q: %v", hook.ChargeID, hook.Amount, err)
		return model.Donation{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	donation := model.Donation{
		Amount:    amount,
		DonorName: donorName(hook.FirstName, hook.LastName),
		CreatedAt: time.Now().UTC(),
		Message:   donationMessage(hook.PublicTestimony, hook.PrivateNote),
	}

	matched, err := s.occasions.AppendDonation(ctx, occasionID, hook.ToNonprofit.Slug, donation)
	if err != nil {
		log.Printf("webhook %s: appending donation to occasion %s: %v", hook.ChargeID, hook.PartnerDonationID, err)
		return model.Donation{}, err
	}
	if !matched {
		// The charity was there a moment ago; it can only have been
		// removed by a concurrent occasion update.
		log.Printf("webhook %s: charity %q vanished from occasion %s before append", hook.ChargeID, hook.ToNonprofit.Slug, hook.PartnerDonationID)
		return model.Donation{}, ErrCharityNotFound
	}

	return donation, nil
}

func hasCharity(charities []model.Charity, everySlug string) bool {
	for _, c := range charities {
		if c.EverySlug == everySlug {
			return true
		}
	}
	return false
}

// donorName joins whichever of first/last name the payload carries,
// falling back to "Anonymous" when both are missing or blank.
func donorName(first, last *string) string {
	var parts []string
	if first != nil && strings.TrimSpace(*first) != "" {
		parts = append(parts, strings.TrimSpace(*first))
	}
	if last != nil && strings.TrimSpace(*last) != "" {
		parts = append(parts, strings.TrimSpace(*last))
	}
	if len(parts) == 0 {
		return "Anonymous"
	}
	return strings.Join(parts, " ")
}

// donationMessage prefers the public testimony, then the private note.
// Empty means no message at all (the field is omitted when stored).
func donationMessage(testimony, note *string) string {
	if testimony != nil && *testimony != "" {
		return *testimony
	}
	if note != nil && *note != "" {
		return *note
	}
	return ""
}

func parseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("amount %q is not numeric", raw)
	}
	return amount, nil
}
