package dto

// EveryDotOrgWebhook is the donation-completed notification posted by
// every.org. partnerDonationId carries the target occasion's hex id and
// toNonprofit.slug selects the charity inside it. Name, testimony and note
// fields may be absent or null.
type EveryDotOrgWebhook struct {
	ChargeID          string           `json:"chargeId"`
	PartnerDonationID string           `json:"partnerDonationId"`
	PartnerMetadata   map[string]any   `json:"partnerMetadata,omitempty"`
	FirstName         *string          `json:"firstName,omitempty"`
	LastName          *string          `json:"lastName,omitempty"`
	Email             *string          `json:"email,omitempty"`
	ToNonprofit       WebhookNonprofit `json:"toNonprofit"`
	Amount            string           `json:"amount"`
	NetAmount         string           `json:"netAmount"`
	Currency          string           `json:"currency"`
	Frequency         string           `json:"frequency"`
	PublicTestimony   *string          `json:"publicTestimony,omitempty"`
	PrivateNote       *string          `json:"privateNote,omitempty"`
	FromFundraiser    map[string]any   `json:"fromFundraiser,omitempty"`
	PaymentMethod     string           `json:"paymentMethod"`
}

type WebhookNonprofit struct {
	Slug string `json:"slug"`
	EIN  string `json:"ein,omitempty"`
	Name string `json:"name"`
}
