package services

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"giveinstead/model"
)

// statsFixture: user has O1 (charity A: 100+50, charity B: 200) and
// O2 (charity A again, as its own embedding: 300).
func statsFixture() (*fakeOccasionRepo, model.Occasion, model.Occasion) {
	now := time.Now().UTC()
	d := func(amount float64) model.Donation {
		return model.Donation{Amount: amount, DonorName: "Anonymous", CreatedAt: now}
	}

	o1 := model.Occasion{
		ID:          bson.NewObjectID(),
		ClerkUserID: "user_123",
		Name:        "O1",
		URL:         "o1",
		Start:       now,
		End:         now.Add(time.Hour),
		Charities: []model.Charity{
			{ID: bson.NewObjectID(), EverySlug: "charity-a", Name: "Charity A", Donations: []model.Donation{d(100), d(50)}},
			{ID: bson.NewObjectID(), EverySlug: "charity-b", Name: "Charity B", Donations: []model.Donation{d(200)}},
		},
	}
	o2 := model.Occasion{
		ID:          bson.NewObjectID(),
		ClerkUserID: "user_123",
		Name:        "O2",
		URL:         "o2",
		Start:       now,
		End:         now.Add(time.Hour),
		Charities: []model.Charity{
			{ID: bson.NewObjectID(), EverySlug: "charity-a", Name: "Charity A", Donations: []model.Donation{d(300)}},
		},
	}
	return newFakeOccasionRepo(o1, o2), o1, o2
}

func TestLifetimeRaised(t *testing.T) {
	repo, _, _ := statsFixture()
	svc := NewStatsService(repo)

	total, err := svc.LifetimeRaised(context.Background(), "user_123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 650 {
		t.Errorf("total = %v, want 650", total)
	}
}

func TestLifetimeRaisedNoOccasions(t *testing.T) {
	svc := NewStatsService(newFakeOccasionRepo())

	total, err := svc.LifetimeRaised(context.Background(), "user_nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 0 {
		t.Errorf("total = %v, want 0", total)
	}
}

func TestTopPerformingCharityPicksPerEmbeddingGroup(t *testing.T) {
	repo, _, o2 := statsFixture()
	svc := NewStatsService(repo)

	row, err := svc.TopPerformingCharity(context.Background(), "user_123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row == nil {
		t.Fatal("row = nil, want the 300-sum group")
	}
	// Groups are per embedded charity: A-in-O1 is 150, B-in-O1 is 200,
	// A-in-O2 is 300. No cross-occasion merge by slug.
	if row.Amount != 300 {
		t.Errorf("amount = %v, want 300", row.Amount)
	}
	if row.CharityID != o2.Charities[0].ID {
		t.Errorf("charity id = %s, want A-in-O2 (%s)", row.CharityID.Hex(), o2.Charities[0].ID.Hex())
	}
	if row.CharityName != "Charity A" {
		t.Errorf("name = %q, want %q", row.CharityName, "Charity A")
	}
}

func TestMostSuccessfulOccasion(t *testing.T) {
	repo, o1, _ := statsFixture()
	svc := NewStatsService(repo)

	row, err := svc.MostSuccessfulOccasion(context.Background(), "user_123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row == nil {
		t.Fatal("row = nil, want O1")
	}
	// O1 totals 350 (150+200), O2 totals 300.
	if row.OccasionID != o1.ID {
		t.Errorf("occasion = %s, want O1 (%s)", row.OccasionID.Hex(), o1.ID.Hex())
	}
	if row.TotalAmount != 350 {
		t.Errorf("total = %v, want 350", row.TotalAmount)
	}
	if row.OccasionName != "O1" || row.OccasionURL != "o1" {
		t.Errorf("retained fields = %q/%q, want O1/o1", row.OccasionName, row.OccasionURL)
	}
	if len(row.Charities) != 2 {
		t.Errorf("charities rows = %d, want 2", len(row.Charities))
	}
}

func TestStatsEmptyStateDefaults(t *testing.T) {
	svc := NewStatsService(newFakeOccasionRepo())
	ctx := context.Background()

	if total, err := svc.LifetimeRaised(ctx, "user_nobody"); err != nil || total != 0 {
		t.Errorf("LifetimeRaised = (%v, %v), want (0, nil)", total, err)
	}
	if row, err := svc.TopPerformingCharity(ctx, "user_nobody"); err != nil || row != nil {
		t.Errorf("TopPerformingCharity = (%v, %v), want (nil, nil)", row, err)
	}
	if row, err := svc.MostSuccessfulOccasion(ctx, "user_nobody"); err != nil || row != nil {
		t.Errorf("MostSuccessfulOccasion = (%v, %v), want (nil, nil)", row, err)
	}
}

func TestStatsReadsAreIdempotent(t *testing.T) {
	repo, _, _ := statsFixture()
	svc := NewStatsService(repo)
	ctx := context.Background()

	t1, _ := svc.LifetimeRaised(ctx, "user_123")
	t2, _ := svc.LifetimeRaised(ctx, "user_123")
	if t1 != t2 {
		t.Errorf("lifetime raised changed between reads: %v then %v", t1, t2)
	}

	c1, _ := svc.TopPerformingCharity(ctx, "user_123")
	c2, _ := svc.TopPerformingCharity(ctx, "user_123")
	if c1.CharityID != c2.CharityID || c1.Amount != c2.Amount {
		t.Errorf("top charity changed between reads: %+v then %+v", c1, c2)
	}

	o1, _ := svc.MostSuccessfulOccasion(ctx, "user_123")
	o2, _ := svc.MostSuccessfulOccasion(ctx, "user_123")
	if o1.OccasionID != o2.OccasionID || o1.TotalAmount != o2.TotalAmount {
		t.Errorf("top occasion changed between reads: %+v then %+v", o1, o2)
	}
}
