package services

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/v2/bson"

	"giveinstead/internal/repository"
	"giveinstead/model"
)

// fakeOccasionRepo keeps occasions in memory and mirrors the store's
// aggregation semantics with plain loops: flatten charities and donations,
// group, sum, pick the max.
type fakeOccasionRepo struct {
	occasions map[bson.ObjectID]*model.Occasion
	failWith  error
}

func newFakeOccasionRepo(occasions ...model.Occasion) *fakeOccasionRepo {
	r := &fakeOccasionRepo{occasions: map[bson.ObjectID]*model.Occasion{}}
	for i := range occasions {
		occ := occasions[i]
		r.occasions[occ.ID] = &occ
	}
	return r
}

func (r *fakeOccasionRepo) Insert(_ context.Context, occ model.Occasion) (model.Occasion, error) {
	if r.failWith != nil {
		return model.Occasion{}, r.failWith
	}
	if occ.ID.IsZero() {
		occ.ID = bson.NewObjectID()
	}
	r.occasions[occ.ID] = &occ
	return occ, nil
}

func (r *fakeOccasionRepo) FindByID(_ context.Context, id bson.ObjectID) (*model.Occasion, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return r.occasions[id], nil
}

func (r *fakeOccasionRepo) FindByURL(_ context.Context, url string) (*model.Occasion, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, occ := range r.occasions {
		if occ.URL == url {
			return occ, nil
		}
	}
	return nil, nil
}

func (r *fakeOccasionRepo) FindByUser(_ context.Context, clerkUserID string) ([]model.Occasion, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []model.Occasion
	for _, occ := range r.occasions {
		if occ.ClerkUserID == clerkUserID {
			out = append(out, *occ)
		}
	}
	return out, nil
}

func (r *fakeOccasionRepo) Update(_ context.Context, id bson.ObjectID, set bson.M) (*model.Occasion, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	occ, ok := r.occasions[id]
	if !ok {
		return nil, nil
	}
	if name, ok := set["name"].(string); ok {
		occ.Name = name
	}
	if desc, ok := set["description"].(string); ok {
		occ.Description = desc
	}
	if url, ok := set["url"].(string); ok {
		occ.URL = url
	}
	return occ, nil
}

func (r *fakeOccasionRepo) Delete(_ context.Context, id bson.ObjectID) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	if _, ok := r.occasions[id]; !ok {
		return false, nil
	}
	delete(r.occasions, id)
	return true, nil
}

func (r *fakeOccasionRepo) AppendDonation(_ context.Context, occasionID bson.ObjectID, everySlug string, d model.Donation) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	occ, ok := r.occasions[occasionID]
	if !ok {
		return false, nil
	}
	for i := range occ.Charities {
		if occ.Charities[i].EverySlug == everySlug {
			occ.Charities[i].Donations = append(occ.Charities[i].Donations, d)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeOccasionRepo) LifetimeRaised(_ context.Context, clerkUserID string) (float64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	var total float64
	for _, occ := range r.occasions {
		if occ.ClerkUserID != clerkUserID {
			continue
		}
		for _, c := range occ.Charities {
			for _, d := range c.Donations {
				total += d.Amount
			}
		}
	}
	return total, nil
}

func (r *fakeOccasionRepo) TopPerformingCharity(_ context.Context, clerkUserID string) (*repository.TopCharityRow, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	groups := map[bson.ObjectID]*repository.TopCharityRow{}
	for _, occ := range r.occasions {
		if occ.ClerkUserID != clerkUserID {
			continue
		}
		for _, c := range occ.Charities {
			for _, d := range c.Donations {
				g, ok := groups[c.ID]
				if !ok {
					g = &repository.TopCharityRow{CharityID: c.ID, CharityName: c.Name}
					groups[c.ID] = g
				}
				g.Amount += d.Amount
			}
		}
	}
	return maxRow(groups, func(g *repository.TopCharityRow) float64 { return g.Amount }), nil
}

func (r *fakeOccasionRepo) MostSuccessfulOccasion(_ context.Context, clerkUserID string) (*repository.TopOccasionRow, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	groups := map[bson.ObjectID]*repository.TopOccasionRow{}
	for _, occ := range r.occasions {
		if occ.ClerkUserID != clerkUserID {
			continue
		}
		for _, c := range occ.Charities {
			if len(c.Donations) == 0 {
				continue
			}
			g, ok := groups[occ.ID]
			if !ok {
				g = &repository.TopOccasionRow{
					OccasionID:   occ.ID,
					OccasionName: occ.Name,
					StartDate:    occ.Start,
					EndDate:      occ.End,
					OccasionURL:  occ.URL,
				}
				groups[occ.ID] = g
			}
			g.Charities = append(g.Charities, c)
			for _, d := range c.Donations {
				g.TotalAmount += d.Amount
			}
		}
	}
	return maxRow(groups, func(g *repository.TopOccasionRow) float64 { return g.TotalAmount }), nil
}

func (r *fakeOccasionRepo) EnsureIndexes(context.Context) error { return nil }

// maxRow picks the highest-sum group with a stable key order so tests do
// not depend on map iteration.
func maxRow[T any](groups map[bson.ObjectID]*T, amount func(*T) float64) *T {
	keys := make([]bson.ObjectID, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Hex() < keys[j].Hex() })

	var best *T
	for _, k := range keys {
		if best == nil || amount(groups[k]) > amount(best) {
			best = groups[k]
		}
	}
	return best
}
