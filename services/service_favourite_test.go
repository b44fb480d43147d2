package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"giveinstead/dto"
	"giveinstead/model"
)

type fakeFavouriteRepo struct {
	favourites map[bson.ObjectID]model.FavouriteCharity
}

func newFakeFavouriteRepo() *fakeFavouriteRepo {
	return &fakeFavouriteRepo{favourites: map[bson.ObjectID]model.FavouriteCharity{}}
}

func (r *fakeFavouriteRepo) Insert(_ context.Context, fav model.FavouriteCharity) (model.FavouriteCharity, error) {
	if fav.ID.IsZero() {
		fav.ID = bson.NewObjectID()
	}
	r.favourites[fav.ID] = fav
	return fav, nil
}

func (r *fakeFavouriteRepo) FindByUser(_ context.Context, clerkUserID string) ([]model.FavouriteCharity, error) {
	var out []model.FavouriteCharity
	for _, f := range r.favourites {
		if f.ClerkUserID == clerkUserID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFavouriteRepo) Delete(_ context.Context, id bson.ObjectID) (*model.FavouriteCharity, error) {
	f, ok := r.favourites[id]
	if !ok {
		return nil, nil
	}
	delete(r.favourites, id)
	return &f, nil
}

func (r *fakeFavouriteRepo) EnsureIndexes(context.Context) error { return nil }

func TestCreateFavourite(t *testing.T) {
	svc := NewFavouriteCharityService(newFakeFavouriteRepo())

	fav, err := svc.Create(context.Background(), dto.CreateFavouriteCharityDTO{
		EveryID:     "ein-1",
		EverySlug:   "test-nonprofit",
		ClerkUserID: "user_123",
		Name:        "Test Nonprofit",
		Note:        "my favourite",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fav.ID.IsZero() {
		t.Error("favourite id not assigned")
	}
	if fav.Note != "my favourite" {
		t.Errorf("note = %q, want %q", fav.Note, "my favourite")
	}
}

func TestCreateFavouriteValidation(t *testing.T) {
	svc := NewFavouriteCharityService(newFakeFavouriteRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, dto.CreateFavouriteCharityDTO{EveryID: "e", EverySlug: "s"}); !errors.Is(err, ErrValidation) {
		t.Errorf("missing user: error = %v, want ErrValidation", err)
	}

	long := dto.CreateFavouriteCharityDTO{
		EveryID:     "ein-1",
		EverySlug:   "test-nonprofit",
		ClerkUserID: "user_123",
		Note:        strings.Repeat("x", 256),
	}
	if _, err := svc.Create(ctx, long); !errors.Is(err, ErrValidation) {
		t.Errorf("long note: error = %v, want ErrValidation", err)
	}
}

func TestFindFavouritesEmptyIsNotError(t *testing.T) {
	svc := NewFavouriteCharityService(newFakeFavouriteRepo())

	list, err := svc.FindByUser(context.Background(), "user_nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("list = %v, want empty slice", list)
	}
}

func TestRemoveFavourite(t *testing.T) {
	repo := newFakeFavouriteRepo()
	svc := NewFavouriteCharityService(repo)
	ctx := context.Background()

	fav, _ := svc.Create(ctx, dto.CreateFavouriteCharityDTO{
		EveryID: "ein-1", EverySlug: "test-nonprofit", ClerkUserID: "user_123",
	})

	removed, err := svc.Remove(ctx, fav.ID.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed.ID != fav.ID {
		t.Errorf("removed id = %s, want %s", removed.ID.Hex(), fav.ID.Hex())
	}

	if _, err := svc.Remove(ctx, fav.ID.Hex()); !errors.Is(err, ErrFavouriteNotFound) {
		t.Errorf("second remove: error = %v, want ErrFavouriteNotFound", err)
	}
	if _, err := svc.Remove(ctx, "not-hex"); !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("bad id: error = %v, want ErrMalformedPayload", err)
	}
}
