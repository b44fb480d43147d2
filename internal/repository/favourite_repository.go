package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"giveinstead/model"
)

type FavouriteCharityRepository interface {
	Insert(ctx context.Context, fav model.FavouriteCharity) (model.FavouriteCharity, error)
	FindByUser(ctx context.Context, clerkUserID string) ([]model.FavouriteCharity, error)
	// Delete returns the removed favourite, or nil when the id matched
	// nothing.
	Delete(ctx context.Context, id bson.ObjectID) (*model.FavouriteCharity, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoFavouriteRepo struct {
	col *mongo.Collection
}

func NewMongoFavouriteRepo(db *mongo.Database) FavouriteCharityRepository {
	return &mongoFavouriteRepo{col: db.Collection("favourite_charities")}
}

func (r *mongoFavouriteRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "clerk_user_id", Value: 1},
			{Key: "every_id", Value: 1},
		},
	})
	return err
}

func (r *mongoFavouriteRepo) Insert(ctx context.Context, fav model.FavouriteCharity) (model.FavouriteCharity, error) {
	if fav.ID.IsZero() {
		fav.ID = bson.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, fav); err != nil {
		return model.FavouriteCharity{}, err
	}
	return fav, nil
}

func (r *mongoFavouriteRepo) FindByUser(ctx context.Context, clerkUserID string) ([]model.FavouriteCharity, error) {
	cur, err := r.col.Find(ctx, bson.M{"clerk_user_id": clerkUserID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var favourites []model.FavouriteCharity
	if err := cur.All(ctx, &favourites); err != nil {
		return nil, err
	}
	return favourites, nil
}

func (r *mongoFavouriteRepo) Delete(ctx context.Context, id bson.ObjectID) (*model.FavouriteCharity, error) {
	var removed model.FavouriteCharity
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&removed)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &removed, nil
}
