package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"giveinstead/model"
)

// ================================
// Interface
// ================================
type OccasionRepository interface {
	Insert(ctx context.Context, occ model.Occasion) (model.Occasion, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*model.Occasion, error)
	FindByURL(ctx context.Context, url string) (*model.Occasion, error)
	FindByUser(ctx context.Context, clerkUserID string) ([]model.Occasion, error)
	// Update applies the given $set document and returns the updated
	// occasion, or nil when no occasion has this id.
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (*model.Occasion, error)
	// Delete reports whether an occasion was actually removed.
	Delete(ctx context.Context, id bson.ObjectID) (bool, error)
	// AppendDonation pushes one donation onto the donations array of the
	// charity matching everySlug, as a single conditional update. Two
	// concurrent appends to the same occasion cannot clobber each other.
	// Reports whether the (occasion, charity) pair matched.
	AppendDonation(ctx context.Context, occasionID bson.ObjectID, everySlug string, d model.Donation) (bool, error)

	LifetimeRaised(ctx context.Context, clerkUserID string) (float64, error)
	TopPerformingCharity(ctx context.Context, clerkUserID string) (*TopCharityRow, error)
	MostSuccessfulOccasion(ctx context.Context, clerkUserID string) (*TopOccasionRow, error)

	EnsureIndexes(ctx context.Context) error
}

// ================================
// Aggregation rows
// ================================

// TopCharityRow groups donations by the embedded charity sub-document's own
// id. The same nonprofit added to two occasions forms two separate groups.
type TopCharityRow struct {
	CharityID   bson.ObjectID `json:"charityId"   bson:"_id"`
	Amount      float64       `json:"amount"      bson:"amount"`
	CharityName string        `json:"charityName" bson:"charityName"`
}

// TopOccasionRow groups donations by owning occasion. Charities holds one
// entry per charity row the grouping traversal encountered, i.e. charities
// with no donations do not appear.
type TopOccasionRow struct {
	OccasionID   bson.ObjectID   `json:"occasionId"   bson:"_id"`
	TotalAmount  float64         `json:"totalAmount"  bson:"totalAmount"`
	OccasionName string          `json:"occasionName" bson:"occasionName"`
	StartDate    time.Time       `json:"startDate"    bson:"startDate"`
	EndDate      time.Time       `json:"endDate"      bson:"endDate"`
	OccasionURL  string          `json:"occasionUrl"  bson:"occasionUrl"`
	Charities    []model.Charity `json:"charities"    bson:"charities"`
}

// ================================
// Implementation (Mongo)
// ================================
type mongoOccasionRepo struct {
	col *mongo.Collection
}

func NewMongoOccasionRepo(db *mongo.Database) OccasionRepository {
	return &mongoOccasionRepo{col: db.Collection("occasions")}
}

func (r *mongoOccasionRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "url", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "clerk_user_id", Value: 1}},
		},
	})
	return err
}

func (r *mongoOccasionRepo) Insert(ctx context.Context, occ model.Occasion) (model.Occasion, error) {
	if occ.ID.IsZero() {
		occ.ID = bson.NewObjectID()
	}
	for i := range occ.Charities {
		if occ.Charities[i].ID.IsZero() {
			occ.Charities[i].ID = bson.NewObjectID()
		}
		if occ.Charities[i].Donations == nil {
			occ.Charities[i].Donations = []model.Donation{}
		}
	}
	if _, err := r.col.InsertOne(ctx, occ); err != nil {
		return model.Occasion{}, err
	}
	return occ, nil
}

func (r *mongoOccasionRepo) FindByID(ctx context.Context, id bson.ObjectID) (*model.Occasion, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoOccasionRepo) FindByURL(ctx context.Context, url string) (*model.Occasion, error) {
	return r.findOne(ctx, bson.M{"url": url})
}

func (r *mongoOccasionRepo) findOne(ctx context.Context, filter bson.M) (*model.Occasion, error) {
	var occ model.Occasion
	err := r.col.FindOne(ctx, filter).Decode(&occ)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &occ, nil
}

func (r *mongoOccasionRepo) FindByUser(ctx context.Context, clerkUserID string) ([]model.Occasion, error) {
	cur, err := r.col.Find(ctx, bson.M{"clerk_user_id": clerkUserID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var occasions []model.Occasion
	if err := cur.All(ctx, &occasions); err != nil {
		return nil, err
	}
	return occasions, nil
}

func (r *mongoOccasionRepo) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*model.Occasion, error) {
	var updated model.Occasion
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *mongoOccasionRepo) Delete(ctx context.Context, id bson.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *mongoOccasionRepo) AppendDonation(ctx context.Context, occasionID bson.ObjectID, everySlug string, d model.Donation) (bool, error) {
	// $ targets the first charity element matched by the filter, so the
	// push lands inside that element only.
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": occasionID, "charities.every_slug": everySlug},
		bson.M{"$push": bson.M{"charities.$.donations": d}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// ---- statistics pipelines ----

// matchAndFlatten is the shared prefix of all three stats pipelines: filter
// to the user's occasions, then denormalize to one row per donation.
func matchAndFlatten(clerkUserID string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"clerk_user_id": clerkUserID}}},
		{{Key: "$unwind", Value: "$charities"}},
		{{Key: "$unwind", Value: "$charities.donations"}},
	}
}

func (r *mongoOccasionRepo) LifetimeRaised(ctx context.Context, clerkUserID string) (float64, error) {
	pipeline := append(matchAndFlatten(clerkUserID), bson.D{
		{Key: "$group", Value: bson.M{
			"_id":         nil,
			"totalAmount": bson.M{"$sum": "$charities.donations.amount"},
		}},
	})

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		TotalAmount float64 `bson:"totalAmount"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].TotalAmount, nil
}

func (r *mongoOccasionRepo) TopPerformingCharity(ctx context.Context, clerkUserID string) (*TopCharityRow, error) {
	pipeline := append(matchAndFlatten(clerkUserID),
		bson.D{{Key: "$group", Value: bson.M{
			"_id":         "$charities._id",
			"amount":      bson.M{"$sum": "$charities.donations.amount"},
			"charityName": bson.M{"$first": "$charities.name"},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "amount", Value: -1}}}},
		bson.D{{Key: "$limit", Value: 1}},
	)

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []TopCharityRow
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *mongoOccasionRepo) MostSuccessfulOccasion(ctx context.Context, clerkUserID string) (*TopOccasionRow, error) {
	pipeline := append(matchAndFlatten(clerkUserID),
		bson.D{{Key: "$group", Value: bson.M{
			"_id":          "$_id",
			"totalAmount":  bson.M{"$sum": "$charities.donations.amount"},
			"occasionName": bson.M{"$first": "$name"},
			"startDate":    bson.M{"$first": "$start"},
			"endDate":      bson.M{"$first": "$end"},
			"occasionUrl":  bson.M{"$first": "$url"},
			"charities":    bson.M{"$push": "$charities"},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "totalAmount", Value: -1}}}},
		bson.D{{Key: "$limit", Value: 1}},
	)

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []TopOccasionRow
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
