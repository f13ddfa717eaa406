package stylistRepo

import (
	"context"
	"fmt"

	"trimmr/database"
	"trimmr/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStylistRepo implements StylistRepository using MongoDB.
type MongoStylistRepo struct {
	coll *mongo.Collection
}

// NewMongoStylistRepo creates a new instance of StylistRepository using MongoDB.
func NewMongoStylistRepo() StylistRepository {
	coll := database.DB().Collection("stylists")
	repo := &MongoStylistRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create stylist indexes: %v\n", err)
	}
	return repo
}

func (r *MongoStylistRepo) ensureIndexes() error {
	ctx := context.Background()
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "salon_id", Value: 1}, {Key: "is_active", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID returns a stylist by ID, or nil when no such stylist exists.
func (r *MongoStylistRepo) GetByID(ctx context.Context, id string) (*models.Stylist, error) {
	var stylist models.Stylist
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&stylist); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch stylist %s: %w", id, err)
	}
	return &stylist, nil
}

// ListBySalon returns a salon's active stylists ordered by (top-rated desc,
// rating desc), optionally restricted to those offering any of serviceIDs.
func (r *MongoStylistRepo) ListBySalon(ctx context.Context, salonID string, serviceIDs []string) ([]models.Stylist, error) {
	filter := bson.M{
		"salon_id":  salonID,
		"is_active": true,
	}
	if len(serviceIDs) > 0 {
		filter["available_services"] = bson.M{"$in": serviceIDs}
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "top_rated", Value: -1},
		{Key: "rating", Value: -1},
	})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query stylists: %w", err)
	}
	defer cursor.Close(ctx)

	var stylists []models.Stylist
	if err := cursor.All(ctx, &stylists); err != nil {
		return nil, fmt.Errorf("failed to decode stylists: %w", err)
	}
	return stylists, nil
}
