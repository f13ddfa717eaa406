package salonRepo

import (
	"context"
	"fmt"

	"trimmr/database"
	"trimmr/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSalonRepo implements SalonRepository using MongoDB.
type MongoSalonRepo struct {
	coll *mongo.Collection
}

// NewMongoSalonRepo creates a new instance of SalonRepository using MongoDB.
func NewMongoSalonRepo() SalonRepository {
	coll := database.DB().Collection("salons")
	repo := &MongoSalonRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create salon indexes: %v\n", err)
	}
	return repo
}

func (r *MongoSalonRepo) ensureIndexes() error {
	ctx := context.Background()
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "rating", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoSalonRepo) findActive(ctx context.Context, filter bson.M, limit int) ([]models.Salon, error) {
	filter["is_active"] = true
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query salons: %w", err)
	}
	defer cursor.Close(ctx)

	var salons []models.Salon
	if err := cursor.All(ctx, &salons); err != nil {
		return nil, fmt.Errorf("failed to decode salons: %w", err)
	}
	return salons, nil
}

// GetActive returns active salons ordered by rating descending.
func (r *MongoSalonRepo) GetActive(ctx context.Context, limit int) ([]models.Salon, error) {
	return r.findActive(ctx, bson.M{}, limit)
}

// GetByCity returns active salons in a city ordered by rating descending.
func (r *MongoSalonRepo) GetByCity(ctx context.Context, city string, limit int) ([]models.Salon, error) {
	return r.findActive(ctx, bson.M{"city": city}, limit)
}

// GetByID returns a salon by its ID, or nil when no such salon exists.
func (r *MongoSalonRepo) GetByID(ctx context.Context, id string) (*models.Salon, error) {
	var salon models.Salon
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&salon); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch salon %s: %w", id, err)
	}
	return &salon, nil
}
