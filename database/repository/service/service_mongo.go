package serviceRepo

import (
	"context"
	"fmt"

	"trimmr/database"
	"trimmr/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	categories *mongo.Collection
	services   *mongo.Collection
}

// NewMongoServiceRepo creates a new instance of ServiceRepository using MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	db := database.DB()
	repo := &MongoServiceRepo{
		categories: db.Collection("services"),
		services:   db.Collection("salon_services"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create service indexes: %v\n", err)
	}
	return repo
}

func (r *MongoServiceRepo) ensureIndexes() error {
	ctx := context.Background()
	if _, err := r.categories.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "order", Value: 1}},
	}); err != nil {
		return fmt.Errorf("failed to create category index: %w", err)
	}
	if _, err := r.services.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "salon_id", Value: 1}, {Key: "is_active", Value: 1}},
	}); err != nil {
		return fmt.Errorf("failed to create salon service index: %w", err)
	}
	return nil
}

// ListCategories returns active service categories ordered by their display order.
func (r *MongoServiceRepo) ListCategories(ctx context.Context, limit int) ([]models.ServiceCategory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := r.categories.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query service categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []models.ServiceCategory
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode service categories: %w", err)
	}
	return categories, nil
}

// ListBySalon returns a salon's active services ordered by category.
func (r *MongoServiceRepo) ListBySalon(ctx context.Context, salonID string) ([]models.SalonService, error) {
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}})
	cursor, err := r.services.Find(ctx, bson.M{"salon_id": salonID, "is_active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query salon services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.SalonService
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode salon services: %w", err)
	}
	return services, nil
}

// GetByIDs returns the salon services matching the given IDs.
func (r *MongoServiceRepo) GetByIDs(ctx context.Context, ids []string) ([]models.SalonService, error) {
	if len(ids) == 0 {
		return []models.SalonService{}, nil
	}
	cursor, err := r.services.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to query salon services by id: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.SalonService
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode salon services: %w", err)
	}
	return services, nil
}
