package favouriteRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trimmr/database"
	"trimmr/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFavouriteRepo implements FavouriteRepository using MongoDB.
type MongoFavouriteRepo struct {
	coll *mongo.Collection
}

// NewMongoFavouriteRepo creates a new instance of FavouriteRepository using MongoDB.
func NewMongoFavouriteRepo() FavouriteRepository {
	coll := database.DB().Collection("favourites")
	repo := &MongoFavouriteRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create favourite indexes: %v\n", err)
	}
	return repo
}

func (r *MongoFavouriteRepo) ensureIndexes() error {
	ctx := context.Background()
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "salon_id", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new favourite record and returns its ID.
func (r *MongoFavouriteRepo) Create(ctx context.Context, fav models.Favourite) (string, error) {
	if fav.ID == "" {
		fav.ID = uuid.New().String()
	}
	if fav.CreatedAt.IsZero() {
		fav.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, fav); err != nil {
		return "", fmt.Errorf("failed to insert favourite: %w", err)
	}
	return fav.ID, nil
}

// FindByUserAndSalon returns the favourite linking a user to a salon, or nil
// when none exists.
func (r *MongoFavouriteRepo) FindByUserAndSalon(ctx context.Context, userID, salonID string) (*models.Favourite, error) {
	var fav models.Favourite
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "salon_id": salonID}).Decode(&fav)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up favourite: %w", err)
	}
	return &fav, nil
}

// ListByUser returns all of a user's favourites, newest first.
func (r *MongoFavouriteRepo) ListByUser(ctx context.Context, userID string) ([]models.Favourite, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query favourites: %w", err)
	}
	defer cursor.Close(ctx)

	var favs []models.Favourite
	if err := cursor.All(ctx, &favs); err != nil {
		return nil, fmt.Errorf("failed to decode favourites: %w", err)
	}
	return favs, nil
}

// DeleteByID removes a favourite record by ID.
func (r *MongoFavouriteRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete favourite: %w", err)
	}
	if res.DeletedCount == 0 {
		return errors.New("favourite not found")
	}
	return nil
}
