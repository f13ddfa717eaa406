package userRepo

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

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	coll := database.DB().Collection("users")
	repo := &MongoUserRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create user indexes: %v\n", err)
	}
	return repo
}

func (r *MongoUserRepo) ensureIndexes() error {
	ctx := context.Background()
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new user record and returns its ID.
func (r *MongoUserRepo) Create(ctx context.Context, user models.User) (string, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", errors.New("email already registered")
		}
		return "", fmt.Errorf("failed to insert user: %w", err)
	}
	return user.ID, nil
}

// GetByID returns a user by ID with credential hashes projected out, or nil
// when no such user exists.
func (r *MongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	opts := options.FindOne().SetProjection(bson.M{
		"password_hash": 0,
		"token_hash":    0,
	})
	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}
	return &user, nil
}

// GetByEmail returns the full user record by email, or nil when no such user
// exists.
func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}
	return &user, nil
}

// GetTokenHash returns the stored hash of the user's current auth token.
func (r *MongoUserRepo) GetTokenHash(ctx context.Context, id string) (string, error) {
	opts := options.FindOne().SetProjection(bson.M{"token_hash": 1})
	var result struct {
		TokenHash string `bson:"token_hash"`
	}
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&result); err != nil {
		if err == mongo.ErrNoDocuments {
			return "", errors.New("user not found")
		}
		return "", fmt.Errorf("failed to fetch token hash: %w", err)
	}
	return result.TokenHash, nil
}

// UpdateTokenHash stores the hash of the user's current auth token.
func (r *MongoUserRepo) UpdateTokenHash(ctx context.Context, id, tokenHash string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"token_hash": tokenHash, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update token hash: %w", err)
	}
	if res.MatchedCount == 0 {
		return errors.New("user not found")
	}
	return nil
}
