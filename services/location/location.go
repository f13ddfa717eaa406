// File: services/location/location.go
package location

import (
	"context"
	"encoding/json"
	"fmt"

	"trimmr/models"

	"github.com/go-redis/redis/v8"
)

const locationKeyPrefix = "location:"

// DefaultLocation is used when a user has not shared a location yet.
var DefaultLocation = models.UserLocation{
	Latitude:    33.8536,
	Longitude:   -118.1339,
	City:        "Lakewood",
	State:       "California",
	Country:     "USA",
	DisplayName: "Lakewood, California",
}

// LocationService stores each user's location preference as an opaque
// serialized snapshot, reloaded verbatim across sessions.
type LocationService interface {
	// Get returns the user's stored location, falling back to DefaultLocation.
	Get(ctx context.Context, userID string) (models.UserLocation, error)
	// Set replaces the user's stored location.
	Set(ctx context.Context, userID string, loc models.UserLocation) error
}

// RedisLocationService is the production implementation.
type RedisLocationService struct {
	client *redis.Client
}

// NewRedisLocationService returns a LocationService backed by Redis.
func NewRedisLocationService(client *redis.Client) *RedisLocationService {
	return &RedisLocationService{client: client}
}

// Get returns the user's stored location, falling back to DefaultLocation
// when none has been saved.
func (s *RedisLocationService) Get(ctx context.Context, userID string) (models.UserLocation, error) {
	data, err := s.client.Get(ctx, locationKeyPrefix+userID).Result()
	if err == redis.Nil {
		return DefaultLocation, nil
	}
	if err != nil {
		return DefaultLocation, fmt.Errorf("failed to load location preference: %w", err)
	}
	var loc models.UserLocation
	if err := json.Unmarshal([]byte(data), &loc); err != nil {
		return DefaultLocation, fmt.Errorf("failed to parse location preference: %w", err)
	}
	return loc, nil
}

// Set replaces the user's stored location.
func (s *RedisLocationService) Set(ctx context.Context, userID string, loc models.UserLocation) error {
	data, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("failed to marshal location preference: %w", err)
	}
	if err := s.client.Set(ctx, locationKeyPrefix+userID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store location preference: %w", err)
	}
	return nil
}
