package favouriteRepo

import (
	"context"

	"trimmr/models"
)

// FavouriteRepository provides access to the favourites collection.
type FavouriteRepository interface {
	// Create inserts a new favourite record and returns its ID.
	Create(ctx context.Context, fav models.Favourite) (string, error)
	// FindByUserAndSalon returns the favourite linking a user to a salon,
	// or nil when none exists.
	FindByUserAndSalon(ctx context.Context, userID, salonID string) (*models.Favourite, error)
	// ListByUser returns all of a user's favourites, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.Favourite, error)
	// DeleteByID removes a favourite record by ID.
	DeleteByID(ctx context.Context, id string) error
}
