package salonRepo

import (
	"context"

	"trimmr/models"
)

// SalonRepository provides access to the salons collection.
type SalonRepository interface {
	// GetActive returns active salons ordered by rating descending.
	GetActive(ctx context.Context, limit int) ([]models.Salon, error)
	// GetByCity returns active salons in a city ordered by rating descending.
	GetByCity(ctx context.Context, city string, limit int) ([]models.Salon, error)
	// GetByID returns a salon by its ID, or nil when no such salon exists.
	GetByID(ctx context.Context, id string) (*models.Salon, error)
}
