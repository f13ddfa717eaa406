package stylistRepo

import (
	"context"

	"trimmr/models"
)

// StylistRepository provides access to the stylists collection.
type StylistRepository interface {
	// ListBySalon returns a salon's active stylists ordered by top-rated flag
	// then rating, both descending. When serviceIDs is non-empty the result is
	// restricted to stylists whose availableServices intersects it.
	ListBySalon(ctx context.Context, salonID string, serviceIDs []string) ([]models.Stylist, error)
	// GetByID returns a stylist by ID, or nil when no such stylist exists.
	GetByID(ctx context.Context, id string) (*models.Stylist, error)
}
