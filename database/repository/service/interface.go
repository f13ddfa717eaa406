package serviceRepo

import (
	"context"

	"trimmr/models"
)

// ServiceRepository provides access to the services and salon_services collections.
type ServiceRepository interface {
	// ListCategories returns active service categories ordered by their display order.
	ListCategories(ctx context.Context, limit int) ([]models.ServiceCategory, error)
	// ListBySalon returns a salon's active services ordered by category.
	ListBySalon(ctx context.Context, salonID string) ([]models.SalonService, error)
	// GetByIDs returns the salon services matching the given IDs.
	GetByIDs(ctx context.Context, ids []string) ([]models.SalonService, error)
}
