// File: services/catalog/catalog.go
package catalog

import (
	"context"
	"fmt"
	"sort"

	salonRepo "trimmr/database/repository/salon"
	serviceRepo "trimmr/database/repository/service"
	"trimmr/models"
	"trimmr/utils"
)

const (
	defaultSalonLimit    = 10
	defaultCategoryLimit = 20
)

// CatalogService exposes the browsable catalog: service categories, salons and
// each salon's bookable services.
type CatalogService interface {
	// GetServices returns active service categories in display order.
	GetServices(ctx context.Context) ([]models.ServiceCategory, error)
	// GetSalons returns active salons ordered by rating descending.
	GetSalons(ctx context.Context, limit int) ([]models.Salon, error)
	// GetNearbySalons returns active salons within radiusKm of the given
	// point, nearest first, annotated with a display distance.
	GetNearbySalons(ctx context.Context, lat, lon, radiusKm float64, limit int) ([]models.SalonWithDistance, error)
	// GetSalonByID returns a salon, or nil when it does not exist.
	GetSalonByID(ctx context.Context, salonID string) (*models.Salon, error)
	// GetSalonServices returns a salon's active services ordered by category.
	GetSalonServices(ctx context.Context, salonID string) ([]models.SalonService, error)
	// GetServicesByIDs returns the salon services for a set of IDs.
	GetServicesByIDs(ctx context.Context, ids []string) ([]models.SalonService, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	SalonRepo   salonRepo.SalonRepository
	ServiceRepo serviceRepo.ServiceRepository
}

// GetServices returns active service categories in display order.
func (s *DefaultCatalogService) GetServices(ctx context.Context) ([]models.ServiceCategory, error) {
	categories, err := s.ServiceRepo.ListCategories(ctx, defaultCategoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}
	return categories, nil
}

// GetSalons returns active salons ordered by rating descending.
func (s *DefaultCatalogService) GetSalons(ctx context.Context, limit int) ([]models.Salon, error) {
	if limit <= 0 {
		limit = defaultSalonLimit
	}
	salons, err := s.SalonRepo.GetActive(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch salons: %w", err)
	}
	return salons, nil
}

// GetNearbySalons returns active salons within radiusKm of the given point,
// nearest first. The rating-ordered query is over-fetched and re-ranked by
// distance, since the document store has no geospatial filter on this
// collection.
func (s *DefaultCatalogService) GetNearbySalons(ctx context.Context, lat, lon, radiusKm float64, limit int) ([]models.SalonWithDistance, error) {
	if limit <= 0 {
		limit = defaultSalonLimit
	}
	salons, err := s.SalonRepo.GetActive(ctx, limit*2)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch nearby salons: %w", err)
	}

	nearby := make([]models.SalonWithDistance, 0, len(salons))
	for _, salon := range salons {
		km := utils.Haversine(lat, lon, salon.Latitude, salon.Longitude)
		if km > radiusKm {
			continue
		}
		nearby = append(nearby, models.SalonWithDistance{
			Salon:      salon,
			DistanceKm: km,
			Distance:   utils.FormatDistance(km),
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})
	if len(nearby) > limit {
		nearby = nearby[:limit]
	}
	return nearby, nil
}

// GetSalonByID returns a salon, or nil when it does not exist.
func (s *DefaultCatalogService) GetSalonByID(ctx context.Context, salonID string) (*models.Salon, error) {
	salon, err := s.SalonRepo.GetByID(ctx, salonID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch salon: %w", err)
	}
	return salon, nil
}

// GetSalonServices returns a salon's active services ordered by category.
func (s *DefaultCatalogService) GetSalonServices(ctx context.Context, salonID string) ([]models.SalonService, error) {
	services, err := s.ServiceRepo.ListBySalon(ctx, salonID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch salon services: %w", err)
	}
	return services, nil
}

// GetServicesByIDs returns the salon services for a set of IDs.
func (s *DefaultCatalogService) GetServicesByIDs(ctx context.Context, ids []string) ([]models.SalonService, error) {
	services, err := s.ServiceRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services by id: %w", err)
	}
	return services, nil
}
