// File: services/booking/stylists.go
package booking

import (
	"context"
	"fmt"

	"trimmr/models"
	"trimmr/utils"

	"go.uber.org/zap"
)

// SelectStylistByID resolves a stylist choice from its wire form. For
// StylistSpecific the stylist record is fetched by ID; for the other kinds
// stylistID is ignored.
func (s *DefaultBookingService) SelectStylistByID(ctx context.Context, userID string, kind models.StylistChoiceKind, stylistID string) (*models.BookingDraft, error) {
	choice := models.StylistChoice{Kind: kind}
	if kind == models.StylistSpecific {
		if stylistID == "" {
			return nil, NewValidationError("a stylist id is required for a specific choice")
		}
		stylist, err := s.StylistRepo.GetByID(ctx, stylistID)
		if err != nil {
			return nil, fmt.Errorf("failed to load stylist: %w", err)
		}
		if stylist == nil {
			return nil, NewValidationError("stylist not found")
		}
		choice.Stylist = stylist
	}
	return s.SelectStylist(ctx, userID, choice)
}

// LoadStylists returns candidate stylists for a salon: active only, ordered by
// (top-rated desc, rating desc), restricted to stylists offering at least one
// of the requested services. When that restriction filters everyone out, the
// salon's full active roster is returned instead, so an empty result only
// means the salon has no active stylists at all.
func (s *DefaultBookingService) LoadStylists(ctx context.Context, salonID string, serviceIDs []string) ([]models.Stylist, error) {
	if salonID == "" {
		return nil, NewValidationError("a salon is required")
	}

	stylists, err := s.StylistRepo.ListBySalon(ctx, salonID, serviceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load stylists: %w", err)
	}

	if len(stylists) == 0 && len(serviceIDs) > 0 {
		utils.GetLogger().Debug("no stylists match selected services, falling back to full roster",
			zap.String("salonID", salonID),
			zap.Int("serviceCount", len(serviceIDs)))
		stylists, err = s.StylistRepo.ListBySalon(ctx, salonID, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to load stylist roster: %w", err)
		}
	}

	if stylists == nil {
		stylists = []models.Stylist{}
	}
	return stylists, nil
}
