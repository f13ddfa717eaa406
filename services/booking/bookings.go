// File: services/booking/bookings.go
package booking

import (
	"context"
	"fmt"

	"trimmr/models"
	"trimmr/utils"

	"go.uber.org/zap"
)

// ListBookings returns the user's bookings, newest first.
func (s *DefaultBookingService) ListBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	if userID == "" {
		return nil, NewValidationError("you must be signed in to view bookings")
	}
	bookings, err := s.BookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

// CancelBooking transitions a confirmed booking to cancelled. When the service
// is configured with CancelRemote the status change is written to the bookings
// collection; otherwise only the returned view reflects the cancellation,
// matching the behaviour of the original client.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	booking, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if booking == nil || booking.UserID != userID {
		return nil, NewValidationError("booking not found")
	}
	if booking.BookingStatus != models.BookingConfirmed {
		return nil, NewValidationError(fmt.Sprintf("cannot cancel a %s booking", booking.BookingStatus))
	}

	if s.CancelRemote {
		if err := s.BookingRepo.UpdateStatus(ctx, bookingID, models.BookingCancelled); err != nil {
			return nil, fmt.Errorf("failed to cancel booking: %w", err)
		}
	}
	booking.BookingStatus = models.BookingCancelled

	utils.GetLogger().Info("booking cancelled",
		zap.String("bookingID", bookingID),
		zap.String("userID", userID),
		zap.Bool("remote", s.CancelRemote))
	return booking, nil
}
