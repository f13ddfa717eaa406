package bookingRepo

import (
	"context"

	"trimmr/models"
)

// BookingRepository provides access to the bookings collection.
type BookingRepository interface {
	// Create inserts a new booking record and returns its ID.
	Create(ctx context.Context, booking models.Booking) (string, error)
	// GetByID returns a booking by its ID, or nil when no such booking exists.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetByUserID returns a user's bookings, newest first.
	GetByUserID(ctx context.Context, userID string) ([]models.Booking, error)
	// UpdateStatus sets the booking status of an existing record.
	UpdateStatus(ctx context.Context, id, status string) error
}
