package booking

import (
	"context"

	bookingRepo "trimmr/database/repository/booking"
	stylistRepo "trimmr/database/repository/stylist"
	userRepo "trimmr/database/repository/user"
	"trimmr/models"
)

// BookingService coordinates the multi-step booking wizard, stylist lookup and
// the user's confirmed bookings.
type BookingService interface {
	// StartDraft opens a new draft for the salon with an initial service selection.
	StartDraft(ctx context.Context, userID string, salon models.SalonRef, services []models.SalonService) (*models.BookingDraft, error)
	// GetDraft returns the user's in-progress draft, or nil when none exists.
	GetDraft(ctx context.Context, userID string) (*models.BookingDraft, error)
	// AddService adds a service to the draft selection (no-op if already selected).
	AddService(ctx context.Context, userID string, svc models.SalonService) (*models.BookingDraft, error)
	// RemoveService drops a service from the draft selection.
	RemoveService(ctx context.Context, userID, serviceID string) (*models.BookingDraft, error)
	// SetServices replaces the draft's service selection.
	SetServices(ctx context.Context, userID string, services []models.SalonService) (*models.BookingDraft, error)
	// SelectStylist records the stylist choice for the draft.
	SelectStylist(ctx context.Context, userID string, choice models.StylistChoice) (*models.BookingDraft, error)
	// SelectStylistByID resolves a stylist choice from its wire form: for a
	// specific choice the stylist record is fetched by ID.
	SelectStylistByID(ctx context.Context, userID string, kind models.StylistChoiceKind, stylistID string) (*models.BookingDraft, error)
	// SetDateTime records the chosen date and time.
	SetDateTime(ctx context.Context, userID, date, timeOfDay string) (*models.BookingDraft, error)
	// Advance moves the draft to the given step. Forward moves are gated on the
	// data of every step in between; backward moves are always allowed.
	Advance(ctx context.Context, userID string, to models.BookingStep) (*models.BookingDraft, error)
	// CancelDraft discards the user's draft.
	CancelDraft(ctx context.Context, userID string) error
	// Submit validates the draft, creates the booking record and resets the draft.
	Submit(ctx context.Context, userID, paymentMethod string) (*models.Booking, error)

	// LoadStylists returns candidate stylists for the salon, filtered by the
	// selected services with a fallback to the full active roster.
	LoadStylists(ctx context.Context, salonID string, serviceIDs []string) ([]models.Stylist, error)

	// ListBookings returns the user's bookings, newest first.
	ListBookings(ctx context.Context, userID string) ([]models.Booking, error)
	// CancelBooking transitions a confirmed booking to cancelled.
	CancelBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Drafts      *DraftStore
	StylistRepo stylistRepo.StylistRepository
	BookingRepo bookingRepo.BookingRepository
	UserRepo    userRepo.UserRepository
	Payments    PaymentHandler

	// CancelRemote controls whether CancelBooking propagates the status change
	// to the bookings collection or only reports the cancelled view. The
	// original mobile client never propagated; the default configuration does.
	CancelRemote bool

	locks draftLocks
}
