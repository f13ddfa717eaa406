// File: services/booking/draft.go
package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"trimmr/models"
	"trimmr/utils"

	"go.uber.org/zap"
)

// draftLocks serializes draft mutations per user so each read-modify-write of
// the stored snapshot is atomic.
type draftLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *draftLocks) forUser(userID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	lock, ok := l.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[userID] = lock
	}
	return lock
}

// StartDraft opens a new draft for the salon with an initial service selection.
// Any previous draft for the user is replaced.
func (s *DefaultBookingService) StartDraft(ctx context.Context, userID string, salon models.SalonRef, services []models.SalonService) (*models.BookingDraft, error) {
	if userID == "" {
		return nil, NewValidationError("a signed-in user is required to start a booking")
	}
	if salon.ID == "" {
		return nil, NewValidationError("a salon is required to start a booking")
	}
	if len(services) == 0 {
		return nil, NewValidationError("select at least one service to start a booking")
	}

	lock := s.locks.forUser(userID)
	lock.Lock()
	defer lock.Unlock()

	draft := models.NewBookingDraft(userID)
	draft.Salon = &salon
	for _, svc := range services {
		if !draft.HasService(svc.ID) {
			draft.SelectedServices = append(draft.SelectedServices, svc)
		}
	}
	draft.RecalculateTotals()

	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// GetDraft returns the user's in-progress draft, or nil when none exists.
func (s *DefaultBookingService) GetDraft(ctx context.Context, userID string) (*models.BookingDraft, error) {
	return s.Drafts.Get(ctx, userID)
}

// mutateDraft loads the user's draft, applies fn, recomputes the derived
// totals and stores the new snapshot. The totals are therefore never stale
// relative to the selection the mutation produced.
func (s *DefaultBookingService) mutateDraft(ctx context.Context, userID string, fn func(*models.BookingDraft) error) (*models.BookingDraft, error) {
	lock := s.locks.forUser(userID)
	lock.Lock()
	defer lock.Unlock()

	draft, err := s.Drafts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, NewValidationError("no booking in progress")
	}
	if err := fn(draft); err != nil {
		return nil, err
	}
	draft.RecalculateTotals()
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// AddService adds a service to the draft selection (no-op if already selected).
func (s *DefaultBookingService) AddService(ctx context.Context, userID string, svc models.SalonService) (*models.BookingDraft, error) {
	return s.mutateDraft(ctx, userID, func(d *models.BookingDraft) error {
		if !d.HasService(svc.ID) {
			d.SelectedServices = append(d.SelectedServices, svc)
		}
		return nil
	})
}

// RemoveService drops a service from the draft selection.
func (s *DefaultBookingService) RemoveService(ctx context.Context, userID, serviceID string) (*models.BookingDraft, error) {
	return s.mutateDraft(ctx, userID, func(d *models.BookingDraft) error {
		kept := d.SelectedServices[:0]
		for _, svc := range d.SelectedServices {
			if svc.ID != serviceID {
				kept = append(kept, svc)
			}
		}
		d.SelectedServices = kept
		return nil
	})
}

// SetServices replaces the draft's service selection, deduplicating by ID.
func (s *DefaultBookingService) SetServices(ctx context.Context, userID string, services []models.SalonService) (*models.BookingDraft, error) {
	return s.mutateDraft(ctx, userID, func(d *models.BookingDraft) error {
		d.SelectedServices = []models.SalonService{}
		for _, svc := range services {
			if !d.HasService(svc.ID) {
				d.SelectedServices = append(d.SelectedServices, svc)
			}
		}
		return nil
	})
}

// SelectStylist records the stylist choice for the draft.
func (s *DefaultBookingService) SelectStylist(ctx context.Context, userID string, choice models.StylistChoice) (*models.BookingDraft, error) {
	if !choice.Chosen() {
		return nil, NewValidationError("invalid stylist choice")
	}
	return s.mutateDraft(ctx, userID, func(d *models.BookingDraft) error {
		d.SelectedStylist = choice
		return nil
	})
}

// SetDateTime records the chosen date and time.
func (s *DefaultBookingService) SetDateTime(ctx context.Context, userID, date, timeOfDay string) (*models.BookingDraft, error) {
	if date == "" || timeOfDay == "" {
		return nil, NewValidationError("both a date and a time are required")
	}
	return s.mutateDraft(ctx, userID, func(d *models.BookingDraft) error {
		d.SelectedDate = date
		d.SelectedTime = timeOfDay
		return nil
	})
}

// Advance moves the draft to the given step. Forward moves are gated on the
// data of every step in between; backward moves are always allowed.
func (s *DefaultBookingService) Advance(ctx context.Context, userID string, to models.BookingStep) (*models.BookingDraft, error) {
	if to.Index() < 0 {
		return nil, NewValidationError(fmt.Sprintf("unknown booking step %q", to))
	}
	return s.mutateDraft(ctx, userID, func(d *models.BookingDraft) error {
		if to.Index() <= d.CurrentStep.Index() {
			d.CurrentStep = to
			return nil
		}
		// Walk forward one gate at a time so a step can never be skipped
		// without the prior step's data present.
		for step := d.CurrentStep; step != to; step = step.Next() {
			if err := gateFor(d, step.Next()); err != nil {
				return err
			}
		}
		d.CurrentStep = to
		return nil
	})
}

// gateFor checks the entry condition of a step.
func gateFor(d *models.BookingDraft, entering models.BookingStep) error {
	switch entering {
	case models.StepStylist:
		if d.Salon == nil || len(d.SelectedServices) == 0 {
			return NewValidationError("select at least one service before choosing a stylist")
		}
	case models.StepDateTime:
		if !d.SelectedStylist.Chosen() {
			return NewValidationError("choose a stylist before picking a time")
		}
	case models.StepConfirmation:
		if !d.DateTimeChosen() {
			return NewValidationError("pick both a date and a time before confirming")
		}
	}
	return nil
}

// CancelDraft discards the user's draft.
func (s *DefaultBookingService) CancelDraft(ctx context.Context, userID string) error {
	lock := s.locks.forUser(userID)
	lock.Lock()
	defer lock.Unlock()
	return s.Drafts.Delete(ctx, userID)
}

// Submit validates the draft and the signed-in user, creates the booking
// record, and resets the draft. Validation failures happen before any remote
// call; a failed remote create leaves the draft untouched so the user can
// retry.
func (s *DefaultBookingService) Submit(ctx context.Context, userID, paymentMethod string) (*models.Booking, error) {
	logger := utils.GetLogger()

	if userID == "" {
		return nil, NewValidationError("you must be signed in to book")
	}

	lock := s.locks.forUser(userID)
	lock.Lock()
	defer lock.Unlock()

	draft, err := s.Drafts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, NewValidationError("no booking in progress")
	}
	if draft.Salon == nil {
		return nil, NewValidationError("no salon selected")
	}
	if len(draft.SelectedServices) == 0 {
		return nil, NewValidationError("select at least one service")
	}
	if !draft.DateTimeChosen() {
		return nil, NewValidationError("pick both a date and a time")
	}
	if paymentMethod == "" {
		paymentMethod = models.PaymentAtSalon
	}
	if paymentMethod != models.PaymentAtSalon && paymentMethod != models.PaymentOnline {
		return nil, NewValidationError(fmt.Sprintf("unsupported payment method %q", paymentMethod))
	}

	user, err := s.UserRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}
	if user == nil {
		return nil, NewValidationError("you must be signed in to book")
	}

	record := models.Booking{
		UserID:        userID,
		SalonID:       draft.Salon.ID,
		SalonName:     draft.Salon.Name,
		StylistName:   stylistDisplayName(draft.SelectedStylist),
		Date:          draft.SelectedDate,
		Time:          draft.SelectedTime,
		TotalPrice:    draft.TotalPrice,
		TotalDuration: draft.TotalDuration,
		PaymentMethod: paymentMethod,
		PaymentStatus: models.PaymentPending,
		BookingStatus: models.BookingConfirmed,
		CreatedAt:     time.Now(),
	}
	if draft.SelectedStylist.Kind == models.StylistSpecific && draft.SelectedStylist.Stylist != nil {
		record.StylistID = draft.SelectedStylist.Stylist.ID
	}
	for _, svc := range draft.SelectedServices {
		record.ServiceIDs = append(record.ServiceIDs, svc.ID)
		record.ServiceNames = append(record.ServiceNames, svc.Name)
		record.ServicePrices = append(record.ServicePrices, svc.Price)
	}

	if paymentMethod == models.PaymentOnline {
		paymentID, err := s.Payments.ProcessOnline(ctx, userID, record.TotalPrice)
		if err != nil {
			return nil, fmt.Errorf("online payment failed: %w", err)
		}
		record.PaymentID = paymentID
		record.PaymentStatus = models.PaymentPaid
	}

	id, err := s.BookingRepo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	record.ID = id

	if err := s.Drafts.Delete(ctx, userID); err != nil {
		// The booking exists; a stale draft is an inconvenience, not a failure.
		logger.Warn("failed to clear draft after booking", zap.String("userID", userID), zap.Error(err))
	}

	logger.Info("booking confirmed",
		zap.String("bookingID", record.ID),
		zap.String("userID", userID),
		zap.String("salonID", record.SalonID))
	return &record, nil
}

func stylistDisplayName(choice models.StylistChoice) string {
	switch choice.Kind {
	case models.StylistSpecific:
		if choice.Stylist != nil {
			return choice.Stylist.Name
		}
		return "Any stylist"
	case models.StylistMultiple:
		return "Multiple stylists"
	default:
		return "Any stylist"
	}
}
