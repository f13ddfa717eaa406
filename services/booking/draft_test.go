package booking

import (
	"context"
	"errors"
	"testing"

	"trimmr/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStylistRepo struct {
	stylists []models.Stylist
	err      error
}

func (f *fakeStylistRepo) ListBySalon(ctx context.Context, salonID string, serviceIDs []string) ([]models.Stylist, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Stylist
	for _, st := range f.stylists {
		if st.SalonID != salonID || !st.IsActive {
			continue
		}
		if len(serviceIDs) > 0 && !intersects(st.AvailableServices, serviceIDs) {
			continue
		}
		out = append(out, st)
	}
	return out, nil
}

func (f *fakeStylistRepo) GetByID(ctx context.Context, id string) (*models.Stylist, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, st := range f.stylists {
		if st.ID == id {
			s := st
			return &s, nil
		}
	}
	return nil, nil
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

type fakeBookingRepo struct {
	bookings  map[string]*models.Booking
	createErr error
	updateErr error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	booking.ID = uuid.New().String()
	f.bookings[booking.ID] = &booking
	return booking.ID, nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetByUserID(ctx context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	b, ok := f.bookings[id]
	if !ok {
		return errors.New("booking not found")
	}
	b.BookingStatus = status
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(ids ...string) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, id := range ids {
		repo.users[id] = &models.User{ID: id, Email: id + "@example.com"}
	}
	return repo
}

func (f *fakeUserRepo) Create(ctx context.Context, user models.User) (string, error) {
	f.users[user.ID] = &user
	return user.ID, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateTokenHash(ctx context.Context, id, tokenHash string) error {
	return nil
}

func (f *fakeUserRepo) GetTokenHash(ctx context.Context, id string) (string, error) {
	return "", nil
}

type fakePayments struct {
	paymentID string
	err       error
	charged   float64
}

func (f *fakePayments) ProcessOnline(ctx context.Context, userID string, amount float64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.charged = amount
	return f.paymentID, nil
}

func newTestService(t *testing.T) (*DefaultBookingService, *fakeBookingRepo) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	bookings := newFakeBookingRepo()
	svc := &DefaultBookingService{
		Drafts:       NewDraftStore(client, 0),
		StylistRepo:  &fakeStylistRepo{},
		BookingRepo:  bookings,
		UserRepo:     newFakeUserRepo("user-1"),
		Payments:     &fakePayments{paymentID: "pi_test"},
		CancelRemote: true,
	}
	return svc, bookings
}

var (
	testSalon = models.SalonRef{ID: "salon-1", Name: "Shear Genius", Address: "12 Main St", City: "Lakewood"}

	haircut = models.SalonService{ID: "svc-1", SalonID: "salon-1", Name: "Haircut", Price: 10.00, Duration: 30, IsActive: true}
	colour  = models.SalonService{ID: "svc-2", SalonID: "salon-1", Name: "Coloring", Price: 15.00, Duration: 45, IsActive: true}
)

func TestStartDraftValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.StartDraft(ctx, "", testSalon, []models.SalonService{haircut})
	assert.True(t, IsValidationError(err))

	_, err = svc.StartDraft(ctx, "user-1", models.SalonRef{}, []models.SalonService{haircut})
	assert.True(t, IsValidationError(err))

	_, err = svc.StartDraft(ctx, "user-1", testSalon, nil)
	assert.True(t, IsValidationError(err))
}

func TestDraftTotalsFollowSelection(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	draft, err := svc.StartDraft(ctx, "user-1", testSalon, []models.SalonService{haircut, colour})
	require.NoError(t, err)
	assert.InDelta(t, 25.00, draft.TotalPrice, 0.001)
	assert.Equal(t, 75, draft.TotalDuration)
	assert.Equal(t, models.StepServices, draft.CurrentStep)

	// Adding an already-selected service is a no-op.
	draft, err = svc.AddService(ctx, "user-1", haircut)
	require.NoError(t, err)
	assert.Len(t, draft.SelectedServices, 2)
	assert.InDelta(t, 25.00, draft.TotalPrice, 0.001)

	draft, err = svc.RemoveService(ctx, "user-1", colour.ID)
	require.NoError(t, err)
	assert.Len(t, draft.SelectedServices, 1)
	assert.InDelta(t, 10.00, draft.TotalPrice, 0.001)
	assert.Equal(t, 30, draft.TotalDuration)

	draft, err = svc.SetServices(ctx, "user-1", []models.SalonService{colour})
	require.NoError(t, err)
	assert.InDelta(t, 15.00, draft.TotalPrice, 0.001)
	assert.Equal(t, 45, draft.TotalDuration)
}

func TestDraftSurvivesReload(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.StartDraft(ctx, "user-1", testSalon, []models.SalonService{haircut})
	require.NoError(t, err)

	// A fresh read hits the store, simulating an app restart.
	draft, err := svc.GetDraft(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, draft)
	assert.Equal(t, "salon-1", draft.Salon.ID)
	assert.InDelta(t, 10.00, draft.TotalPrice, 0.001)
}

func TestAdvanceGating(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.StartDraft(ctx, "user-1", testSalon, []models.SalonService{haircut})
	require.NoError(t, err)

	// Can't reach datetime without a stylist choice, even via a multi-step jump.
	_, err = svc.Advance(ctx, "user-1", models.StepDateTime)
	assert.True(t, IsValidationError(err))

	draft, err := svc.Advance(ctx, "user-1", models.StepStylist)
	require.NoError(t, err)
	assert.Equal(t, models.StepStylist, draft.CurrentStep)

	_, err = svc.SelectStylist(ctx, "user-1", models.StylistChoice{Kind: models.StylistAny})
	require.NoError(t, err)

	draft, err = svc.Advance(ctx, "user-1", models.StepDateTime)
	require.NoError(t, err)
	assert.Equal(t, models.StepDateTime, draft.CurrentStep)

	_, err = svc.Advance(ctx, "user-1", models.StepConfirmation)
	assert.True(t, IsValidationError(err))

	_, err = svc.SetDateTime(ctx, "user-1", "Oct 28", "9:30 AM")
	require.NoError(t, err)

	draft, err = svc.Advance(ctx, "user-1", models.StepConfirmation)
	require.NoError(t, err)
	assert.Equal(t, models.StepConfirmation, draft.CurrentStep)

	// Backward moves are never gated.
	draft, err = svc.Advance(ctx, "user-1", models.StepServices)
	require.NoError(t, err)
	assert.Equal(t, models.StepServices, draft.CurrentStep)
}

func TestSelectStylistChoices(t *testing.T) {
	svc, _ := newTestService(t)
	svc.StylistRepo = &fakeStylistRepo{stylists: []models.Stylist{
		{ID: "sty-1", SalonID: "salon-1", Name: "Alex", IsActive: true},
	}}
	ctx := context.Background()

	_, err := svc.StartDraft(ctx, "user-1", testSalon, []models.SalonService{haircut})
	require.NoError(t, err)

	_, err = svc.SelectStylist(ctx, "user-1", models.StylistChoice{})
	assert.True(t, IsValidationError(err))

	_, err = svc.SelectStylist(ctx, "user-1", models.StylistChoice{Kind: models.StylistSpecific})
	assert.True(t, IsValidationError(err))

	draft, err := svc.SelectStylistByID(ctx, "user-1", models.StylistSpecific, "sty-1")
	require.NoError(t, err)
	require.NotNil(t, draft.SelectedStylist.Stylist)
	assert.Equal(t, "Alex", draft.SelectedStylist.Stylist.Name)

	_, err = svc.SelectStylistByID(ctx, "user-1", models.StylistSpecific, "sty-missing")
	assert.True(t, IsValidationError(err))

	draft, err = svc.SelectStylistByID(ctx, "user-1", models.StylistMultiple, "")
	require.NoError(t, err)
	assert.Equal(t, models.StylistMultiple, draft.SelectedStylist.Kind)
	assert.Nil(t, draft.SelectedStylist.Stylist)
}

func TestSubmitFullFlow(t *testing.T) {
	svc, bookings := newTestService(t)
	ctx := context.Background()

	_, err := svc.StartDraft(ctx, "user-1", testSalon, []models.SalonService{haircut, colour})
	require.NoError(t, err)
	_, err = svc.SelectStylist(ctx, "user-1", models.StylistChoice{Kind: models.StylistAny})
	require.NoError(t, err)
	_, err = svc.SetDateTime(ctx, "user-1", "Oct 28", "9:30 AM")
	require.NoError(t, err)

	record, err := svc.Submit(ctx, "user-1", "")
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, record.BookingStatus)
	assert.Equal(t, models.PaymentAtSalon, record.PaymentMethod)
	assert.Equal(t, models.PaymentPending, record.PaymentStatus)
	assert.Equal(t, "Any stylist", record.StylistName)
	assert.InDelta(t, 25.00, record.TotalPrice, 0.001)
	assert.Equal(t, 75, record.TotalDuration)
	assert.ElementsMatch(t, []string{"svc-1", "svc-2"}, record.ServiceIDs)
	assert.Len(t, bookings.bookings, 1)

	// The draft is reset on submission.
	draft, err := svc.GetDraft(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, draft)
}

func TestSubmitOnlinePayment(t *testing.T) {
	svc, _ := newTestService(t)
	payments := &fakePayments{paymentID: "pi_abc"}
	svc.Payments = payments
	ctx := context.Background()

	_, err := svc.StartDraft(ctx, "user-1", testSalon, []models.SalonService{haircut})
	require.NoError(t, err)
	_, err = svc.SelectStylist(ctx, "user-1", models.StylistChoice{Kind: models.StylistAny})
	require.NoError(t, err)
	_, err = svc.SetDateTime(ctx, "user-1", "Oct 28", "9:30 AM")
	require.NoError(t, err)

	record, err := svc.Submit(ctx, "user-1", models.PaymentOnline)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, record.PaymentStatus)
	assert.Equal(t, "pi_abc", record.PaymentID)
	assert.InDelta(t, 10.00, payments.charged, 0.001)
}

func TestSubmitValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// No draft at all.
	_, err := svc.Submit(ctx, "user-1", "")
	assert.True(t, IsValidationError(err))

	_, err = svc.StartDraft(ctx, "user-1", testSalon, []models.SalonService{haircut})
	require.NoError(t, err)

	// Date and time not chosen yet.
	_, err = svc.Submit(ctx, "user-1", "")
	assert.True(t, IsValidationError(err))

	_, err = svc.SetDateTime(ctx, "user-1", "Oct 28", "9:30 AM")
	require.NoError(t, err)

	_, err = svc.Submit(ctx, "user-1", "bitcoin")
	assert.True(t, IsValidationError(err))

	// An unknown user cannot submit, even with a complete draft.
	_, err = svc.StartDraft(ctx, "ghost", testSalon, []models.SalonService{haircut})
	require.NoError(t, err)
	_, err = svc.SetDateTime(ctx, "ghost", "Oct 28", "9:30 AM")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, "ghost", "")
	assert.True(t, IsValidationError(err))
}

func TestSubmitRemoteFailureKeepsDraft(t *testing.T) {
	svc, bookings := newTestService(t)
	bookings.createErr = errors.New("write timeout")
	ctx := context.Background()

	_, err := svc.StartDraft(ctx, "user-1", testSalon, []models.SalonService{haircut})
	require.NoError(t, err)
	_, err = svc.SetDateTime(ctx, "user-1", "Oct 28", "9:30 AM")
	require.NoError(t, err)

	_, err = svc.Submit(ctx, "user-1", "")
	require.Error(t, err)
	assert.False(t, IsValidationError(err))

	// The draft survives so the user can retry.
	draft, err := svc.GetDraft(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, draft)
	assert.Equal(t, "Oct 28", draft.SelectedDate)
}

func TestCancelDraft(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.StartDraft(ctx, "user-1", testSalon, []models.SalonService{haircut})
	require.NoError(t, err)

	require.NoError(t, svc.CancelDraft(ctx, "user-1"))

	draft, err := svc.GetDraft(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, draft)
}
