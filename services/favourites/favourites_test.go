package favourites

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"trimmr/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFavouriteRepo struct {
	records   map[string]models.Favourite
	createErr error
	deleteErr error
}

func newFakeFavouriteRepo() *fakeFavouriteRepo {
	return &fakeFavouriteRepo{records: make(map[string]models.Favourite)}
}

func (f *fakeFavouriteRepo) Create(ctx context.Context, fav models.Favourite) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	if fav.ID == "" {
		fav.ID = uuid.New().String()
	}
	f.records[fav.ID] = fav
	return fav.ID, nil
}

func (f *fakeFavouriteRepo) FindByUserAndSalon(ctx context.Context, userID, salonID string) (*models.Favourite, error) {
	for _, rec := range f.records {
		if rec.UserID == userID && rec.SalonID == salonID {
			r := rec
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeFavouriteRepo) ListByUser(ctx context.Context, userID string) ([]models.Favourite, error) {
	var out []models.Favourite
	for _, rec := range f.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeFavouriteRepo) DeleteByID(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.records, id)
	return nil
}

type fakeSalonRepo struct {
	salons map[string]models.Salon
}

func newFakeSalonRepo(salons ...models.Salon) *fakeSalonRepo {
	repo := &fakeSalonRepo{salons: make(map[string]models.Salon)}
	for _, s := range salons {
		repo.salons[s.ID] = s
	}
	return repo
}

func (f *fakeSalonRepo) GetActive(ctx context.Context, limit int) ([]models.Salon, error) {
	var out []models.Salon
	for _, s := range f.salons {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSalonRepo) GetByCity(ctx context.Context, city string, limit int) ([]models.Salon, error) {
	var out []models.Salon
	for _, s := range f.salons {
		if s.IsActive && s.City == city {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSalonRepo) GetByID(ctx context.Context, id string) (*models.Salon, error) {
	s, ok := f.salons[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

var testSalonDoc = models.Salon{ID: "salon-1", Name: "Shear Genius", City: "Lakewood", IsActive: true}

func newTestFavourites(salons ...models.Salon) (*DefaultFavouritesService, *fakeFavouriteRepo) {
	repo := newFakeFavouriteRepo()
	return NewDefaultFavouritesService(repo, newFakeSalonRepo(salons...)), repo
}

func TestToggleAddsAndRemoves(t *testing.T) {
	svc, repo := newTestFavourites(testSalonDoc)
	ctx := context.Background()

	isFav, err := svc.Toggle(ctx, "user-1", "salon-1", testSalonDoc.Ref())
	require.NoError(t, err)
	assert.True(t, isFav)
	assert.True(t, svc.IsFavourite("user-1", "salon-1"))
	assert.Len(t, repo.records, 1)

	isFav, err = svc.Toggle(ctx, "user-1", "salon-1", testSalonDoc.Ref())
	require.NoError(t, err)
	assert.False(t, isFav)
	assert.False(t, svc.IsFavourite("user-1", "salon-1"))
	assert.Empty(t, repo.records)
}

func TestToggleValidation(t *testing.T) {
	svc, _ := newTestFavourites(testSalonDoc)
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "", "salon-1", testSalonDoc.Ref())
	assert.Error(t, err)

	_, err = svc.Toggle(ctx, "user-1", "", models.SalonRef{})
	assert.Error(t, err)
}

func TestAddRollsBackOnRemoteFailure(t *testing.T) {
	svc, repo := newTestFavourites(testSalonDoc)
	repo.createErr = errors.New("write timeout")
	ctx := context.Background()

	isFav, err := svc.Toggle(ctx, "user-1", "salon-1", testSalonDoc.Ref())
	require.Error(t, err)
	assert.False(t, isFav)

	// The optimistic insert was rolled back.
	assert.False(t, svc.IsFavourite("user-1", "salon-1"))
	assert.Empty(t, svc.List("user-1"))
}

func TestRemoveRollsBackOnRemoteFailure(t *testing.T) {
	svc, repo := newTestFavourites(testSalonDoc)
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "user-1", "salon-1", testSalonDoc.Ref())
	require.NoError(t, err)

	repo.deleteErr = errors.New("write timeout")
	isFav, err := svc.Toggle(ctx, "user-1", "salon-1", testSalonDoc.Ref())
	require.Error(t, err)
	assert.True(t, isFav)

	// The optimistic delete was rolled back.
	assert.True(t, svc.IsFavourite("user-1", "salon-1"))
	assert.Len(t, svc.List("user-1"), 1)
}

func TestLoadDropsFavouritesWithMissingSalon(t *testing.T) {
	salonA := models.Salon{ID: "salon-a", Name: "A", IsActive: true}
	salonB := models.Salon{ID: "salon-b", Name: "B", IsActive: true}
	svc, repo := newTestFavourites(salonA, salonB)
	ctx := context.Background()

	now := time.Now()
	for i, salonID := range []string{"salon-a", "salon-b", "salon-gone"} {
		_, err := repo.Create(ctx, models.Favourite{
			ID:        salonID + "-fav",
			UserID:    "user-1",
			SalonID:   salonID,
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	hydrated, err := svc.Load(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, hydrated, 2)
	for _, h := range hydrated {
		require.NotNil(t, h.SalonDoc)
		assert.NotEqual(t, "salon-gone", h.SalonID)
	}

	// The snapshot tracks only the survivors.
	assert.True(t, svc.IsFavourite("user-1", "salon-a"))
	assert.False(t, svc.IsFavourite("user-1", "salon-gone"))
}

func TestSequentialDoubleToggleConverges(t *testing.T) {
	svc, repo := newTestFavourites(testSalonDoc)
	ctx := context.Background()

	// Two rapid taps end up back where they started.
	for i := 0; i < 2; i++ {
		_, err := svc.Toggle(ctx, "user-1", "salon-1", testSalonDoc.Ref())
		require.NoError(t, err)
	}
	assert.False(t, svc.IsFavourite("user-1", "salon-1"))
	assert.Empty(t, repo.records)
}

func TestClearDropsSnapshotOnly(t *testing.T) {
	svc, repo := newTestFavourites(testSalonDoc)
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "user-1", "salon-1", testSalonDoc.Ref())
	require.NoError(t, err)

	svc.Clear("user-1")
	assert.False(t, svc.IsFavourite("user-1", "salon-1"))
	// The stored record is untouched; the next Load restores it.
	assert.Len(t, repo.records, 1)

	hydrated, err := svc.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, hydrated, 1)
	assert.True(t, svc.IsFavourite("user-1", "salon-1"))
}
