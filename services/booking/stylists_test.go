package booking

import (
	"context"
	"testing"

	"trimmr/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStylistsFiltering(t *testing.T) {
	svc, _ := newTestService(t)
	svc.StylistRepo = &fakeStylistRepo{stylists: []models.Stylist{
		{ID: "sty-1", SalonID: "salon-1", Name: "Alex", IsActive: true, AvailableServices: []string{"svc-1"}},
		{ID: "sty-2", SalonID: "salon-1", Name: "Sam", IsActive: true, AvailableServices: []string{"svc-2"}},
		{ID: "sty-3", SalonID: "salon-1", Name: "Kai", IsActive: false, AvailableServices: []string{"svc-1"}},
	}}
	ctx := context.Background()

	stylists, err := svc.LoadStylists(ctx, "salon-1", []string{"svc-1"})
	require.NoError(t, err)
	require.Len(t, stylists, 1)
	assert.Equal(t, "Alex", stylists[0].Name)
}

func TestLoadStylistsFallsBackToFullRoster(t *testing.T) {
	svc, _ := newTestService(t)
	svc.StylistRepo = &fakeStylistRepo{stylists: []models.Stylist{
		{ID: "sty-1", SalonID: "salon-1", Name: "Alex", IsActive: true, AvailableServices: []string{"svc-9"}},
		{ID: "sty-2", SalonID: "salon-1", Name: "Sam", IsActive: true, AvailableServices: []string{"svc-9"}},
	}}
	ctx := context.Background()

	// Nobody offers svc-1, so the full active roster comes back instead.
	stylists, err := svc.LoadStylists(ctx, "salon-1", []string{"svc-1"})
	require.NoError(t, err)
	assert.Len(t, stylists, 2)
}

func TestLoadStylistsEmptySalon(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.LoadStylists(ctx, "", nil)
	assert.True(t, IsValidationError(err))

	// A salon with no stylists yields an empty slice, never nil.
	stylists, err := svc.LoadStylists(ctx, "salon-1", nil)
	require.NoError(t, err)
	assert.NotNil(t, stylists)
	assert.Empty(t, stylists)
}
