package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStepOrder(t *testing.T) {
	assert.Equal(t, 0, StepServices.Index())
	assert.Equal(t, 3, StepConfirmation.Index())
	assert.Equal(t, -1, BookingStep("checkout").Index())

	assert.Equal(t, StepStylist, StepServices.Next())
	assert.Equal(t, StepConfirmation, StepConfirmation.Next())
}

func TestRecalculateTotals(t *testing.T) {
	d := NewBookingDraft("user-1")
	assert.Equal(t, StepServices, d.CurrentStep)
	assert.Zero(t, d.TotalPrice)

	d.SelectedServices = []SalonService{
		{ID: "svc-1", Price: 10.00, Duration: 30},
		{ID: "svc-2", Price: 15.00, Duration: 45},
	}
	d.RecalculateTotals()
	assert.InDelta(t, 25.00, d.TotalPrice, 0.001)
	assert.Equal(t, 75, d.TotalDuration)

	d.SelectedServices = nil
	d.RecalculateTotals()
	assert.Zero(t, d.TotalPrice)
	assert.Zero(t, d.TotalDuration)
}

func TestStylistChoiceChosen(t *testing.T) {
	assert.False(t, StylistChoice{}.Chosen())
	assert.True(t, StylistChoice{Kind: StylistAny}.Chosen())
	assert.True(t, StylistChoice{Kind: StylistMultiple}.Chosen())
	assert.False(t, StylistChoice{Kind: StylistSpecific}.Chosen())
	assert.True(t, StylistChoice{Kind: StylistSpecific, Stylist: &Stylist{ID: "sty-1"}}.Chosen())
}
