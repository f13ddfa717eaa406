package models

// BookingStep is a stage of the booking wizard. Steps advance linearly:
// services -> stylist -> datetime -> confirmation.
type BookingStep string

const (
	StepServices     BookingStep = "services"
	StepStylist      BookingStep = "stylist"
	StepDateTime     BookingStep = "datetime"
	StepConfirmation BookingStep = "confirmation"
)

// order maps each step to its position in the wizard.
var stepOrder = map[BookingStep]int{
	StepServices:     0,
	StepStylist:      1,
	StepDateTime:     2,
	StepConfirmation: 3,
}

// Index returns the step's position, or -1 for an unknown step.
func (s BookingStep) Index() int {
	if i, ok := stepOrder[s]; ok {
		return i
	}
	return -1
}

// Next returns the step that follows s, or s itself at the end of the wizard.
func (s BookingStep) Next() BookingStep {
	switch s {
	case StepServices:
		return StepStylist
	case StepStylist:
		return StepDateTime
	case StepDateTime:
		return StepConfirmation
	default:
		return s
	}
}

// BookingDraft is the in-progress booking for one user. It is persisted so an
// interrupted booking can resume after an app restart, and cleared on
// submission or explicit cancellation.
type BookingDraft struct {
	UserID           string         `json:"userId"`
	Salon            *SalonRef      `json:"salon,omitempty"`
	SelectedServices []SalonService `json:"selectedServices"`
	SelectedStylist  StylistChoice  `json:"selectedStylist"`
	SelectedDate     string         `json:"selectedDate,omitempty"`
	SelectedTime     string         `json:"selectedTime,omitempty"`
	TotalPrice       float64        `json:"totalPrice"`
	TotalDuration    int            `json:"totalDuration"` // minutes
	CurrentStep      BookingStep    `json:"currentStep"`
}

// NewBookingDraft returns an empty draft at the first step.
func NewBookingDraft(userID string) *BookingDraft {
	return &BookingDraft{
		UserID:           userID,
		SelectedServices: []SalonService{},
		CurrentStep:      StepServices,
	}
}

// RecalculateTotals recomputes the derived totals from the current service
// selection. It must be called by every mutation that changes the selection so
// the totals are never stale.
func (d *BookingDraft) RecalculateTotals() {
	var price float64
	var duration int
	for _, svc := range d.SelectedServices {
		price += svc.Price
		duration += svc.Duration
	}
	d.TotalPrice = price
	d.TotalDuration = duration
}

// HasService reports whether the service is already in the selection.
func (d *BookingDraft) HasService(serviceID string) bool {
	for _, svc := range d.SelectedServices {
		if svc.ID == serviceID {
			return true
		}
	}
	return false
}

// DateTimeChosen reports whether both a date and a time have been picked,
// which gates the datetime -> confirmation transition.
func (d *BookingDraft) DateTimeChosen() bool {
	return d.SelectedDate != "" && d.SelectedTime != ""
}
