package models

// Stylist represents a staff member document in the stylists collection.
type Stylist struct {
	ID                string   `bson:"id" json:"id"`
	SalonID           string   `bson:"salon_id" json:"salonId"`
	Name              string   `bson:"name" json:"name"`
	Title             string   `bson:"title,omitempty" json:"title,omitempty"`
	Rating            float64  `bson:"rating" json:"rating"`
	ReviewCount       int      `bson:"review_count" json:"reviewCount"`
	TopRated          bool     `bson:"top_rated" json:"topRated"`
	ImageURL          string   `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	AvailableServices []string `bson:"available_services" json:"availableServices"` // salon_service IDs
	IsActive          bool     `bson:"is_active" json:"isActive"`
}

// StylistChoiceKind discriminates the possible stylist selections in a draft.
type StylistChoiceKind string

const (
	// StylistAny lets the salon assign any available stylist.
	StylistAny StylistChoiceKind = "any"
	// StylistMultiple assigns a different stylist per service at the salon's discretion.
	StylistMultiple StylistChoiceKind = "multiple"
	// StylistSpecific pins the booking to one named stylist.
	StylistSpecific StylistChoiceKind = "specific"
)

// StylistChoice is a tagged variant replacing the loose "any"/"multiple"/record
// union; Stylist is set only when Kind is StylistSpecific. The zero value means
// no choice has been made yet.
type StylistChoice struct {
	Kind    StylistChoiceKind `bson:"kind" json:"kind"`
	Stylist *Stylist          `bson:"stylist,omitempty" json:"stylist,omitempty"`
}

// Chosen reports whether a stylist choice has been made.
func (c StylistChoice) Chosen() bool {
	switch c.Kind {
	case StylistAny, StylistMultiple:
		return true
	case StylistSpecific:
		return c.Stylist != nil
	default:
		return false
	}
}
