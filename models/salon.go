package models

// Salon represents a salon document in the salons collection.
type Salon struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Address     string   `bson:"address" json:"address"`
	City        string   `bson:"city" json:"city"`
	State       string   `bson:"state" json:"state"`
	Latitude    float64  `bson:"latitude" json:"latitude"`
	Longitude   float64  `bson:"longitude" json:"longitude"`
	Rating      float64  `bson:"rating" json:"rating"`
	ReviewCount int      `bson:"review_count" json:"reviewCount"`
	ImageURL    string   `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Phone       string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Services    []string `bson:"services" json:"services"` // service category IDs offered
	Images      []string `bson:"images,omitempty" json:"images,omitempty"`
	IsActive    bool     `bson:"is_active" json:"isActive"`
}

// SalonRef is the denormalized salon snapshot carried by drafts and favourites.
type SalonRef struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Address  string `bson:"address" json:"address"`
	City     string `bson:"city" json:"city"`
	ImageURL string `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
}

// Ref returns the denormalized snapshot of a salon.
func (s *Salon) Ref() SalonRef {
	return SalonRef{
		ID:       s.ID,
		Name:     s.Name,
		Address:  s.Address,
		City:     s.City,
		ImageURL: s.ImageURL,
	}
}

// SalonWithDistance annotates a salon with its distance from a search center.
type SalonWithDistance struct {
	Salon      `bson:",inline"`
	DistanceKm float64 `bson:"-" json:"distanceKm"`
	Distance   string  `bson:"-" json:"distance"` // human readable, e.g. "500 m", "2.3 km"
}
