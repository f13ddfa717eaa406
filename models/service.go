package models

// ServiceCategory is a global service entry shown on the home screen
// (e.g. "Haircut", "Coloring"), stored in the services collection.
type ServiceCategory struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Icon     string `bson:"icon" json:"icon"`
	IsActive bool   `bson:"is_active" json:"isActive"`
	Order    int    `bson:"order" json:"order"`
}

// SalonService is a bookable offering from a salon's catalog,
// stored in the salon_services collection.
type SalonService struct {
	ID          string  `bson:"id" json:"id"`
	SalonID     string  `bson:"salon_id" json:"salonId"`
	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"`
	Duration    int     `bson:"duration" json:"duration"` // minutes
	Category    string  `bson:"category" json:"category"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	IsActive    bool    `bson:"is_active" json:"isActive"`
}
