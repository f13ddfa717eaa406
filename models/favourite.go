package models

import "time"

// Favourite is a user-specific bookmark referencing a salon, stored in the
// favourites collection with a denormalized salon snapshot.
type Favourite struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	SalonID   string    `bson:"salon_id" json:"salonId"`
	Salon     SalonRef  `bson:"salon" json:"salon"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// HydratedFavourite pairs a favourite record with the full salon document
// fetched at load time.
type HydratedFavourite struct {
	Favourite `bson:",inline"`
	SalonDoc  *Salon `bson:"-" json:"salonDoc,omitempty"`
}
