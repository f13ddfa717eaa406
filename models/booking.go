package models

import "time"

// Booking status values. Cancel transitions confirmed -> cancelled.
const (
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Payment methods and statuses recorded on a booking.
const (
	PaymentOnline  = "online"
	PaymentAtSalon = "salon"

	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

// Booking represents a confirmed booking record in the bookings collection.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"user_id" json:"userId"`
	SalonID       string    `bson:"salon_id" json:"salonId"`
	SalonName     string    `bson:"salon_name" json:"salonName"`
	StylistID     string    `bson:"stylist_id,omitempty" json:"stylistId,omitempty"` // empty for "any"/"multiple"
	StylistName   string    `bson:"stylist_name" json:"stylistName"`
	ServiceIDs    []string  `bson:"service_ids" json:"serviceIds"`
	ServiceNames  []string  `bson:"service_names" json:"serviceNames"`
	ServicePrices []float64 `bson:"service_prices" json:"servicePrices"`
	Date          string    `bson:"date" json:"date"`
	Time          string    `bson:"time" json:"time"`
	TotalPrice    float64   `bson:"total_price" json:"totalPrice"`
	TotalDuration int       `bson:"total_duration" json:"totalDuration"` // minutes
	PaymentMethod string    `bson:"payment_method" json:"paymentMethod"`
	PaymentStatus string    `bson:"payment_status" json:"paymentStatus"`
	PaymentID     string    `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	BookingStatus string    `bson:"booking_status" json:"bookingStatus"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}
