package models

// UserLocation is the user's persisted location preference, reloaded verbatim
// at startup and used to rank nearby salons.
type UserLocation struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Country     string  `json:"country"`
	DisplayName string  `json:"displayName"` // e.g. "Lakewood, California"
}
