// File: trimmr/handlers/bundle.go
package handlers

import (
	userRepoPkg "trimmr/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// User endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetMeHandler            gin.HandlerFunc
	SignOutHandler          gin.HandlerFunc

	// Catalog endpoints
	GetServicesHandler      gin.HandlerFunc
	GetSalonsHandler        gin.HandlerFunc
	GetNearbySalonsHandler  gin.HandlerFunc
	GetSalonHandler         gin.HandlerFunc
	GetSalonServicesHandler gin.HandlerFunc

	// Booking endpoints
	StartDraftHandler    gin.HandlerFunc
	GetDraftHandler      gin.HandlerFunc
	AddServiceHandler    gin.HandlerFunc
	RemoveServiceHandler gin.HandlerFunc
	SetServicesHandler   gin.HandlerFunc
	SelectStylistHandler gin.HandlerFunc
	SetDateTimeHandler   gin.HandlerFunc
	AdvanceHandler       gin.HandlerFunc
	CancelDraftHandler   gin.HandlerFunc
	SubmitHandler        gin.HandlerFunc
	GetStylistsHandler   gin.HandlerFunc
	ListBookingsHandler  gin.HandlerFunc
	CancelBookingHandler gin.HandlerFunc

	// Favourites endpoints
	ListFavouritesHandler  gin.HandlerFunc
	ToggleFavouriteHandler gin.HandlerFunc
	IsFavouriteHandler     gin.HandlerFunc

	// Location endpoints
	GetLocationHandler gin.HandlerFunc
	SetLocationHandler gin.HandlerFunc
}
