package routes

import (
	"net/http"
	"time"

	"trimmr/handlers"
	"trimmr/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetMeHandler)
		api.POST("/signout", hb.SignOutHandler)
	}
}

// RegisterCatalogRoutes registers the browsable catalog endpoints. They are
// public; the nearby search and salon detail personalise their responses when
// a valid token is presented.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo, true))
		api.GET("/services", hb.GetServicesHandler)
		api.GET("/salons", hb.GetSalonsHandler)
		api.GET("/salons/nearby", hb.GetNearbySalonsHandler)
		api.GET("/salons/:id", hb.GetSalonHandler)
		api.GET("/salons/:id/services", hb.GetSalonServicesHandler)
	}
}

// RegisterBookingRoutes sets up the booking wizard and bookings endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))

		bookingGroup.POST("/draft", hb.StartDraftHandler)
		bookingGroup.GET("/draft", hb.GetDraftHandler)
		bookingGroup.DELETE("/draft", hb.CancelDraftHandler)
		bookingGroup.POST("/draft/services", hb.AddServiceHandler)
		bookingGroup.PUT("/draft/services", hb.SetServicesHandler)
		bookingGroup.DELETE("/draft/services/:serviceId", hb.RemoveServiceHandler)
		bookingGroup.PUT("/draft/stylist", hb.SelectStylistHandler)
		bookingGroup.PUT("/draft/datetime", hb.SetDateTimeHandler)
		bookingGroup.POST("/draft/advance", hb.AdvanceHandler)
		bookingGroup.POST("/draft/submit", hb.SubmitHandler)

		bookingGroup.GET("/stylists", hb.GetStylistsHandler)

		bookingGroup.GET("/bookings", hb.ListBookingsHandler)
		bookingGroup.POST("/bookings/:id/cancel", hb.CancelBookingHandler)
	}
}

// RegisterFavouriteRoutes registers the favourites endpoints.
func RegisterFavouriteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/favourites")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.ListFavouritesHandler)
		api.POST("/toggle", hb.ToggleFavouriteHandler)
		api.GET("/:salonId", hb.IsFavouriteHandler)
	}
}

// RegisterLocationRoutes registers the location preference endpoints.
func RegisterLocationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/location")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.GetLocationHandler)
		api.PUT("", hb.SetLocationHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm trimmr"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterFavouriteRoutes(r, hb)
	RegisterLocationRoutes(r, hb)
	RegisterHealthRoute(r)
}
