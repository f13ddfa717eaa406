// File: trimmr/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trimmr/config"
	"trimmr/database"
	bookingRepoPkg "trimmr/database/repository/booking"
	favouriteRepoPkg "trimmr/database/repository/favourite"
	salonRepoPkg "trimmr/database/repository/salon"
	serviceRepoPkg "trimmr/database/repository/service"
	stylistRepoPkg "trimmr/database/repository/stylist"
	userRepoPkg "trimmr/database/repository/user"
	"trimmr/handlers"
	"trimmr/middleware"
	"trimmr/routes"
	"trimmr/services/booking"
	"trimmr/services/catalog"
	"trimmr/services/favourites"
	"trimmr/services/location"
	"trimmr/services/user"
	"trimmr/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	salonRepo := salonRepoPkg.NewMongoSalonRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	stylistRepo := stylistRepoPkg.NewMongoStylistRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	favouriteRepo := favouriteRepoPkg.NewMongoFavouriteRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	catalogService := &catalog.DefaultCatalogService{
		SalonRepo:   salonRepo,
		ServiceRepo: serviceRepo,
	}

	favouritesService := favourites.NewDefaultFavouritesService(favouriteRepo, salonRepo)

	locationService := location.NewRedisLocationService(utils.GetPrefsCacheClient())

	draftTTL := time.Duration(config.AppConfig.DraftTTLHours) * time.Hour
	bookingService := &booking.DefaultBookingService{
		Drafts:       booking.NewDraftStore(utils.GetDraftCacheClient(), draftTTL),
		StylistRepo:  stylistRepo,
		BookingRepo:  bookingRepo,
		UserRepo:     userRepo,
		Payments:     booking.NewStripePaymentHandler(logger),
		CancelRemote: config.AppConfig.BookingCancelRemote,
	}

	// handlers.
	userHandler := handlers.NewUserHandler(userService, favouritesService)
	catalogHandler := handlers.NewCatalogHandler(catalogService, locationService, favouritesService)
	bookingHandler := handlers.NewBookingHandler(bookingService, catalogService)
	favouritesHandler := handlers.NewFavouritesHandler(favouritesService, catalogService)
	locationHandler := handlers.NewLocationHandler(locationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// User endpoints.
		RegisterUserHandler:     userHandler.RegisterHandler,
		AuthenticateUserHandler: userHandler.SignInHandler,
		GetMeHandler:            userHandler.MeHandler,
		SignOutHandler:          userHandler.SignOutHandler,

		// Catalog endpoints.
		GetServicesHandler:      catalogHandler.GetServicesHandler,
		GetSalonsHandler:        catalogHandler.GetSalonsHandler,
		GetNearbySalonsHandler:  catalogHandler.GetNearbySalonsHandler,
		GetSalonHandler:         catalogHandler.GetSalonHandler,
		GetSalonServicesHandler: catalogHandler.GetSalonServicesHandler,

		// Booking endpoints.
		StartDraftHandler:    bookingHandler.StartDraftHandler,
		GetDraftHandler:      bookingHandler.GetDraftHandler,
		AddServiceHandler:    bookingHandler.AddServiceHandler,
		RemoveServiceHandler: bookingHandler.RemoveServiceHandler,
		SetServicesHandler:   bookingHandler.SetServicesHandler,
		SelectStylistHandler: bookingHandler.SelectStylistHandler,
		SetDateTimeHandler:   bookingHandler.SetDateTimeHandler,
		AdvanceHandler:       bookingHandler.AdvanceHandler,
		CancelDraftHandler:   bookingHandler.CancelDraftHandler,
		SubmitHandler:        bookingHandler.SubmitHandler,
		GetStylistsHandler:   bookingHandler.GetStylistsHandler,
		ListBookingsHandler:  bookingHandler.ListBookingsHandler,
		CancelBookingHandler: bookingHandler.CancelBookingHandler,

		// Favourites endpoints.
		ListFavouritesHandler:  favouritesHandler.ListFavouritesHandler,
		ToggleFavouriteHandler: favouritesHandler.ToggleFavouriteHandler,
		IsFavouriteHandler:     favouritesHandler.IsFavouriteHandler,

		// Location endpoints.
		GetLocationHandler: locationHandler.GetLocationHandler,
		SetLocationHandler: locationHandler.SetLocationHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
