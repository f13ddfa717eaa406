package handlers

import (
	"net/http"
	"strconv"

	"trimmr/services/catalog"
	"trimmr/services/favourites"
	"trimmr/services/location"
	"trimmr/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultNearbyRadiusKm = 25

// CatalogHandler exposes the browsable catalog: service categories, salons and
// salon detail.
type CatalogHandler struct {
	Catalog    catalog.CatalogService
	Location   location.LocationService
	Favourites favourites.FavouritesService
}

// NewCatalogHandler returns a CatalogHandler over the given services.
func NewCatalogHandler(cat catalog.CatalogService, loc location.LocationService, favs favourites.FavouritesService) *CatalogHandler {
	return &CatalogHandler{Catalog: cat, Location: loc, Favourites: favs}
}

// GetServicesHandler handles GET /api/catalog/services.
func (h *CatalogHandler) GetServicesHandler(c *gin.Context) {
	categories, err := h.Catalog.GetServices(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to fetch service categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": categories})
}

// GetSalonsHandler handles GET /api/catalog/salons.
func (h *CatalogHandler) GetSalonsHandler(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	salons, err := h.Catalog.GetSalons(c.Request.Context(), limit)
	if err != nil {
		utils.GetLogger().Error("failed to fetch salons", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch salons"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"salons": salons})
}

// GetNearbySalonsHandler handles GET /api/catalog/salons/nearby. The search
// center comes from lat/lon query params when present, otherwise from the
// signed-in user's stored location preference.
func (h *CatalogHandler) GetNearbySalonsHandler(c *gin.Context) {
	ctx := c.Request.Context()

	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		loc, err := h.Location.Get(ctx, c.GetString("userID"))
		if err != nil {
			utils.GetLogger().Warn("failed to load location preference, using default", zap.Error(err))
		}
		lat, lon = loc.Latitude, loc.Longitude
	}

	radius, err := strconv.ParseFloat(c.Query("radiusKm"), 64)
	if err != nil || radius <= 0 {
		radius = defaultNearbyRadiusKm
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	salons, err := h.Catalog.GetNearbySalons(ctx, lat, lon, radius, limit)
	if err != nil {
		utils.GetLogger().Error("failed to fetch nearby salons", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch nearby salons"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"salons": salons})
}

// GetSalonHandler handles GET /api/catalog/salons/:id. The response carries the
// caller's favourite flag for the salon.
func (h *CatalogHandler) GetSalonHandler(c *gin.Context) {
	salonID := c.Param("id")
	salon, err := h.Catalog.GetSalonByID(c.Request.Context(), salonID)
	if err != nil {
		utils.GetLogger().Error("failed to fetch salon", zap.String("salonID", salonID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch salon"})
		return
	}
	if salon == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "salon not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"salon":       salon,
		"isFavourite": h.Favourites.IsFavourite(c.GetString("userID"), salonID),
	})
}

// GetSalonServicesHandler handles GET /api/catalog/salons/:id/services.
func (h *CatalogHandler) GetSalonServicesHandler(c *gin.Context) {
	salonID := c.Param("id")
	services, err := h.Catalog.GetSalonServices(c.Request.Context(), salonID)
	if err != nil {
		utils.GetLogger().Error("failed to fetch salon services", zap.String("salonID", salonID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch salon services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}
