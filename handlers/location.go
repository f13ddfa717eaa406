package handlers

import (
	"net/http"

	"trimmr/models"
	"trimmr/services/location"
	"trimmr/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LocationHandler exposes the user's stored location preference.
type LocationHandler struct {
	Location location.LocationService
}

// NewLocationHandler returns a LocationHandler over the given service.
func NewLocationHandler(svc location.LocationService) *LocationHandler {
	return &LocationHandler{Location: svc}
}

// GetLocationHandler handles GET /api/location. Users who have never shared a
// location get the default.
func (h *LocationHandler) GetLocationHandler(c *gin.Context) {
	loc, err := h.Location.Get(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.GetLogger().Warn("failed to load location preference, serving default", zap.Error(err))
	}
	c.JSON(http.StatusOK, loc)
}

// SetLocationHandler handles PUT /api/location.
func (h *LocationHandler) SetLocationHandler(c *gin.Context) {
	var loc models.UserLocation
	if err := c.ShouldBindJSON(&loc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if loc.Latitude < -90 || loc.Latitude > 90 || loc.Longitude < -180 || loc.Longitude > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
		return
	}

	if err := h.Location.Set(c.Request.Context(), c.GetString("userID"), loc); err != nil {
		utils.GetLogger().Error("failed to store location preference", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store location"})
		return
	}
	c.JSON(http.StatusOK, loc)
}
