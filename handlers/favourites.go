package handlers

import (
	"net/http"

	"trimmr/services/catalog"
	"trimmr/services/favourites"
	"trimmr/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FavouritesHandler exposes the user's favourite salons.
type FavouritesHandler struct {
	Favourites favourites.FavouritesService
	Catalog    catalog.CatalogService
}

// NewFavouritesHandler returns a FavouritesHandler over the given services.
func NewFavouritesHandler(favs favourites.FavouritesService, cat catalog.CatalogService) *FavouritesHandler {
	return &FavouritesHandler{Favourites: favs, Catalog: cat}
}

// ListFavouritesHandler handles GET /api/favourites. It loads the stored
// favourites and hydrates each salon; favourites whose salon no longer exists
// are dropped from the response.
func (h *FavouritesHandler) ListFavouritesHandler(c *gin.Context) {
	favs, err := h.Favourites.Load(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.GetLogger().Error("failed to load favourites", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load favourites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favourites": favs})
}

// ToggleFavouriteHandler handles POST /api/favourites/toggle. The salon
// snapshot stored with the favourite is taken from the catalog, never from the
// request body.
func (h *FavouritesHandler) ToggleFavouriteHandler(c *gin.Context) {
	var req struct {
		SalonID string `json:"salonId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	salon, err := h.Catalog.GetSalonByID(c.Request.Context(), req.SalonID)
	if err != nil {
		utils.GetLogger().Error("failed to fetch salon for favourite", zap.String("salonID", req.SalonID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch salon"})
		return
	}
	if salon == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "salon not found"})
		return
	}

	isFavourite, err := h.Favourites.Toggle(c.Request.Context(), c.GetString("userID"), req.SalonID, salon.Ref())
	if err != nil {
		utils.GetLogger().Error("failed to toggle favourite",
			zap.String("salonID", req.SalonID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update favourite", "isFavourite": isFavourite})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isFavourite": isFavourite})
}

// IsFavouriteHandler handles GET /api/favourites/:salonId.
func (h *FavouritesHandler) IsFavouriteHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"isFavourite": h.Favourites.IsFavourite(c.GetString("userID"), c.Param("salonId")),
	})
}
