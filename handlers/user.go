package handlers

import (
	"net/http"

	"trimmr/services/favourites"
	"trimmr/services/user"
	"trimmr/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes registration, sign-in and session endpoints.
type UserHandler struct {
	UserService user.UserService
	Favourites  favourites.FavouritesService
}

// NewUserHandler returns a UserHandler over the given services.
func NewUserHandler(svc user.UserService, favs favourites.FavouritesService) *UserHandler {
	return &UserHandler{UserService: svc, Favourites: favs}
}

// RegisterHandler handles POST /api/users/register.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Name     string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.UserService.RegisterUser(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		logger.Warn("registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SignInHandler handles POST /api/users/login.
func (h *UserHandler) SignInHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.UserService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("sign-in failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MeHandler handles GET /api/users/me.
func (h *UserHandler) MeHandler(c *gin.Context) {
	userID := c.GetString("userID")
	usr, err := h.UserService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// SignOutHandler handles POST /api/users/signout. Revokes the token and clears
// the favourites snapshot for the user.
func (h *UserHandler) SignOutHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.UserService.SignOut(c.Request.Context(), userID); err != nil {
		utils.GetLogger().Error("sign-out failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.Favourites.Clear(userID)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
