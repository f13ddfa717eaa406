package handlers

import (
	"net/http"
	"strings"

	"trimmr/models"
	"trimmr/services/booking"
	"trimmr/services/catalog"
	"trimmr/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking wizard, stylist lookup and the user's
// confirmed bookings. Service and salon payloads are always hydrated from the
// catalog by ID; client-sent prices are never trusted.
type BookingHandler struct {
	Booking booking.BookingService
	Catalog catalog.CatalogService
}

// NewBookingHandler returns a BookingHandler over the given services.
func NewBookingHandler(svc booking.BookingService, cat catalog.CatalogService) *BookingHandler {
	return &BookingHandler{Booking: svc, Catalog: cat}
}

// respondDraftError maps service errors to HTTP responses. Validation failures
// are the caller's fault; anything else is a server-side failure.
func respondDraftError(c *gin.Context, err error) {
	if booking.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	utils.GetLogger().Error("booking operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// hydrateServices resolves service IDs against the catalog, rejecting IDs that
// do not exist.
func (h *BookingHandler) hydrateServices(c *gin.Context, ids []string) ([]models.SalonService, bool) {
	services, err := h.Catalog.GetServicesByIDs(c.Request.Context(), ids)
	if err != nil {
		utils.GetLogger().Error("failed to hydrate services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch services"})
		return nil, false
	}
	if len(services) != len(ids) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "one or more services do not exist"})
		return nil, false
	}
	return services, true
}

// StartDraftHandler handles POST /api/booking/draft. It opens a new draft for
// a salon with an initial service selection.
func (h *BookingHandler) StartDraftHandler(c *gin.Context) {
	var req struct {
		SalonID    string   `json:"salonId" binding:"required"`
		ServiceIDs []string `json:"serviceIds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	salon, err := h.Catalog.GetSalonByID(c.Request.Context(), req.SalonID)
	if err != nil {
		utils.GetLogger().Error("failed to fetch salon", zap.String("salonID", req.SalonID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch salon"})
		return
	}
	if salon == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "salon not found"})
		return
	}

	services, ok := h.hydrateServices(c, req.ServiceIDs)
	if !ok {
		return
	}

	draft, err := h.Booking.StartDraft(c.Request.Context(), c.GetString("userID"), salon.Ref(), services)
	if err != nil {
		respondDraftError(c, err)
		return
	}
	c.JSON(http.StatusCreated, draft)
}

// GetDraftHandler handles GET /api/booking/draft.
func (h *BookingHandler) GetDraftHandler(c *gin.Context) {
	draft, err := h.Booking.GetDraft(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondDraftError(c, err)
		return
	}
	if draft == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no booking in progress"})
		return
	}
	c.JSON(http.StatusOK, draft)
}

// AddServiceHandler handles POST /api/booking/draft/services.
func (h *BookingHandler) AddServiceHandler(c *gin.Context) {
	var req struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	services, ok := h.hydrateServices(c, []string{req.ServiceID})
	if !ok {
		return
	}

	draft, err := h.Booking.AddService(c.Request.Context(), c.GetString("userID"), services[0])
	if err != nil {
		respondDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// RemoveServiceHandler handles DELETE /api/booking/draft/services/:serviceId.
func (h *BookingHandler) RemoveServiceHandler(c *gin.Context) {
	draft, err := h.Booking.RemoveService(c.Request.Context(), c.GetString("userID"), c.Param("serviceId"))
	if err != nil {
		respondDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SetServicesHandler handles PUT /api/booking/draft/services, replacing the
// whole selection at once.
func (h *BookingHandler) SetServicesHandler(c *gin.Context) {
	var req struct {
		ServiceIDs []string `json:"serviceIds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	services, ok := h.hydrateServices(c, req.ServiceIDs)
	if !ok {
		return
	}

	draft, err := h.Booking.SetServices(c.Request.Context(), c.GetString("userID"), services)
	if err != nil {
		respondDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SelectStylistHandler handles PUT /api/booking/draft/stylist.
func (h *BookingHandler) SelectStylistHandler(c *gin.Context) {
	var req struct {
		Kind      string `json:"kind" binding:"required"`
		StylistID string `json:"stylistId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	kind := models.StylistChoiceKind(req.Kind)
	switch kind {
	case models.StylistAny, models.StylistMultiple, models.StylistSpecific:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown stylist choice kind"})
		return
	}

	draft, err := h.Booking.SelectStylistByID(c.Request.Context(), c.GetString("userID"), kind, req.StylistID)
	if err != nil {
		respondDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SetDateTimeHandler handles PUT /api/booking/draft/datetime.
func (h *BookingHandler) SetDateTimeHandler(c *gin.Context) {
	var req struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	draft, err := h.Booking.SetDateTime(c.Request.Context(), c.GetString("userID"), req.Date, req.Time)
	if err != nil {
		respondDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// AdvanceHandler handles POST /api/booking/draft/advance.
func (h *BookingHandler) AdvanceHandler(c *gin.Context) {
	var req struct {
		Step string `json:"step" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	step := models.BookingStep(strings.ToLower(req.Step))
	if step.Index() < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown booking step"})
		return
	}

	draft, err := h.Booking.Advance(c.Request.Context(), c.GetString("userID"), step)
	if err != nil {
		respondDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// CancelDraftHandler handles DELETE /api/booking/draft.
func (h *BookingHandler) CancelDraftHandler(c *gin.Context) {
	if err := h.Booking.CancelDraft(c.Request.Context(), c.GetString("userID")); err != nil {
		respondDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

// SubmitHandler handles POST /api/booking/draft/submit.
func (h *BookingHandler) SubmitHandler(c *gin.Context) {
	var req struct {
		PaymentMethod string `json:"paymentMethod"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	record, err := h.Booking.Submit(c.Request.Context(), c.GetString("userID"), req.PaymentMethod)
	if err != nil {
		respondDraftError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// GetStylistsHandler handles GET /api/booking/stylists. Candidates are
// filtered by serviceIds when given, with a fallback to the full roster.
func (h *BookingHandler) GetStylistsHandler(c *gin.Context) {
	salonID := c.Query("salonId")
	var serviceIDs []string
	if raw := c.Query("serviceIds"); raw != "" {
		serviceIDs = strings.Split(raw, ",")
	}

	stylists, err := h.Booking.LoadStylists(c.Request.Context(), salonID, serviceIDs)
	if err != nil {
		respondDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stylists": stylists})
}

// ListBookingsHandler handles GET /api/booking/bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Booking.ListBookings(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CancelBookingHandler handles POST /api/booking/bookings/:id/cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	record, err := h.Booking.CancelBooking(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		respondDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}
