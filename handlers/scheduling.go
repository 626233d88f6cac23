package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	availabilityRepo "homely/database/repository/availability"
	bookingRepo "homely/database/repository/booking"
	"homely/models"
	"homely/services/scheduling"
	"homely/utils"
)

// SchedulingHandler groups the HTTP handlers for the scheduling flows.
type SchedulingHandler struct {
	Svc scheduling.SchedulingService
}

// NewSchedulingHandler returns a handler bundle over the given service.
func NewSchedulingHandler(svc scheduling.SchedulingService) *SchedulingHandler {
	return &SchedulingHandler{Svc: svc}
}

// respondSchedulingError maps service errors onto HTTP statuses.
func respondSchedulingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, availabilityRepo.ErrConfigUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "scheduling is temporarily unavailable"})
	case errors.Is(err, scheduling.ErrServiceNotFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, scheduling.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule session not found or expired"})
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
	case errors.Is(err, bookingRepo.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "the selected slot is no longer available"})
	case errors.Is(err, scheduling.ErrSlotNotSelected):
		c.JSON(http.StatusBadRequest, gin.H{"error": "no slot selected for this session"})
	default:
		utils.GetLogger().Error("scheduling request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// StartSession opens a schedule session for a cart of services.
func (h *SchedulingHandler) StartSession(c *gin.Context) {
	var input struct {
		UserID string               `json:"userId" binding:"required"`
		Items  []models.BookingItem `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Svc.StartSession(c.Request.Context(), input.UserID, input.Items)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": session.SessionID})
}

// GetSlots returns the bookable slots for the session's cart on ?date=.
func (h *SchedulingHandler) GetSlots(c *gin.Context) {
	sessionID := c.Param("sessionID")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	slots, err := h.Svc.GetAvailableSlots(c.Request.Context(), sessionID, date)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// GetNextDay finds the first day with availability at or after ?from=.
func (h *SchedulingHandler) GetNextDay(c *gin.Context) {
	sessionID := c.Param("sessionID")
	from := c.Query("from")
	if from == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from query parameter is required"})
		return
	}

	result, err := h.Svc.GetNextAvailableDay(c.Request.Context(), sessionID, from)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SelectSlot records the chosen date and start time on the session.
func (h *SchedulingHandler) SelectSlot(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Date  string `json:"date" binding:"required"`
		Start *int   `json:"start" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Svc.SelectSlot(c.Request.Context(), sessionID, input.Date, *input.Start)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sessionID":     session.SessionID,
		"selectedDate":  session.SelectedDate,
		"selectedStart": session.SelectedStart,
	})
}

// ConfirmBooking commits the session's selected slot.
func (h *SchedulingHandler) ConfirmBooking(c *gin.Context) {
	sessionID := c.Param("sessionID")

	booking, err := h.Svc.ConfirmBooking(c.Request.Context(), sessionID)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking":    booking,
		"startClock": utils.MinutesToClock(booking.Start),
	})
}

// CancelSession discards a schedule session.
func (h *SchedulingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")

	if err := h.Svc.CancelSession(c.Request.Context(), sessionID); err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// RescheduleBooking moves an existing booking to a new date and start time.
func (h *SchedulingHandler) RescheduleBooking(c *gin.Context) {
	bookingID := c.Param("bookingID")
	var input struct {
		Date  string `json:"date" binding:"required"`
		Start *int   `json:"start" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking, err := h.Svc.RescheduleBooking(c.Request.Context(), bookingID, input.Date, *input.Start)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// CancelBooking cancels a confirmed booking, freeing its capacity.
func (h *SchedulingHandler) CancelBooking(c *gin.Context) {
	bookingID := c.Param("bookingID")

	if err := h.Svc.CancelBooking(c.Request.Context(), bookingID); err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// NextAvailableForCategory serves the storefront badge: the next day with
// capacity for a category. Reads the precomputed cache first and falls back
// to a live scan on a miss.
func (h *SchedulingHandler) NextAvailableForCategory(c *gin.Context) {
	categoryID := c.Param("categoryID")
	ctx := c.Request.Context()

	cache := utils.GetAvailabilityCacheClient()
	if cached, err := cache.Get(ctx, utils.NextAvailableDayPrefix+categoryID).Result(); err == nil {
		c.JSON(http.StatusOK, gin.H{"categoryID": categoryID, "nextAvailableDay": cached, "cached": true})
		return
	}

	date, err := h.Svc.NextAvailableDayForCategory(ctx, categoryID)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categoryID": categoryID, "nextAvailableDay": date, "cached": false})
}
