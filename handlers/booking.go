package handlers

import (
	"errors"
	"net/http"

	"boardroom/models"
	"boardroom/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// respondBookingError maps service errors onto the HTTP error taxonomy:
// validation 400, conflict 409 (with the colliding booking's info), missing
// resources 404, permission problems 403, everything else 500.
func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	var vErr *booking.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Reason})
		return
	}
	var cErr *booking.ConflictError
	if errors.As(err, &cErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":              "time slot is already booked",
			"conflictingBooking": cErr.Conflict,
		})
		return
	}
	switch {
	case errors.Is(err, booking.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking or room not found"})
	case errors.Is(err, booking.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "action not permitted"})
	case errors.Is(err, booking.ErrRoomInactive):
		c.JSON(http.StatusBadRequest, gin.H{"error": booking.ErrRoomInactive.Error()})
	case errors.Is(err, booking.ErrBookingNotEditable):
		c.JSON(http.StatusBadRequest, gin.H{"error": booking.ErrBookingNotEditable.Error()})
	default:
		h.Logger.Error("booking request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID := c.GetString("userID")

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Service.CreateBooking(userID, req)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// UpdateBooking handles PUT /api/bookings/:id.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	userID := c.GetString("userID")
	bookingID := c.Param("id")

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Service.UpdateBooking(userID, bookingID, req)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBooking handles DELETE /api/bookings/:id.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID := c.GetString("userID")
	bookingID := c.Param("id")

	b, err := h.Service.CancelBooking(userID, bookingID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// OptOut handles POST /api/bookings/:id/opt-out.
func (h *BookingHandler) OptOut(c *gin.Context) {
	userID := c.GetString("userID")
	bookingID := c.Param("id")

	b, err := h.Service.OptOut(userID, bookingID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Param("id"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListMyBookings handles GET /api/bookings.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	userID := c.GetString("userID")
	bookings, err := h.Service.GetUserBookings(userID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}
