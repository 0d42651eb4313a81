package handlers

import (
	"net/http"

	"boardroom/models"

	"github.com/gin-gonic/gin"
)

// CheckAvailability handles POST /api/availability/check.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var req models.AvailabilityCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Service.CheckAvailability(req)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetDayAvailability handles GET /api/availability/:roomId/:date.
func (h *BookingHandler) GetDayAvailability(c *gin.Context) {
	roomID := c.Param("roomId")
	date := c.Param("date")

	day, err := h.Service.GetDayAvailability(roomID, date)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}
