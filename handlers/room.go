package handlers

import (
	"errors"
	"net/http"

	"boardroom/models"
	"boardroom/services/room"
	"boardroom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoomHandler exposes the boardroom catalog endpoints.
type RoomHandler struct {
	Service room.RoomService
}

// NewRoomHandler constructs a RoomHandler.
func NewRoomHandler(svc room.RoomService) *RoomHandler {
	return &RoomHandler{Service: svc}
}

// ListRooms handles GET /api/rooms. Admins may pass ?all=true to include
// deactivated rooms.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	includeInactive := c.Query("all") == "true"
	rooms, err := h.Service.ListRooms(includeInactive)
	if err != nil {
		utils.GetLogger().Error("Failed to list rooms", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list rooms"})
		return
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoom handles GET /api/rooms/:id.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	r, err := h.Service.GetRoomByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, room.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}

// CreateRoom handles POST /api/rooms (admin).
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var payload models.Room
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	// New rooms are offered for booking by default.
	payload.Active = true

	r, err := h.Service.CreateRoom(payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, r)
}

// UpdateRoom handles PUT /api/rooms/:id (admin).
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	var payload models.Room
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	payload.ID = c.Param("id")

	r, err := h.Service.UpdateRoom(payload)
	if err != nil {
		if errors.Is(err, room.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}

// DeactivateRoom handles DELETE /api/rooms/:id (admin). Soft delete: the
// room disappears from the bookable catalog but keeps its booking history.
func (h *RoomHandler) DeactivateRoom(c *gin.Context) {
	if err := h.Service.DeactivateRoom(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deactivated"})
}
