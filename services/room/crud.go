package room

import (
	"errors"
	"fmt"
	"time"

	"boardroom/models"
	"boardroom/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrRoomNotFound signals an unknown room ID.
var ErrRoomNotFound = errors.New("room not found")

// CreateRoom registers a new boardroom. New rooms start active unless the
// payload says otherwise.
func (s *DefaultRoomService) CreateRoom(r models.Room) (*models.Room, error) {
	logger := utils.GetLogger()

	if r.Name == "" {
		return nil, fmt.Errorf("room name is required")
	}
	if r.Capacity < 0 {
		return nil, fmt.Errorf("room capacity must not be negative")
	}

	now := time.Now()
	r.ID = uuid.New().String()
	r.CreatedAt = now
	r.UpdatedAt = now

	if err := s.Repo.Create(&r); err != nil {
		logger.Error("Failed to create room", zap.String("name", r.Name), zap.Error(err))
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	logger.Info("room created", zap.String("roomID", r.ID), zap.String("name", r.Name))
	return &r, nil
}

// GetRoomByID retrieves a single room.
func (s *DefaultRoomService) GetRoomByID(id string) (*models.Room, error) {
	r, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrRoomNotFound
	}
	return r, nil
}

// ListRooms returns the bookable catalog, or everything for admin views.
func (s *DefaultRoomService) ListRooms(includeInactive bool) ([]models.Room, error) {
	if includeInactive {
		return s.Repo.GetAll()
	}
	return s.Repo.GetActive()
}

// UpdateRoom updates non-zero room fields using a partial update.
func (s *DefaultRoomService) UpdateRoom(r models.Room) (*models.Room, error) {
	logger := utils.GetLogger()

	if r.ID == "" {
		return nil, fmt.Errorf("room ID is required for update")
	}

	updateFields := map[string]any{
		"updated_at": time.Now(),
	}
	if r.Name != "" {
		updateFields["name"] = r.Name
	}
	if r.Location != "" {
		updateFields["location"] = r.Location
	}
	if r.Capacity > 0 {
		updateFields["capacity"] = r.Capacity
	}
	if r.Amenities != nil {
		updateFields["amenities"] = r.Amenities
	}
	if r.Images != nil {
		updateFields["images"] = r.Images
	}

	if len(updateFields) == 1 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateWithDocument(r.ID, updateFields); err != nil {
		logger.Error("Failed to update room", zap.String("roomID", r.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	return s.GetRoomByID(r.ID)
}

// DeactivateRoom removes a room from the bookable catalog without touching
// its booking history.
func (s *DefaultRoomService) DeactivateRoom(id string) error {
	if err := s.Repo.Deactivate(id); err != nil {
		return fmt.Errorf("failed to deactivate room: %w", err)
	}
	utils.GetLogger().Info("room deactivated", zap.String("roomID", id))
	return nil
}
