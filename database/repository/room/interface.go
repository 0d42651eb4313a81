package roomRepo

import "boardroom/models"

// RoomRepository defines data access methods for the boardroom catalog.
type RoomRepository interface {
	Create(room *models.Room) error
	GetByID(id string) (*models.Room, error)
	// GetActive retrieves rooms offered for new bookings.
	GetActive() ([]models.Room, error)
	// GetAll retrieves every room, including deactivated ones (admin view).
	GetAll() ([]models.Room, error)
	UpdateWithDocument(id string, fields map[string]any) error
	// Deactivate soft-deletes a room; existing bookings are left untouched.
	Deactivate(id string) error
}
