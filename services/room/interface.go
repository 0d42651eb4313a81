package room

import (
	roomRepo "boardroom/database/repository/room"
	"boardroom/models"
)

// RoomService manages the boardroom catalog.
type RoomService interface {
	CreateRoom(r models.Room) (*models.Room, error)
	GetRoomByID(id string) (*models.Room, error)
	// ListRooms returns the active catalog; includeInactive widens it for admins.
	ListRooms(includeInactive bool) ([]models.Room, error)
	UpdateRoom(r models.Room) (*models.Room, error)
	DeactivateRoom(id string) error
}

// DefaultRoomService implements RoomService.
type DefaultRoomService struct {
	Repo roomRepo.RoomRepository
}
