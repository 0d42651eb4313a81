package handlers

import (
	userRepo "boardroom/database/repository/user"
)

// HandlerBundle groups the handlers and the repositories the route middleware
// needs, so route registration takes a single argument.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Booking *BookingHandler
	Room    *RoomHandler
	User    *UserHandler
	Admin   *AdminHandler
	Health  *HealthHandler
}
