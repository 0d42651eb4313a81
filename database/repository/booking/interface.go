package bookingRepo

import (
	"context"

	"boardroom/models"
)

// BookingRepository defines the data access methods used by the booking engine.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetConfirmedByRoomAndDate retrieves all confirmed bookings for a room on a date.
	GetConfirmedByRoomAndDate(roomID, date string) ([]models.Booking, error)
	// FindConflicting returns the first confirmed booking on the room whose
	// interval overlaps [start, end) on the given date, skipping excludeID.
	// Returns nil when the interval is free.
	FindConflicting(roomID, date string, start, end int, excludeID string) (*models.Booking, error)
	// GetForUser retrieves bookings the user created or attends.
	GetForUser(userID string) ([]models.Booking, error)
	// CreateIfFree inserts the booking only if no confirmed booking overlaps
	// its interval; check and insert run in one transaction.
	CreateIfFree(ctx context.Context, booking *models.Booking) error
	// ReplaceIfFree replaces an existing booking only if its new interval is
	// free of other confirmed bookings; check and write run in one transaction.
	ReplaceIfFree(ctx context.Context, booking *models.Booking) error
	// Cancel marks the booking cancelled so it no longer blocks the room.
	Cancel(id string) error
	// RemoveAttendee pulls one internal attendee from the booking.
	RemoveAttendee(id, userID string) error
}
