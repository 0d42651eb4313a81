package booking

import (
	"time"

	bookingRepo "boardroom/database/repository/booking"
	roomRepo "boardroom/database/repository/room"
	userRepo "boardroom/database/repository/user"
	"boardroom/models"
)

// BookingService manages the booking lifecycle and availability answers.
type BookingService interface {
	CheckAvailability(req models.AvailabilityCheckRequest) (*models.AvailabilityResult, error)
	GetDayAvailability(roomID, date string) (*models.DayAvailability, error)
	CreateBooking(userID string, req models.BookingRequest) (*models.Booking, error)
	UpdateBooking(actorID, bookingID string, req models.BookingRequest) (*models.Booking, error)
	CancelBooking(actorID, bookingID string) (*models.Booking, error)
	OptOut(actorID, bookingID string) (*models.Booking, error)
	GetBooking(id string) (*models.Booking, error)
	GetUserBookings(userID string) ([]models.Booking, error)
}

// ReminderEnqueuer schedules a reminder task for a freshly created booking.
// The cron worker provides the real implementation.
type ReminderEnqueuer interface {
	EnqueueBookingReminder(b models.Booking) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	RoomRepo  roomRepo.RoomRepository
	UserRepo  userRepo.UserRepository
	Cache     DayGridCache
	Reminders ReminderEnqueuer

	// Now is the clock used for validation and permission checks.
	// Defaults to time.Now; tests substitute a fixed instant.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
