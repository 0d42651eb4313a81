package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "boardroom/database/repository/booking"
	"boardroom/models"
	"boardroom/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking validates the request and reserves the interval. The conflict
// check and insert run inside one repository transaction, so a concurrent
// request for the same room and interval cannot slip between them.
func (s *DefaultBookingService) CreateBooking(userID string, req models.BookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()
	now := s.now()

	if err := ValidateRequest(req, now); err != nil {
		return nil, err
	}

	room, err := s.RoomRepo.GetByID(req.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrNotFound
	}
	if !room.Active {
		return nil, ErrRoomInactive
	}

	date, startMin := utils.SplitInstant(req.StartTime)
	_, endMin := utils.SplitInstant(req.EndTime)

	b := &models.Booking{
		ID:        uuid.New().String(),
		RoomID:    req.RoomID,
		UserID:    userID,
		Date:      date,
		Start:     startMin,
		End:       endMin,
		Purpose:   req.Purpose,
		Notes:     req.Notes,
		Status:    models.StatusConfirmed,
		Attendees: req.Attendees,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Repo.CreateIfFree(ctx, b); err != nil {
		var conflict *bookingRepo.ConflictError
		if errors.As(err, &conflict) {
			return nil, &ConflictError{Conflict: *s.conflictInfo(conflict.Existing)}
		}
		return nil, fmt.Errorf("booking transaction failed: %w", err)
	}

	s.invalidateDayCache(b.RoomID, b.Date)

	if s.Reminders != nil {
		if err := s.Reminders.EnqueueBookingReminder(*b); err != nil {
			logger.Warn("failed to enqueue booking reminder", zap.String("bookingID", b.ID), zap.Error(err))
		}
	}

	logger.Info("booking created",
		zap.String("bookingID", b.ID),
		zap.String("roomID", b.RoomID),
		zap.String("date", b.Date),
		zap.Int("start", b.Start),
		zap.Int("end", b.End))
	return b, nil
}

// UpdateBooking lets the creator move or reword a confirmed future booking.
// The new interval is re-validated and re-checked for conflicts (excluding the
// booking itself) in one transaction.
func (s *DefaultBookingService) UpdateBooking(actorID, bookingID string, req models.BookingRequest) (*models.Booking, error) {
	now := s.now()

	existing, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if ResolveRole(*existing, actorID) != RoleCreator {
		return nil, ErrForbidden
	}
	if !CanEdit(*existing, actorID, now) {
		return nil, ErrBookingNotEditable
	}

	if err := ValidateRequest(req, now); err != nil {
		return nil, err
	}

	room, err := s.RoomRepo.GetByID(req.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrNotFound
	}
	if !room.Active {
		return nil, ErrRoomInactive
	}

	date, startMin := utils.SplitInstant(req.StartTime)
	_, endMin := utils.SplitInstant(req.EndTime)

	updated := *existing
	updated.RoomID = req.RoomID
	updated.Date = date
	updated.Start = startMin
	updated.End = endMin
	updated.Purpose = req.Purpose
	updated.Notes = req.Notes
	updated.Attendees = req.Attendees
	updated.UpdatedAt = now

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Repo.ReplaceIfFree(ctx, &updated); err != nil {
		var conflict *bookingRepo.ConflictError
		if errors.As(err, &conflict) {
			return nil, &ConflictError{Conflict: *s.conflictInfo(conflict.Existing)}
		}
		return nil, fmt.Errorf("booking update transaction failed: %w", err)
	}

	// Both the old and new day grids are stale now.
	s.invalidateDayCache(existing.RoomID, existing.Date)
	s.invalidateDayCache(updated.RoomID, updated.Date)

	utils.GetLogger().Info("booking updated", zap.String("bookingID", updated.ID))
	return &updated, nil
}

// CancelBooking sets the status to cancelled, freeing the interval for new
// bookings. Creator-only, and only while the booking is confirmed and future.
func (s *DefaultBookingService) CancelBooking(actorID, bookingID string) (*models.Booking, error) {
	now := s.now()

	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	if ResolveRole(*b, actorID) != RoleCreator {
		return nil, ErrForbidden
	}
	if !CanCancel(*b, actorID, now) {
		return nil, ErrBookingNotEditable
	}

	if err := s.Repo.Cancel(bookingID); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	s.invalidateDayCache(b.RoomID, b.Date)

	b.Status = models.StatusCancelled
	b.UpdatedAt = now
	utils.GetLogger().Info("booking cancelled", zap.String("bookingID", b.ID))
	return b, nil
}

// OptOut removes only the acting attendee from the booking; status and
// interval are left untouched and nobody else is notified.
func (s *DefaultBookingService) OptOut(actorID, bookingID string) (*models.Booking, error) {
	now := s.now()

	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	if !CanOptOut(*b, actorID, now) {
		return nil, ErrForbidden
	}

	if err := s.Repo.RemoveAttendee(bookingID, actorID); err != nil {
		return nil, fmt.Errorf("failed to opt out of booking: %w", err)
	}

	remaining := make([]models.Attendee, 0, len(b.Attendees))
	for _, a := range b.Attendees {
		if a.UserID == actorID {
			continue
		}
		remaining = append(remaining, a)
	}
	b.Attendees = remaining
	b.UpdatedAt = now

	utils.GetLogger().Info("attendee opted out",
		zap.String("bookingID", b.ID),
		zap.String("userID", actorID))
	return b, nil
}

// GetBooking retrieves a single booking.
func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}

// GetUserBookings retrieves bookings the user created or attends.
func (s *DefaultBookingService) GetUserBookings(userID string) ([]models.Booking, error) {
	return s.Repo.GetForUser(userID)
}
