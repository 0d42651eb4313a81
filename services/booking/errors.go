package booking

import (
	"errors"
	"fmt"

	"boardroom/models"
)

// ValidationError rejects an out-of-policy booking request. The first failing
// check determines the reason; nothing validation-related is retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ConflictError rejects a booking whose interval overlaps an existing
// confirmed booking, carrying enough detail for the caller to offer
// alternatives.
type ConflictError struct {
	Conflict models.ConflictInfo
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("time slot already booked for %q by %s", e.Conflict.Purpose, e.Conflict.Organizer)
}

var (
	// ErrNotFound signals an unknown room or booking.
	ErrNotFound = errors.New("not found")
	// ErrForbidden signals that the actor's role does not permit the action.
	ErrForbidden = errors.New("action not permitted")
	// ErrRoomInactive signals a booking attempt against a deactivated room.
	ErrRoomInactive = errors.New("room is not available for booking")
	// ErrBookingNotEditable signals a mutation on a cancelled or already
	// started booking.
	ErrBookingNotEditable = errors.New("booking is cancelled or already started")
)
