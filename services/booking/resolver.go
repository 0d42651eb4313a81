package booking

import (
	"time"

	"boardroom/models"
	"boardroom/utils"
)

// Role describes the acting user's relationship to a booking.
type Role string

const (
	RoleCreator  Role = "creator"
	RoleAttendee Role = "attendee"
	RoleNone     Role = "none"
)

// ResolveRole classifies the actor: creator wins over attendee when both hold.
func ResolveRole(b models.Booking, actorID string) Role {
	if b.UserID == actorID {
		return RoleCreator
	}
	if b.HasAttendee(actorID) {
		return RoleAttendee
	}
	return RoleNone
}

// mutable reports whether a booking is still confirmed and in the future,
// the precondition shared by cancel, edit and opt-out.
func mutable(b models.Booking, now time.Time) bool {
	if b.Status != models.StatusConfirmed {
		return false
	}
	start, err := utils.CombineDateMinute(b.Date, b.Start)
	if err != nil {
		return false
	}
	return start.After(now)
}

// CanCancel: only the creator may cancel the whole booking.
func CanCancel(b models.Booking, actorID string, now time.Time) bool {
	return ResolveRole(b, actorID) == RoleCreator && mutable(b, now)
}

// CanEdit: only the creator may change time, room, purpose or attendees.
func CanEdit(b models.Booking, actorID string, now time.Time) bool {
	return ResolveRole(b, actorID) == RoleCreator && mutable(b, now)
}

// CanOptOut: only a non-creator attendee may remove themselves.
func CanOptOut(b models.Booking, actorID string, now time.Time) bool {
	return ResolveRole(b, actorID) == RoleAttendee && mutable(b, now)
}
