package booking

import (
	"testing"
	"time"

	"boardroom/models"
)

func futureBooking() models.Booking {
	b := confirmed("b1", "room-1", "creator", 9*60, 10*60)
	b.Attendees = []models.Attendee{
		{UserID: "attendee", Email: "attendee@example.com"},
	}
	return b
}

func TestResolveRole(t *testing.T) {
	b := futureBooking()

	if got := ResolveRole(b, "creator"); got != RoleCreator {
		t.Errorf("creator resolved as %q", got)
	}
	if got := ResolveRole(b, "attendee"); got != RoleAttendee {
		t.Errorf("attendee resolved as %q", got)
	}
	if got := ResolveRole(b, "stranger"); got != RoleNone {
		t.Errorf("stranger resolved as %q", got)
	}
}

func TestResolveRoleCreatorWinsOverAttendee(t *testing.T) {
	b := futureBooking()
	b.Attendees = append(b.Attendees, models.Attendee{UserID: "creator"})

	if got := ResolveRole(b, "creator"); got != RoleCreator {
		t.Fatalf("creator listed as attendee resolved as %q", got)
	}
}

func TestPermissionMatrix(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local)
	b := futureBooking()

	cases := []struct {
		actor      string
		canCancel  bool
		canEdit    bool
		canOptOut  bool
	}{
		{"creator", true, true, false},
		{"attendee", false, false, true},
		{"stranger", false, false, false},
	}
	for _, tc := range cases {
		if got := CanCancel(b, tc.actor, now); got != tc.canCancel {
			t.Errorf("CanCancel(%s) = %v, want %v", tc.actor, got, tc.canCancel)
		}
		if got := CanEdit(b, tc.actor, now); got != tc.canEdit {
			t.Errorf("CanEdit(%s) = %v, want %v", tc.actor, got, tc.canEdit)
		}
		if got := CanOptOut(b, tc.actor, now); got != tc.canOptOut {
			t.Errorf("CanOptOut(%s) = %v, want %v", tc.actor, got, tc.canOptOut)
		}
	}
}

func TestCancelledBookingIsImmutable(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local)
	b := futureBooking()
	b.Status = models.StatusCancelled

	if CanCancel(b, "creator", now) {
		t.Error("cancelled booking should not be cancellable again")
	}
	if CanEdit(b, "creator", now) {
		t.Error("cancelled booking should not be editable")
	}
	if CanOptOut(b, "attendee", now) {
		t.Error("cancelled booking should not allow opt-out")
	}
}

func TestStartedBookingIsImmutable(t *testing.T) {
	// Booking starts 09:00; clock is already past that.
	now := time.Date(2026, 3, 2, 9, 30, 0, 0, time.Local)
	b := futureBooking()

	if CanCancel(b, "creator", now) {
		t.Error("started booking should not be cancellable")
	}
	if CanEdit(b, "creator", now) {
		t.Error("started booking should not be editable")
	}
	if CanOptOut(b, "attendee", now) {
		t.Error("started booking should not allow opt-out")
	}
}
