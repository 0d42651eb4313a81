package models

import "testing"

func TestOverlaps(t *testing.T) {
	b := Booking{Start: 9 * 60, End: 10 * 60}

	cases := []struct {
		name       string
		start, end int
		want       bool
	}{
		{"identical", 9 * 60, 10 * 60, true},
		{"straddles start", 8*60 + 30, 9*60 + 30, true},
		{"straddles end", 9*60 + 30, 10*60 + 30, true},
		{"contained", 9*60 + 15, 9*60 + 45, true},
		{"containing", 8 * 60, 11 * 60, true},
		{"ends at start", 8 * 60, 9 * 60, false},
		{"starts at end", 10 * 60, 11 * 60, false},
		{"disjoint before", 7 * 60, 8 * 60, false},
		{"disjoint after", 11 * 60, 12 * 60, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Overlaps(tc.start, tc.end); got != tc.want {
				t.Errorf("Overlaps(%d, %d) = %v, want %v", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestParseBookingStatus(t *testing.T) {
	if got, err := ParseBookingStatus("confirmed"); err != nil || got != StatusConfirmed {
		t.Errorf("ParseBookingStatus(confirmed) = %q, %v", got, err)
	}
	if got, err := ParseBookingStatus("cancelled"); err != nil || got != StatusCancelled {
		t.Errorf("ParseBookingStatus(cancelled) = %q, %v", got, err)
	}
	if _, err := ParseBookingStatus("pending"); err == nil {
		t.Error("ParseBookingStatus should reject unknown status")
	}
}

func TestHasAttendee(t *testing.T) {
	b := Booking{Attendees: []Attendee{
		{UserID: "u1", Email: "u1@example.com"},
		{Email: "external@example.com"},
	}}

	if !b.HasAttendee("u1") {
		t.Error("u1 should be an attendee")
	}
	if b.HasAttendee("u2") {
		t.Error("u2 should not be an attendee")
	}
	// External attendees have no user ID; an empty actor must never match them.
	if b.HasAttendee("") {
		t.Error("empty user ID must not match external attendees")
	}
}
