package models

import (
	"fmt"
	"time"
)

// BookingStatus is the closed set of booking lifecycle states.
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus converts a stored status string, rejecting unknown values.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusConfirmed, StatusCancelled:
		return BookingStatus(s), nil
	}
	return "", fmt.Errorf("unknown booking status %q", s)
}

// Attendee is a booking participant: an internal user reference, an external
// email address, or both.
type Attendee struct {
	UserID string `bson:"user_id,omitempty" json:"userId,omitempty"`
	Email  string `bson:"email,omitempty" json:"email,omitempty"`
}

// Booking represents a boardroom reservation.
type Booking struct {
	ID        string        `bson:"id" json:"id"`                 // Unique booking identifier (UUID)
	RoomID    string        `bson:"room_id" json:"roomId"`        // Boardroom being booked
	UserID    string        `bson:"user_id" json:"userId"`        // Creator of the booking
	Date      string        `bson:"date" json:"date"`             // Booking date in "YYYY-MM-DD" format
	Start     int           `bson:"start" json:"start"`           // Start time (minutes from midnight)
	End       int           `bson:"end" json:"end"`               // End time (minutes from midnight)
	Purpose   string        `bson:"purpose" json:"purpose"`       // Meeting purpose
	Notes     string        `bson:"notes,omitempty" json:"notes,omitempty"`
	Status    BookingStatus `bson:"status" json:"status"`         // "confirmed" or "cancelled"
	Attendees []Attendee    `bson:"attendees,omitempty" json:"attendees,omitempty"`
	CreatedAt time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updatedAt"`
}

// Overlaps reports whether the booking's half-open interval [Start, End)
// intersects [start, end) on the same date.
func (b Booking) Overlaps(start, end int) bool {
	return b.Start < end && start < b.End
}

// HasAttendee reports whether userID appears in the attendee list.
func (b Booking) HasAttendee(userID string) bool {
	for _, a := range b.Attendees {
		if a.UserID != "" && a.UserID == userID {
			return true
		}
	}
	return false
}
