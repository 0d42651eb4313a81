package models

import "time"

// BookingRequest is the inbound payload for creating or editing a booking.
// Times arrive as RFC3339 instants; the service layer converts them to the
// stored date + minutes-from-midnight form.
type BookingRequest struct {
	RoomID    string     `json:"roomId" binding:"required"`
	StartTime time.Time  `json:"startTime" binding:"required"`
	EndTime   time.Time  `json:"endTime" binding:"required"`
	Purpose   string     `json:"purpose" binding:"required"`
	Notes     string     `json:"notes"`
	Attendees []Attendee `json:"attendees"`
}

// AvailabilityCheckRequest asks whether a single interval is free.
type AvailabilityCheckRequest struct {
	RoomID    string    `json:"roomId" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}
