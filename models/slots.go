package models

// Working-hours window and slot geometry. All bookings must fall fully inside
// [WorkDayStart, WorkDayEnd) on a single calendar day.
const (
	WorkDayStart    = 7 * 60  // 07:00, minutes from midnight
	WorkDayEnd      = 16 * 60 // 16:00, minutes from midnight
	SlotMinutes     = 30
	MaxBookingHours = 8
	SlotsPerDay     = (WorkDayEnd - WorkDayStart) / SlotMinutes
)

// ConflictInfo describes the booking that blocks a requested interval.
type ConflictInfo struct {
	Purpose   string `json:"purpose"`
	Organizer string `json:"organizer"`
}

// TimeSlot is one 30-minute cell of a room's day grid. Derived, never stored.
type TimeSlot struct {
	Start              int           `json:"start"`     // minutes from midnight
	End                int           `json:"end"`       // minutes from midnight
	StartTime          string        `json:"startTime"` // "HH:MM"
	EndTime            string        `json:"endTime"`   // "HH:MM"
	Available          bool          `json:"available"`
	ConflictingBooking *ConflictInfo `json:"conflictingBooking,omitempty"`
}

// AvailabilityResult answers a single-range availability check.
type AvailabilityResult struct {
	Available          bool          `json:"available"`
	ConflictingBooking *ConflictInfo `json:"conflictingBooking,omitempty"`
}

// DayAvailability is the detailed grid for one room and date.
type DayAvailability struct {
	Boardroom     Room       `json:"boardroom"`
	Date          string     `json:"date"`
	TimeSlots     []TimeSlot `json:"timeSlots"`
	TotalBookings int        `json:"totalBookings"`
}
