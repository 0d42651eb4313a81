package booking

import (
	"fmt"
	"time"

	"boardroom/models"
	"boardroom/utils"
)

// ValidateRequest applies the business rules for a proposed booking interval,
// in order; the first failing check determines the rejection reason. The
// conflict check against existing bookings happens separately, at write time.
func ValidateRequest(req models.BookingRequest, now time.Time) error {
	if req.RoomID == "" {
		return &ValidationError{Reason: "roomId is required"}
	}
	if req.Purpose == "" {
		return &ValidationError{Reason: "purpose is required"}
	}
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return &ValidationError{Reason: "startTime and endTime are required"}
	}

	start := req.StartTime
	end := req.EndTime

	if !start.Before(end) {
		return &ValidationError{Reason: "startTime must be before endTime"}
	}
	if start.Before(now) {
		return &ValidationError{Reason: "startTime must not be in the past"}
	}

	startDate, startMin := utils.SplitInstant(start)
	endDate, endMin := utils.SplitInstant(end)
	// An end of exactly midnight still belongs to the previous day's window,
	// but that can never satisfy the working-hours bound anyway.
	if startDate != endDate {
		return &ValidationError{Reason: "booking must start and end on the same day"}
	}

	if startMin < models.WorkDayStart || endMin > models.WorkDayEnd {
		return &ValidationError{Reason: fmt.Sprintf(
			"booking must fall within working hours (%s-%s)",
			utils.MinuteToClock(models.WorkDayStart), utils.MinuteToClock(models.WorkDayEnd))}
	}

	duration := endMin - startMin
	if duration < models.SlotMinutes {
		return &ValidationError{Reason: fmt.Sprintf("booking must be at least %d minutes", models.SlotMinutes)}
	}
	if duration > models.MaxBookingHours*60 {
		return &ValidationError{Reason: fmt.Sprintf("booking must not exceed %d hours", models.MaxBookingHours)}
	}

	return nil
}
