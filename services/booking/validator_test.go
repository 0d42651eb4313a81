package booking

import (
	"errors"
	"testing"
	"time"

	"boardroom/models"
)

var testNow = time.Date(2026, 3, 2, 6, 30, 0, 0, time.Local)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.Local)
}

func request(start, end time.Time) models.BookingRequest {
	return models.BookingRequest{
		RoomID:    "room-1",
		StartTime: start,
		EndTime:   end,
		Purpose:   "sprint planning",
	}
}

func TestValidateRequestAccepts(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{"single slot at opening", at(7, 0), at(7, 30)},
		{"last slot of the day", at(15, 30), at(16, 0)},
		{"multi-hour booking", at(9, 0), at(12, 30)},
		{"maximum duration", at(7, 30), at(15, 30)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateRequest(request(tc.start, tc.end), testNow); err != nil {
				t.Fatalf("expected accept, got %v", err)
			}
		})
	}
}

func TestValidateRequestRejects(t *testing.T) {
	cases := []struct {
		name  string
		req   models.BookingRequest
		now   time.Time
	}{
		{"missing room", models.BookingRequest{Purpose: "x", StartTime: at(9, 0), EndTime: at(10, 0)}, testNow},
		{"missing purpose", models.BookingRequest{RoomID: "r", StartTime: at(9, 0), EndTime: at(10, 0)}, testNow},
		{"end before start", request(at(10, 0), at(9, 0)), testNow},
		{"end equals start", request(at(9, 0), at(9, 0)), testNow},
		{"start in the past", request(at(9, 0), at(10, 0)), at(9, 30)},
		{"crosses midnight", request(at(15, 0), at(15, 0).Add(24*time.Hour)), testNow},
		{"before working hours", request(at(6, 30), at(7, 30)), testNow},
		{"past working hours", request(at(15, 30), at(16, 30)), testNow},
		{"below minimum duration", request(at(9, 0), at(9, 15)), testNow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRequest(tc.req, tc.now)
			if err == nil {
				t.Fatal("expected rejection, got accept")
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if vErr.Reason == "" {
				t.Fatal("expected a non-empty rejection reason")
			}
		})
	}
}

func TestValidateRequestRejectsOverEightHours(t *testing.T) {
	// 07:00-15:30 is 8.5h; the working-hours window itself is 9h wide, so the
	// duration cap has to trip before the window bound does.
	err := ValidateRequest(request(at(7, 0), at(15, 30)), testNow)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestValidateRequestOrderOfChecks(t *testing.T) {
	// A request that is simultaneously in the past and outside working hours
	// must be rejected for the past start: that check runs first.
	err := ValidateRequest(request(at(5, 0), at(5, 15)), testNow)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Reason != "startTime must not be in the past" {
		t.Fatalf("expected past-start reason first, got %q", vErr.Reason)
	}
}

func TestValidateRequestNormalizesClientOffset(t *testing.T) {
	// 20:00-21:00 service time re-expressed with a UTC offset that makes the
	// wall clock read 10:00-11:00. The offset must not let the interval
	// slip inside working hours.
	start := at(20, 0)
	end := at(21, 0)
	_, off := start.Zone()
	alt := time.FixedZone("client", off-10*3600)

	err := ValidateRequest(request(start.In(alt), end.In(alt)), testNow)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Reason != "booking must fall within working hours (07:00-16:00)" {
		t.Fatalf("expected working-hours reason, got %q", vErr.Reason)
	}
}
