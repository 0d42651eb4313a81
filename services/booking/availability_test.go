package booking

import (
	"errors"
	"testing"

	"boardroom/models"
)

func confirmed(id, roomID, userID string, start, end int) models.Booking {
	return models.Booking{
		ID:      id,
		RoomID:  roomID,
		UserID:  userID,
		Date:    "2026-03-02",
		Start:   start,
		End:     end,
		Purpose: "standup",
		Status:  models.StatusConfirmed,
	}
}

func TestBuildDaySlotsEmptyDay(t *testing.T) {
	slots := BuildDaySlots(nil, nil)

	if len(slots) != models.SlotsPerDay {
		t.Fatalf("expected %d slots, got %d", models.SlotsPerDay, len(slots))
	}
	if slots[0].StartTime != "07:00" || slots[0].EndTime != "07:30" {
		t.Fatalf("unexpected first slot %s-%s", slots[0].StartTime, slots[0].EndTime)
	}
	last := slots[len(slots)-1]
	if last.StartTime != "15:30" || last.EndTime != "16:00" {
		t.Fatalf("unexpected last slot %s-%s", last.StartTime, last.EndTime)
	}
	for _, s := range slots {
		if !s.Available {
			t.Fatalf("slot %s should be available on an empty day", s.StartTime)
		}
		if s.ConflictingBooking != nil {
			t.Fatalf("slot %s should carry no conflict info", s.StartTime)
		}
	}
}

func TestBuildDaySlotsMarksOverlaps(t *testing.T) {
	// One booking 09:00-10:00 blocks exactly the 09:00 and 09:30 slots.
	bookings := []models.Booking{confirmed("b1", "room-1", "u1", 9*60, 10*60)}
	organizers := map[string]string{"u1": "Thandi"}

	slots := BuildDaySlots(bookings, organizers)

	for _, s := range slots {
		blocked := s.Start >= 9*60 && s.Start < 10*60
		if s.Available == blocked {
			t.Errorf("slot %s: available=%v, want %v", s.StartTime, s.Available, !blocked)
		}
		if blocked {
			if s.ConflictingBooking == nil {
				t.Fatalf("slot %s: missing conflict info", s.StartTime)
			}
			if s.ConflictingBooking.Purpose != "standup" || s.ConflictingBooking.Organizer != "Thandi" {
				t.Errorf("slot %s: unexpected conflict info %+v", s.StartTime, s.ConflictingBooking)
			}
		}
	}
}

func TestBuildDaySlotsAdjacentBookingsDoNotBleed(t *testing.T) {
	// Half-open intervals: a booking ending 10:00 leaves the 10:00 slot free.
	bookings := []models.Booking{
		confirmed("b1", "room-1", "u1", 9*60, 10*60),
		confirmed("b2", "room-1", "u2", 10*60+30, 11*60),
	}

	slots := BuildDaySlots(bookings, nil)

	bySlot := make(map[int]models.TimeSlot, len(slots))
	for _, s := range slots {
		bySlot[s.Start] = s
	}
	if !bySlot[10*60].Available {
		t.Error("10:00 slot should be free between adjacent bookings")
	}
	if bySlot[9*60+30].Available {
		t.Error("09:30 slot should be blocked")
	}
	if bySlot[10*60+30].Available {
		t.Error("10:30 slot should be blocked")
	}
}

func TestGetDayAvailability(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.CreateBooking("u-alice", request(at(9, 0), at(10, 0))); err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	day, err := svc.GetDayAvailability("room-1", "2026-03-02")
	if err != nil {
		t.Fatalf("day availability failed: %v", err)
	}
	if day.TotalBookings != 1 {
		t.Errorf("TotalBookings = %d", day.TotalBookings)
	}
	if day.Boardroom.ID != "room-1" {
		t.Errorf("boardroom = %q", day.Boardroom.ID)
	}
	if len(day.TimeSlots) != models.SlotsPerDay {
		t.Fatalf("expected %d slots, got %d", models.SlotsPerDay, len(day.TimeSlots))
	}
	for _, s := range day.TimeSlots {
		if s.StartTime != "09:00" {
			continue
		}
		if s.Available {
			t.Error("09:00 slot should be blocked")
		}
		if s.ConflictingBooking == nil || s.ConflictingBooking.Organizer != "Alice" {
			t.Errorf("unexpected conflict info %+v", s.ConflictingBooking)
		}
	}
}

func TestGetDayAvailabilityRejectsBadInput(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetDayAvailability("room-1", "02/03/2026")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error for malformed date, got %v", err)
	}

	if _, err := svc.GetDayAvailability("room-9", "2026-03-02"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown room, got %v", err)
	}
}

func TestCheckAvailability(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.CreateBooking("u-alice", request(at(9, 0), at(10, 0))); err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	res, err := svc.CheckAvailability(models.AvailabilityCheckRequest{
		RoomID:    "room-1",
		StartTime: at(9, 30),
		EndTime:   at(10, 30),
	})
	if err != nil {
		t.Fatalf("availability check failed: %v", err)
	}
	if res.Available {
		t.Error("overlapping interval reported available")
	}
	if res.ConflictingBooking == nil || res.ConflictingBooking.Organizer != "Alice" {
		t.Errorf("unexpected conflict info %+v", res.ConflictingBooking)
	}

	res, err = svc.CheckAvailability(models.AvailabilityCheckRequest{
		RoomID:    "room-1",
		StartTime: at(10, 0),
		EndTime:   at(11, 0),
	})
	if err != nil {
		t.Fatalf("availability check failed: %v", err)
	}
	if !res.Available {
		t.Error("free interval reported unavailable")
	}
}

func TestCheckAvailabilityRejectsInvertedInterval(t *testing.T) {
	svc, _ := newTestService()

	cases := []struct {
		name       string
		start, end int
	}{
		{"empty", 10, 10},
		{"inverted", 11, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CheckAvailability(models.AvailabilityCheckRequest{
				RoomID:    "room-1",
				StartTime: at(tc.start, 0),
				EndTime:   at(tc.end, 0),
			})
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestBuildDaySlotsIgnoresCancelled(t *testing.T) {
	b := confirmed("b1", "room-1", "u1", 9*60, 10*60)
	b.Status = models.StatusCancelled

	slots := BuildDaySlots([]models.Booking{b}, nil)
	for _, s := range slots {
		if !s.Available {
			t.Fatalf("slot %s blocked by a cancelled booking", s.StartTime)
		}
	}
}
