package utils

import (
	"testing"
	"time"
)

func TestSplitInstant(t *testing.T) {
	instant := time.Date(2026, 3, 2, 9, 30, 0, 0, Location())
	date, minute := SplitInstant(instant)
	if date != "2026-03-02" {
		t.Errorf("date = %q", date)
	}
	if minute != 9*60+30 {
		t.Errorf("minute = %d", minute)
	}
}

func TestSplitInstantNormalizesOffset(t *testing.T) {
	instant := time.Date(2026, 3, 2, 9, 30, 0, 0, Location())

	// The same absolute time, re-expressed in a different UTC offset, must
	// split to the same date and minute.
	_, off := instant.Zone()
	shifted := instant.In(time.FixedZone("shifted", off+2*3600))

	date, minute := SplitInstant(instant)
	shiftedDate, shiftedMinute := SplitInstant(shifted)
	if date != shiftedDate || minute != shiftedMinute {
		t.Errorf("offset changed the split: (%s, %d) vs (%s, %d)",
			date, minute, shiftedDate, shiftedMinute)
	}
}

func TestCombineDateMinuteRoundTrip(t *testing.T) {
	instant := time.Date(2026, 3, 2, 15, 30, 0, 0, Location())
	date, minute := SplitInstant(instant)

	back, err := CombineDateMinute(date, minute)
	if err != nil {
		t.Fatalf("CombineDateMinute failed: %v", err)
	}
	if !back.Equal(instant) {
		t.Errorf("round trip changed instant: %v != %v", back, instant)
	}
}

func TestCombineDateMinuteRejectsBadDate(t *testing.T) {
	if _, err := CombineDateMinute("02-03-2026", 0); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestMinuteToClock(t *testing.T) {
	cases := map[int]string{
		0:          "00:00",
		7 * 60:     "07:00",
		9*60 + 5:   "09:05",
		16 * 60:    "16:00",
		23*60 + 59: "23:59",
	}
	for minute, want := range cases {
		if got := MinuteToClock(minute); got != want {
			t.Errorf("MinuteToClock(%d) = %q, want %q", minute, got, want)
		}
	}
}
