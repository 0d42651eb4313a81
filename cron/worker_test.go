package cron

import (
	"encoding/json"
	"testing"
	"time"

	"boardroom/models"
	"boardroom/utils"
)

func TestReminderPayloadRoundTrip(t *testing.T) {
	in := ReminderPayload{
		BookingID: "b1",
		RoomID:    "room-1",
		UserID:    "u-alice",
		Purpose:   "sprint planning",
		Date:      "2026-03-02",
		Start:     9 * 60,
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var out ReminderPayload
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if out != in {
		t.Fatalf("payload changed in transit: %+v != %+v", out, in)
	}
}

func TestReminderFireAt(t *testing.T) {
	b := models.Booking{Date: "2026-03-02", Start: 9 * 60}

	fireAt, err := reminderFireAt(b)
	if err != nil {
		t.Fatalf("reminderFireAt failed: %v", err)
	}
	start, err := utils.CombineDateMinute(b.Date, b.Start)
	if err != nil {
		t.Fatalf("CombineDateMinute failed: %v", err)
	}
	if !fireAt.Equal(start.Add(-reminderLead)) {
		t.Fatalf("fireAt = %v, want %v before start", fireAt, reminderLead)
	}
}

func TestEnqueueBookingReminderSkipsImminentStart(t *testing.T) {
	// A booking already underway gets no reminder; the enqueue path must
	// return before touching the queue client.
	w := &Worker{}
	date, start := utils.SplitInstant(time.Now().Add(-time.Hour))
	b := models.Booking{ID: "b1", Date: date, Start: start}

	if err := w.EnqueueBookingReminder(b); err != nil {
		t.Fatalf("expected silent skip, got %v", err)
	}
}

func TestEnqueueBookingReminderRejectsBadDate(t *testing.T) {
	w := &Worker{}
	if err := w.EnqueueBookingReminder(models.Booking{Date: "not-a-date", Start: 9 * 60}); err == nil {
		t.Fatal("expected error for malformed booking date")
	}
}
