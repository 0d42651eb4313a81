package utils

import (
	"fmt"
	"sync"
	"time"

	"boardroom/config"

	"go.uber.org/zap"
)

// DateLayout is the canonical booking date format ("YYYY-MM-DD").
const DateLayout = "2006-01-02"

var (
	locationOnce sync.Once
	location     *time.Location
)

// Location returns the location the booking calendar lives in, resolved once
// from the configured timezone. Unknown names fall back to time.Local.
func Location() *time.Location {
	locationOnce.Do(func() {
		name := config.AppConfig.Timezone
		if name == "" || name == "Local" {
			location = time.Local
			return
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			GetLogger().Warn("unknown timezone, using local time",
				zap.String("timezone", name), zap.Error(err))
			location = time.Local
			return
		}
		location = loc
	})
	return location
}

// SplitInstant converts an instant into its booking date string and
// minutes-from-midnight offset. The instant is normalized to the service
// location first, so the same absolute time always splits the same way no
// matter which UTC offset the client sent it in.
func SplitInstant(t time.Time) (string, int) {
	t = t.In(Location())
	return t.Format(DateLayout), t.Hour()*60 + t.Minute()
}

// CombineDateMinute rebuilds an instant from a booking date string and a
// minutes-from-midnight offset, in the service location.
func CombineDateMinute(date string, minute int) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, date, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid booking date %q: %w", date, err)
	}
	return day.Add(time.Duration(minute) * time.Minute), nil
}

// MinuteToClock renders a minutes-from-midnight offset as "HH:MM".
func MinuteToClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
