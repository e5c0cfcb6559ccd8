package appointment

import (
	"time"

	"github.com/Ashugithubb/BookSaloon-Backend/internal/models"
)

// DayWindow resolves a business hour row into concrete open/close
// instants on the given date. The second return is false when the
// business is closed that weekday or the row is unusable.
func DayWindow(h *models.BusinessHour, date time.Time) (time.Time, time.Time, bool) {
	if h == nil || !h.IsOpen || h.StartTime == "" || h.EndTime == "" {
		return time.Time{}, time.Time{}, false
	}

	open, ok1 := atWallClock(date, h.StartTime)
	close, ok2 := atWallClock(date, h.EndTime)
	if !ok1 || !ok2 || !close.After(open) {
		return time.Time{}, time.Time{}, false
	}

	return open, close, true
}

// WithinWindow reports whether [start, end) fits entirely inside the
// open window for start's weekday.
func WithinWindow(h *models.BusinessHour, start, end time.Time) bool {
	open, close, ok := DayWindow(h, start)
	if !ok {
		return false
	}
	return !start.Before(open) && !end.After(close)
}

func atWallClock(date time.Time, hm string) (time.Time, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), true
}
