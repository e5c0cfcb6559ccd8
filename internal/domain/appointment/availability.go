package appointment

import "time"

// ===============================
// Slot computation
// ===============================

const (
	// SlotInterval is the fixed spacing of candidate start times.
	SlotInterval = 30 * time.Minute

	// DefaultDurationMin is used when a service has no duration set.
	DefaultDurationMin = 30
)

type Slot struct {
	Time      time.Time `json:"time"`
	Available bool      `json:"available"`
}

// Busy is an occupied half-open interval [Start, End).
type Busy struct {
	Start time.Time
	End   time.Time
}

// Overlaps applies the half-open interval rule: [s1,e1) and [s2,e2)
// overlap iff s1 < e2 && e1 > s2. Touching boundaries do not overlap,
// so back-to-back bookings are fine.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}

func overlapsAny(start, end time.Time, busy []Busy) bool {
	for _, b := range busy {
		if Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}

// BuildSlots walks the open window [open, close) on the SlotInterval
// grid and flags each candidate against the busy intervals. Candidates
// starting before now, or whose end would run past closing, are
// dropped entirely.
func BuildSlots(open, close time.Time, duration time.Duration, busy []Busy, now time.Time) []Slot {
	slots := []Slot{}

	for cur := open; cur.Before(close); cur = cur.Add(SlotInterval) {
		end := cur.Add(duration)
		if end.After(close) {
			continue
		}
		if cur.Before(now) {
			continue
		}

		slots = append(slots, Slot{
			Time:      cur,
			Available: !overlapsAny(cur, end, busy),
		})
	}

	return slots
}

// ServiceDuration normalizes a service's duration, falling back to the
// default when unset.
func ServiceDuration(durationMin int) time.Duration {
	if durationMin <= 0 {
		durationMin = DefaultDurationMin
	}
	return time.Duration(durationMin) * time.Minute
}
