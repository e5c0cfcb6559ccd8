package appointment

import "github.com/Ashugithubb/BookSaloon-Backend/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
	StatusNoShow    Status = "NO_SHOW"
)

func InitialStatus() Status {
	return StatusPending
}

// IsTerminal reports whether no further transitions are defined on s.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

// Blocks reports whether an appointment in status s occupies its slot.
// Cancelled, completed and no-show appointments never block a booking.
func (s Status) Blocks() bool {
	return s == StatusPending || s == StatusConfirmed
}

// BlockingStatuses are the statuses counted in overlap checks.
func BlockingStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed}
}

// ParseTarget validates a requested transition target. PENDING is the
// initial state and is never a valid target.
func ParseTarget(raw string) (Status, error) {
	switch Status(raw) {
	case StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return Status(raw), nil
	}
	return "", httperr.ErrValidation("invalid_status")
}
