package appointment

import (
	"github.com/Ashugithubb/BookSaloon-Backend/internal/httperr"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/models"
)

// ===============================
// Actors
// ===============================

// Actor is the resolved identity of the user requesting a transition,
// relative to one appointment's business.
type Actor struct {
	UserID uint

	// IsOwner is true when the user owns the appointment's business.
	IsOwner bool

	// Staff is the user's staff profile in the appointment's business,
	// nil when the user has none there.
	Staff *models.Staff
}

func (a Actor) IsCustomerOf(ap *models.Appointment) bool {
	return ap.CustomerID == a.UserID
}

func (a Actor) IsAssignedTo(ap *models.Appointment) bool {
	return a.Staff != nil && ap.StaffID != nil && *ap.StaffID == a.Staff.ID
}

// ===============================
// Transition table
// ===============================

type rule struct {
	Owner         bool
	AssignedStaff bool
	Customer      bool
}

// transitions is the single place transition rules live. Staff may never
// cancel; customers may only cancel.
var transitions = map[Status]rule{
	StatusConfirmed: {Owner: true, AssignedStaff: true},
	StatusCancelled: {Owner: true, Customer: true},
	StatusCompleted: {Owner: true, AssignedStaff: true},
	StatusNoShow:    {Owner: true, AssignedStaff: true},
}

// Authorize decides whether actor may move ap into target. The target
// is assumed to have passed ParseTarget already; role checks run before
// state checks so an unrelated actor learns nothing about the
// appointment's state.
func Authorize(actor Actor, ap *models.Appointment, target Status) error {
	r, ok := transitions[target]
	if !ok {
		return httperr.ErrValidation("invalid_status")
	}

	allowed := (r.Owner && actor.IsOwner) ||
		(r.AssignedStaff && actor.IsAssignedTo(ap)) ||
		(r.Customer && actor.IsCustomerOf(ap))
	if !allowed {
		return httperr.ErrForbidden("transition_not_allowed")
	}

	if Status(ap.Status).IsTerminal() {
		return httperr.ErrValidation("invalid_state")
	}

	return nil
}

// Apply moves ap into target and drops any outstanding completion
// verification. Callers must Authorize first.
func Apply(ap *models.Appointment, target Status) {
	ap.Status = string(target)
	ap.CompletionOtp = nil
	ap.OtpExpires = nil
}
