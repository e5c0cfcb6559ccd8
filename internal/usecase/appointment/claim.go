package appointment

import (
	"context"

	domain "github.com/Ashugithubb/BookSaloon-Backend/internal/domain/appointment"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/httperr"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/models"
)

// ClaimAppointment lets a staff member take an unassigned appointment
// of their own business.
type ClaimAppointment struct {
	repo     domain.Repository
	notifier domain.Notifier
}

func NewClaimAppointment(
	repo domain.Repository,
	notifier domain.Notifier,
) *ClaimAppointment {
	return &ClaimAppointment{
		repo:     repo,
		notifier: notifier,
	}
}

func (uc *ClaimAppointment) Execute(
	ctx context.Context,
	actorUserID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	staff, err := uc.repo.GetStaffByUserID(ctx, actorUserID)
	if err != nil {
		return nil, httperr.ErrForbidden("staff_profile_required")
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if staff.BusinessID != ap.BusinessID {
		return nil, httperr.ErrForbidden("wrong_business")
	}

	if ap.StaffID != nil {
		return nil, httperr.ErrValidation("already_assigned")
	}

	ap.StaffID = &staff.ID

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"appointmentId": ap.ID,
		"staffId":       staff.ID,
	}

	// Two independent events; both are attempted regardless of the
	// other's outcome.
	if biz, err := uc.repo.GetBusinessByID(ctx, ap.BusinessID); err == nil {
		uc.notifier.Notify(biz.OwnerID, "appointment_claimed",
			"Appointment claimed", staff.Name+" claimed an appointment.", payload)
	}
	uc.notifier.Notify(ap.CustomerID, "staff_assigned",
		"Staff assigned", staff.Name+" will handle your appointment.", payload)

	return ap, nil
}
