package appointment

import (
	"context"
	"strings"

	domain "github.com/Ashugithubb/BookSaloon-Backend/internal/domain/appointment"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpdateStatusInput struct {
	ActorUserID   uint
	AppointmentID uint

	// Target is the raw requested status, validated before anything
	// else is looked at.
	Target string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateStatus struct {
	repo     domain.Repository
	notifier domain.Notifier
}

func NewUpdateStatus(
	repo domain.Repository,
	notifier domain.Notifier,
) *UpdateStatus {
	return &UpdateStatus{
		repo:     repo,
		notifier: notifier,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	target, err := domain.ParseTarget(in.Target)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	biz, err := uc.repo.GetBusinessByID(ctx, ap.BusinessID)
	if err != nil {
		return nil, err
	}

	actor := resolveActor(ctx, uc.repo, in.ActorUserID, biz)

	if err := domain.Authorize(actor, ap, target); err != nil {
		return nil, err
	}

	domain.Apply(ap, target)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.fanOut(ctx, actor, ap, biz, target)

	return ap, nil
}

// fanOut emits the notification side effects of a transition. Delivery
// failures stay inside the notifier; the transition already succeeded.
func (uc *UpdateStatus) fanOut(
	ctx context.Context,
	actor domain.Actor,
	ap *models.Appointment,
	biz *models.Business,
	target domain.Status,
) {

	event := "appointment_" + strings.ToLower(string(target))
	title := "Appointment " + strings.ToLower(string(target))
	payload := map[string]any{
		"appointmentId": ap.ID,
		"status":        ap.Status,
	}

	if target == domain.StatusCancelled && actor.IsCustomerOf(ap) {
		// Customer cancelled: the business side needs to know.
		uc.notifier.Notify(biz.OwnerID, event, title,
			"The customer cancelled their appointment.", payload)

		if ap.StaffID != nil {
			if staff, err := uc.repo.GetStaffByID(ctx, *ap.StaffID); err == nil && staff.UserID != nil {
				uc.notifier.Notify(*staff.UserID, event, title,
					"An appointment assigned to you was cancelled.", payload)
			}
		}
		return
	}

	uc.notifier.Notify(ap.CustomerID, event, title,
		"Your appointment is now "+strings.ToLower(string(target))+".", payload)

	// A staff-driven change is also surfaced to the owner.
	if !actor.IsOwner && actor.Staff != nil {
		uc.notifier.Notify(biz.OwnerID, event, title,
			"A staff member updated an appointment.", payload)
	}
}
