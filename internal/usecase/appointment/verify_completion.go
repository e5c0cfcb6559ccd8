package appointment

import (
	"context"
	"time"

	domain "github.com/Ashugithubb/BookSaloon-Backend/internal/domain/appointment"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/httperr"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/models"
)

type VerifyCompletion struct {
	repo     domain.Repository
	notifier domain.Notifier
	now      func() time.Time
}

func NewVerifyCompletion(
	repo domain.Repository,
	notifier domain.Notifier,
) *VerifyCompletion {
	return &VerifyCompletion{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

func (uc *VerifyCompletion) WithClock(now func() time.Time) *VerifyCompletion {
	uc.now = now
	return uc
}

func (uc *VerifyCompletion) Execute(
	ctx context.Context,
	actorUserID uint,
	appointmentID uint,
	code string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	biz, err := uc.repo.GetBusinessByID(ctx, ap.BusinessID)
	if err != nil {
		return nil, err
	}

	actor := resolveActor(ctx, uc.repo, actorUserID, biz)
	if !actor.IsOwner && !actor.IsAssignedTo(ap) {
		return nil, httperr.ErrForbidden("transition_not_allowed")
	}

	if ap.CompletionOtp == nil {
		return nil, httperr.ErrValidation("no_pending_verification")
	}

	// Expired codes are rejected rather than honored: a stale code in
	// an inbox should not complete an appointment days later.
	if ap.OtpExpires != nil && uc.now().After(*ap.OtpExpires) {
		return nil, httperr.ErrValidation("otp_expired")
	}

	if *ap.CompletionOtp != code {
		return nil, httperr.ErrValidation("invalid_code")
	}

	domain.Apply(ap, domain.StatusCompleted)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	payload := map[string]any{"appointmentId": ap.ID, "status": ap.Status}
	uc.notifier.Notify(ap.CustomerID, "appointment_completed",
		"Appointment completed", "Your appointment was completed.", payload)

	if !actor.IsOwner && actor.Staff != nil {
		uc.notifier.Notify(biz.OwnerID, "appointment_completed",
			"Appointment completed", "A staff member completed an appointment.", payload)
	}

	return ap, nil
}
