package appointment

import (
	"context"
	"time"

	domain "github.com/Ashugithubb/BookSaloon-Backend/internal/domain/appointment"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/httperr"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/models"
	"github.com/rs/zerolog"
)

// InitiateCompletion starts the OTP-gated completion flow: a code goes
// to the customer by email and completion is only granted once the
// owner or assigned staff echoes it back.
type InitiateCompletion struct {
	repo domain.Repository
	mail domain.EmailSender
	log  zerolog.Logger
	now  func() time.Time
}

func NewInitiateCompletion(
	repo domain.Repository,
	mail domain.EmailSender,
	log zerolog.Logger,
) *InitiateCompletion {
	return &InitiateCompletion{
		repo: repo,
		mail: mail,
		log:  log,
		now:  time.Now,
	}
}

func (uc *InitiateCompletion) WithClock(now func() time.Time) *InitiateCompletion {
	uc.now = now
	return uc
}

func (uc *InitiateCompletion) Execute(
	ctx context.Context,
	actorUserID uint,
	appointmentID uint,
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

	if domain.Status(ap.Status).IsTerminal() {
		return nil, httperr.ErrValidation("invalid_state")
	}

	code, err := domain.GenerateCompletionCode()
	if err != nil {
		return nil, err
	}

	expires := uc.now().Add(domain.CompletionCodeTTL)
	ap.CompletionOtp = &code
	ap.OtpExpires = &expires

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// Email delivery is best-effort: the code is stored either way and
	// the owner can re-initiate if the mail never arrives.
	if customer, err := uc.repo.GetUserByID(ctx, ap.CustomerID); err == nil {
		if err := uc.mail.SendCompletionCode(ctx, customer.Email, code, ap); err != nil {
			uc.log.Warn().Err(err).
				Uint("appointment_id", ap.ID).
				Msg("completion code email failed")
		}
	}

	return ap, nil
}
