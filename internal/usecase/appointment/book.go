package appointment

import (
	"context"
	"time"

	domain "github.com/Ashugithubb/BookSaloon-Backend/internal/domain/appointment"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/httperr"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	CustomerID uint
	BusinessID uint
	ServiceID  uint

	// Date is the requested slot start, business-local.
	Date time.Time

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo     domain.Repository
	notifier domain.Notifier
	now      func() time.Time
}

func NewBookAppointment(
	repo domain.Repository,
	notifier domain.Notifier,
) *BookAppointment {
	return &BookAppointment{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

func (uc *BookAppointment) WithClock(now func() time.Time) *BookAppointment {
	uc.now = now
	return uc
}

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	biz, err := uc.repo.GetBusinessByID(ctx, in.BusinessID)
	if err != nil {
		return nil, err
	}

	svc, err := uc.repo.GetService(ctx, in.BusinessID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	if in.Date.Before(uc.now()) {
		return nil, httperr.ErrValidation("date_in_past")
	}

	end := in.Date.Add(domain.ServiceDuration(svc.DurationMin))

	hour, err := uc.repo.GetBusinessHour(ctx, in.BusinessID, int(in.Date.Weekday()))
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			return nil, httperr.ErrValidation("outside_business_hours")
		}
		return nil, err
	}
	if !domain.WithinWindow(hour, in.Date, end) {
		return nil, httperr.ErrValidation("outside_business_hours")
	}

	ap := &models.Appointment{
		CustomerID: in.CustomerID,
		BusinessID: in.BusinessID,
		ServiceID:  svc.ID,
		Date:       in.Date,
		Status:     string(domain.InitialStatus()),
		Notes:      in.Notes,
	}

	// The repository locks overlapping rows before insert, so two
	// concurrent bookings for the same window cannot both land.
	if err := uc.repo.CreateAppointmentIfFree(ctx, ap, end); err != nil {
		return nil, err
	}

	uc.notifier.Notify(
		biz.OwnerID,
		"appointment_booked",
		"New appointment",
		"A new appointment was booked for "+svc.Name+".",
		map[string]any{"appointmentId": ap.ID},
	)

	return ap, nil
}
