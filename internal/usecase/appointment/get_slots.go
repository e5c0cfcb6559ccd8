package appointment

import (
	"context"
	"time"

	domain "github.com/Ashugithubb/BookSaloon-Backend/internal/domain/appointment"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

type GetSlotsInput struct {
	BusinessID uint
	ServiceID  uint

	// Date is midnight of the requested day, business-local.
	Date time.Time
}

// ======================================================
// USE CASE
// ======================================================

type GetSlots struct {
	repo domain.Repository
	now  func() time.Time
}

func NewGetSlots(repo domain.Repository) *GetSlots {
	return &GetSlots{
		repo: repo,
		now:  time.Now,
	}
}

// WithClock overrides the time source. Used by tests.
func (uc *GetSlots) WithClock(now func() time.Time) *GetSlots {
	uc.now = now
	return uc
}

// Execute computes the day's candidate slots. Pure query: no side
// effects, identical inputs against an unchanged store give identical
// output.
func (uc *GetSlots) Execute(
	ctx context.Context,
	in GetSlotsInput,
) ([]domain.Slot, error) {

	svc, err := uc.repo.GetService(ctx, in.BusinessID, in.ServiceID)
	if err != nil {
		return nil, err
	}
	duration := domain.ServiceDuration(svc.DurationMin)

	weekday := int(in.Date.Weekday())
	hour, err := uc.repo.GetBusinessHour(ctx, in.BusinessID, weekday)
	if err != nil {
		// No row for the weekday means closed; anything else is a real
		// failure and must not masquerade as an empty day.
		if httperr.IsKind(err, httperr.KindNotFound) {
			return []domain.Slot{}, nil
		}
		return nil, err
	}

	open, close, ok := domain.DayWindow(hour, in.Date)
	if !ok {
		return []domain.Slot{}, nil
	}

	now := uc.now().In(in.Date.Location())
	if close.Before(now) {
		// The whole day is behind us.
		return []domain.Slot{}, nil
	}

	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0, in.Date.Location(),
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	existing, err := uc.repo.ListBlockingAppointmentsForDay(
		ctx,
		in.BusinessID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	busy := make([]domain.Busy, 0, len(existing))
	for _, ap := range existing {
		busy = append(busy, domain.Busy{
			Start: ap.Date,
			End:   ap.Date.Add(domain.ServiceDuration(ap.Service.DurationMin)),
		})
	}

	return domain.BuildSlots(open, close, duration, busy, now), nil
}
