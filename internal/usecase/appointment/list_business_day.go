package appointment

import (
	"context"
	"time"

	domain "github.com/Ashugithubb/BookSaloon-Backend/internal/domain/appointment"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/dto"
)

// ListBusinessDay is the owner/staff day view of a business's calendar.
type ListBusinessDay struct {
	repo domain.Repository
}

func NewListBusinessDay(repo domain.Repository) *ListBusinessDay {
	return &ListBusinessDay{repo: repo}
}

func (uc *ListBusinessDay) Execute(
	ctx context.Context,
	businessID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	start := time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0, date.Location(),
	)
	end := start.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsForBusinessDay(
		ctx,
		businessID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		item := dto.AppointmentListDTO{
			ID:           ap.ID,
			Date:         ap.Date,
			Status:       ap.Status,
			ServiceName:  ap.Service.Name,
			CustomerName: ap.Customer.Name,
		}
		if ap.Staff != nil {
			item.StaffName = ap.Staff.Name
		}
		out = append(out, item)
	}

	return out, nil
}
