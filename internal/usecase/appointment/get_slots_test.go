package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Ashugithubb/BookSaloon-Backend/internal/domain/appointment"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/httperr"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/models"
)

func TestGetSlots_EmptyOpenDay(t *testing.T) {
	repo := seedRepo()
	uc := NewGetSlots(repo).WithClock(fixedClock(monday(8, 0)))

	slots, err := uc.Execute(context.Background(), GetSlotsInput{
		BusinessID: bizID,
		ServiceID:  serviceID,
		Date:       monday(0, 0),
	})

	require.NoError(t, err)
	require.Len(t, slots, 18)
	assert.True(t, slots[0].Time.Equal(monday(9, 0)))
	assert.True(t, slots[17].Time.Equal(monday(17, 30)))
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestGetSlots_HourLongBookingBlocksTwoSlots(t *testing.T) {
	repo := seedRepo()

	repo.services[2] = &models.Service{ID: 2, BusinessID: bizID, Name: "Color", DurationMin: 60}
	repo.addAppointment(models.Appointment{
		CustomerID: customerUserID,
		BusinessID: bizID,
		ServiceID:  2,
		Date:       monday(10, 0),
		Status:     string(domain.StatusConfirmed),
	})

	uc := NewGetSlots(repo).WithClock(fixedClock(monday(8, 0)))

	slots, err := uc.Execute(context.Background(), GetSlotsInput{
		BusinessID: bizID,
		ServiceID:  serviceID,
		Date:       monday(0, 0),
	})
	require.NoError(t, err)

	byTime := map[time.Time]bool{}
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}

	assert.True(t, byTime[monday(9, 30)], "slot ending at booking start must stay free")
	assert.False(t, byTime[monday(10, 0)])
	assert.False(t, byTime[monday(10, 30)])
	assert.True(t, byTime[monday(11, 0)])
}

func TestGetSlots_NonBlockingStatusesIgnored(t *testing.T) {
	repo := seedRepo()

	for _, status := range []domain.Status{domain.StatusCancelled, domain.StatusCompleted, domain.StatusNoShow} {
		repo.addAppointment(models.Appointment{
			BusinessID: bizID,
			ServiceID:  serviceID,
			Date:       monday(10, 0),
			Status:     string(status),
		})
	}

	uc := NewGetSlots(repo).WithClock(fixedClock(monday(8, 0)))

	slots, err := uc.Execute(context.Background(), GetSlotsInput{
		BusinessID: bizID,
		ServiceID:  serviceID,
		Date:       monday(0, 0),
	})
	require.NoError(t, err)

	for _, s := range slots {
		assert.True(t, s.Available, "slot %s blocked by a non-blocking status", s.Time)
	}
}

func TestGetSlots_ClosedDay(t *testing.T) {
	repo := seedRepo()
	uc := NewGetSlots(repo).WithClock(fixedClock(monday(8, 0)))

	// Sunday has no business hour row at all.
	sunday := monday(0, 0).AddDate(0, 0, -1)

	slots, err := uc.Execute(context.Background(), GetSlotsInput{
		BusinessID: bizID,
		ServiceID:  serviceID,
		Date:       sunday,
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetSlots_DayFullyInPast(t *testing.T) {
	repo := seedRepo()
	uc := NewGetSlots(repo).WithClock(fixedClock(monday(8, 0).AddDate(0, 0, 7)))

	slots, err := uc.Execute(context.Background(), GetSlotsInput{
		BusinessID: bizID,
		ServiceID:  serviceID,
		Date:       monday(0, 0),
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetSlots_HoursLookupFailurePropagates(t *testing.T) {
	repo := seedRepo()
	repo.hoursErr = errors.New("pq: connection refused")

	uc := NewGetSlots(repo).WithClock(fixedClock(monday(8, 0)))

	slots, err := uc.Execute(context.Background(), GetSlotsInput{
		BusinessID: bizID,
		ServiceID:  serviceID,
		Date:       monday(0, 0),
	})

	require.Error(t, err, "a store failure must not read as a closed day")
	assert.ErrorContains(t, err, "connection refused")
	assert.Nil(t, slots)
}

func TestGetSlots_UnknownService(t *testing.T) {
	repo := seedRepo()
	uc := NewGetSlots(repo)

	_, err := uc.Execute(context.Background(), GetSlotsInput{
		BusinessID: bizID,
		ServiceID:  999,
		Date:       monday(0, 0),
	})
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestGetSlots_Idempotent(t *testing.T) {
	repo := seedRepo()
	repo.addAppointment(models.Appointment{
		BusinessID: bizID,
		ServiceID:  serviceID,
		Date:       monday(14, 0),
		Status:     string(domain.StatusPending),
	})

	uc := NewGetSlots(repo).WithClock(fixedClock(monday(8, 0)))
	in := GetSlotsInput{BusinessID: bizID, ServiceID: serviceID, Date: monday(0, 0)}

	first, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
