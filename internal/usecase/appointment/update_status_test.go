package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Ashugithubb/BookSaloon-Backend/internal/domain/appointment"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/httperr"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/models"
)

func seedPending(repo *fakeRepo, staffAssigned bool) *models.Appointment {
	ap := models.Appointment{
		CustomerID: customerUserID,
		BusinessID: bizID,
		ServiceID:  serviceID,
		Date:       monday(10, 0),
		Status:     string(domain.StatusPending),
	}
	if staffAssigned {
		id := staffID
		ap.StaffID = &id
	}
	return repo.addAppointment(ap)
}

func TestUpdateStatus_InvalidTargetBeforeAuth(t *testing.T) {
	repo := seedRepo()
	notifier := &fakeNotifier{}
	uc := NewUpdateStatus(repo, notifier)

	// Even a nonexistent appointment id: validation runs first.
	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		ActorUserID:   otherUserID,
		AppointmentID: 999,
		Target:        "DONE",
	})

	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	assert.Empty(t, notifier.sent())
}

func TestUpdateStatus_AppointmentNotFound(t *testing.T) {
	repo := seedRepo()
	uc := NewUpdateStatus(repo, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		ActorUserID:   ownerUserID,
		AppointmentID: 42,
		Target:        "CONFIRMED",
	})
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestUpdateStatus_OwnerConfirms(t *testing.T) {
	repo := seedRepo()
	notifier := &fakeNotifier{}
	ap := seedPending(repo, false)

	uc := NewUpdateStatus(repo, notifier)
	updated, err := uc.Execute(context.Background(), UpdateStatusInput{
		ActorUserID:   ownerUserID,
		AppointmentID: ap.ID,
		Target:        "CONFIRMED",
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), updated.Status)

	calls := notifier.sent()
	require.Len(t, calls, 1)
	assert.Equal(t, customerUserID, calls[0].UserID)
	assert.Equal(t, "appointment_confirmed", calls[0].Event)
}

func TestUpdateStatus_AssignedStaffCompletesAndOwnerHears(t *testing.T) {
	repo := seedRepo()
	notifier := &fakeNotifier{}
	ap := seedPending(repo, true)

	uc := NewUpdateStatus(repo, notifier)
	updated, err := uc.Execute(context.Background(), UpdateStatusInput{
		ActorUserID:   staffUserID,
		AppointmentID: ap.ID,
		Target:        "COMPLETED",
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), updated.Status)

	calls := notifier.sent()
	require.Len(t, calls, 2)
	assert.Equal(t, customerUserID, calls[0].UserID)
	assert.Equal(t, ownerUserID, calls[1].UserID)
}

func TestUpdateStatus_CustomerMayOnlyCancel(t *testing.T) {
	repo := seedRepo()
	notifier := &fakeNotifier{}

	for _, target := range []string{"CONFIRMED", "COMPLETED", "NO_SHOW"} {
		ap := seedPending(repo, false)

		uc := NewUpdateStatus(repo, notifier)
		_, err := uc.Execute(context.Background(), UpdateStatusInput{
			ActorUserID:   customerUserID,
			AppointmentID: ap.ID,
			Target:        target,
		})

		assert.True(t, httperr.IsKind(err, httperr.KindForbidden), "customer → %s", target)

		stored, _ := repo.GetAppointmentByID(context.Background(), ap.ID)
		assert.Equal(t, string(domain.StatusPending), stored.Status, "status must not change")
	}

	assert.Empty(t, notifier.sent())
}

func TestUpdateStatus_CustomerCancelNotifiesBusinessSide(t *testing.T) {
	repo := seedRepo()
	notifier := &fakeNotifier{}
	ap := seedPending(repo, true)

	uc := NewUpdateStatus(repo, notifier)
	updated, err := uc.Execute(context.Background(), UpdateStatusInput{
		ActorUserID:   customerUserID,
		AppointmentID: ap.ID,
		Target:        "CANCELLED",
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), updated.Status)

	calls := notifier.sent()
	require.Len(t, calls, 2)
	assert.Equal(t, ownerUserID, calls[0].UserID)
	assert.Equal(t, staffUserID, calls[1].UserID)
}

func TestUpdateStatus_StaffCancelForbidden(t *testing.T) {
	repo := seedRepo()
	ap := seedPending(repo, true)

	uc := NewUpdateStatus(repo, &fakeNotifier{})
	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		ActorUserID:   staffUserID,
		AppointmentID: ap.ID,
		Target:        "CANCELLED",
	})

	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
}

func TestUpdateStatus_UnassignedStaffForbidden(t *testing.T) {
	repo := seedRepo()
	ap := seedPending(repo, false)

	uc := NewUpdateStatus(repo, &fakeNotifier{})
	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		ActorUserID:   staffUserID,
		AppointmentID: ap.ID,
		Target:        "CONFIRMED",
	})

	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
}

func TestUpdateStatus_TerminalStateRejected(t *testing.T) {
	repo := seedRepo()
	ap := seedPending(repo, false)
	ap.Status = string(domain.StatusCompleted)
	require.NoError(t, repo.UpdateAppointment(context.Background(), ap))

	uc := NewUpdateStatus(repo, &fakeNotifier{})
	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		ActorUserID:   ownerUserID,
		AppointmentID: ap.ID,
		Target:        "CONFIRMED",
	})

	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
}
