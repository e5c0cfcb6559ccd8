package appointment

import (
	"context"
	"time"

	"github.com/Ashugithubb/BookSaloon-Backend/internal/models"
)

type Repository interface {
	// -------- Business --------
	GetBusinessByID(
		ctx context.Context,
		id uint,
	) (*models.Business, error)

	GetBusinessByOwnerID(
		ctx context.Context,
		ownerID uint,
	) (*models.Business, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		businessID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Business hours --------
	GetBusinessHour(
		ctx context.Context,
		businessID uint,
		weekday int,
	) (*models.BusinessHour, error)

	// -------- Users --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Staff directory --------
	GetStaffByUserID(
		ctx context.Context,
		userID uint,
	) (*models.Staff, error)

	GetStaffByID(
		ctx context.Context,
		id uint,
	) (*models.Staff, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointmentIfFree(
		ctx context.Context,
		ap *models.Appointment,
		end time.Time,
	) error

	// -------- Appointment (read) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListBlockingAppointmentsForDay(
		ctx context.Context,
		businessID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForBusinessDay(
		ctx context.Context,
		businessID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Appointment, error)

	// -------- Appointment (state change) --------
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	BatchCancelExpiredPending(
		ctx context.Context,
		ownerID uint,
		now time.Time,
	) (int64, error)
}

// Notifier fans out lifecycle events to interested users. Delivery is
// best-effort; implementations must never surface errors to callers.
type Notifier interface {
	Notify(userID uint, event, title, message string, payload any)
}

// EmailSender delivers completion codes to customers out-of-band.
type EmailSender interface {
	SendCompletionCode(ctx context.Context, email, code string, ap *models.Appointment) error
}
