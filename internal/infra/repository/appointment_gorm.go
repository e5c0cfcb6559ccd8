package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/Ashugithubb/BookSaloon-Backend/internal/domain/appointment"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/httperr"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func notFoundOr(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(code)
	}
	return err
}

// --------------------------------------------------
// Business
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBusinessByID(
	ctx context.Context,
	id uint,
) (*models.Business, error) {

	var biz models.Business
	if err := r.db.WithContext(ctx).First(&biz, id).Error; err != nil {
		return nil, notFoundOr(err, "business_not_found")
	}
	return &biz, nil
}

func (r *AppointmentGormRepository) GetBusinessByOwnerID(
	ctx context.Context,
	ownerID uint,
) (*models.Business, error) {

	var biz models.Business
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&biz).Error; err != nil {
		return nil, notFoundOr(err, "business_not_found")
	}
	return &biz, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	businessID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", serviceID, businessID).
		First(&svc).Error; err != nil {
		return nil, notFoundOr(err, "service_not_found")
	}
	return &svc, nil
}

// --------------------------------------------------
// Business hours
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBusinessHour(
	ctx context.Context,
	businessID uint,
	weekday int,
) (*models.BusinessHour, error) {

	var bh models.BusinessHour
	if err := r.db.WithContext(ctx).
		Where("business_id = ? AND weekday = ?", businessID, weekday).
		First(&bh).Error; err != nil {
		return nil, notFoundOr(err, "business_hour_not_found")
	}
	return &bh, nil
}

// --------------------------------------------------
// Users / staff directory
// --------------------------------------------------

func (r *AppointmentGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFoundOr(err, "user_not_found")
	}
	return &user, nil
}

func (r *AppointmentGormRepository) GetStaffByUserID(
	ctx context.Context,
	userID uint,
) (*models.Staff, error) {

	var staff models.Staff
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&staff).Error; err != nil {
		return nil, notFoundOr(err, "staff_not_found")
	}
	return &staff, nil
}

func (r *AppointmentGormRepository) GetStaffByID(
	ctx context.Context,
	id uint,
) (*models.Staff, error) {

	var staff models.Staff
	if err := r.db.WithContext(ctx).First(&staff, id).Error; err != nil {
		return nil, notFoundOr(err, "staff_not_found")
	}
	return &staff, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateAppointmentIfFree inserts the appointment inside a transaction
// that first locks conflicting rows FOR UPDATE. Two concurrent bookings
// for overlapping windows serialize on that lock, so at most one wins.
func (r *AppointmentGormRepository) CreateAppointmentIfFree(
	ctx context.Context,
	ap *models.Appointment,
	end time.Time,
) error {

	dayStart := time.Date(
		ap.Date.Year(), ap.Date.Month(), ap.Date.Day(),
		0, 0, 0, 0, ap.Date.Location(),
	)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Service").
			Where(
				"business_id = ? AND status IN ? AND date >= ? AND date < ?",
				ap.BusinessID,
				[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
				dayStart,
				end,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		for _, other := range conflicts {
			otherEnd := other.Date.Add(domain.ServiceDuration(other.Service.DurationMin))
			if domain.Overlaps(ap.Date, end, other.Date, otherEnd) {
				return httperr.ErrValidation("time_conflict")
			}
		}

		return tx.Create(ap).Error
	})
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		First(&ap, id).Error; err != nil {
		return nil, notFoundOr(err, "appointment_not_found")
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListBlockingAppointmentsForDay(
	ctx context.Context,
	businessID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"business_id = ? AND status IN ? AND date >= ? AND date < ?",
			businessID,
			[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
			start, end,
		).
		Order("date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForBusinessDay(
	ctx context.Context,
	businessID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Customer").
		Preload("Staff").
		Where(
			"business_id = ? AND date >= ? AND date < ?",
			businessID, start, end,
		).
		Order("date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Business").
		Where("customer_id = ?", customerID).
		Order("date DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// BatchCancelExpiredPending moves every stale PENDING appointment of the
// owner's business to CANCELLED in one statement and returns how many
// rows changed.
func (r *AppointmentGormRepository) BatchCancelExpiredPending(
	ctx context.Context,
	ownerID uint,
	now time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"business_id IN (?) AND status = ? AND date < ?",
			r.db.Model(&models.Business{}).Select("id").Where("owner_id = ?", ownerID),
			string(domain.StatusPending),
			now,
		).
		Update("status", string(domain.StatusCancelled))

	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
