package appointment

import (
	"context"
	"sync"
	"time"

	domain "github.com/Ashugithubb/BookSaloon-Backend/internal/domain/appointment"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/httperr"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/models"
)

// ------------------------------------------------------
// In-memory repository
// ------------------------------------------------------

type hourKey struct {
	businessID uint
	weekday    int
}

type fakeRepo struct {
	businesses   map[uint]*models.Business
	services     map[uint]*models.Service
	hours        map[hourKey]*models.BusinessHour
	users        map[uint]*models.User
	staff        map[uint]*models.Staff
	appointments map[uint]*models.Appointment

	// hoursErr, when set, is returned verbatim by GetBusinessHour.
	hoursErr error

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		businesses:   map[uint]*models.Business{},
		services:     map[uint]*models.Service{},
		hours:        map[hourKey]*models.BusinessHour{},
		users:        map[uint]*models.User{},
		staff:        map[uint]*models.Staff{},
		appointments: map[uint]*models.Appointment{},
	}
}

func (r *fakeRepo) addAppointment(ap models.Appointment) *models.Appointment {
	r.nextID++
	ap.ID = r.nextID
	if svc, ok := r.services[ap.ServiceID]; ok {
		ap.Service = *svc
	}
	cp := ap
	r.appointments[ap.ID] = &cp
	return &cp
}

func (r *fakeRepo) GetBusinessByID(_ context.Context, id uint) (*models.Business, error) {
	if b, ok := r.businesses[id]; ok {
		return b, nil
	}
	return nil, httperr.ErrNotFound("business_not_found")
}

func (r *fakeRepo) GetBusinessByOwnerID(_ context.Context, ownerID uint) (*models.Business, error) {
	for _, b := range r.businesses {
		if b.OwnerID == ownerID {
			return b, nil
		}
	}
	return nil, httperr.ErrNotFound("business_not_found")
}

func (r *fakeRepo) GetService(_ context.Context, businessID, serviceID uint) (*models.Service, error) {
	if s, ok := r.services[serviceID]; ok && s.BusinessID == businessID {
		return s, nil
	}
	return nil, httperr.ErrNotFound("service_not_found")
}

func (r *fakeRepo) GetBusinessHour(_ context.Context, businessID uint, weekday int) (*models.BusinessHour, error) {
	if r.hoursErr != nil {
		return nil, r.hoursErr
	}
	if h, ok := r.hours[hourKey{businessID, weekday}]; ok {
		return h, nil
	}
	return nil, httperr.ErrNotFound("business_hour_not_found")
}

func (r *fakeRepo) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, httperr.ErrNotFound("user_not_found")
}

func (r *fakeRepo) GetStaffByUserID(_ context.Context, userID uint) (*models.Staff, error) {
	for _, s := range r.staff {
		if s.UserID != nil && *s.UserID == userID {
			return s, nil
		}
	}
	return nil, httperr.ErrNotFound("staff_not_found")
}

func (r *fakeRepo) GetStaffByID(_ context.Context, id uint) (*models.Staff, error) {
	if s, ok := r.staff[id]; ok {
		return s, nil
	}
	return nil, httperr.ErrNotFound("staff_not_found")
}

func (r *fakeRepo) CreateAppointmentIfFree(_ context.Context, ap *models.Appointment, end time.Time) error {
	for _, other := range r.appointments {
		if other.BusinessID != ap.BusinessID || !domain.Status(other.Status).Blocks() {
			continue
		}
		otherEnd := other.Date.Add(domain.ServiceDuration(other.Service.DurationMin))
		if domain.Overlaps(ap.Date, end, other.Date, otherEnd) {
			return httperr.ErrValidation("time_conflict")
		}
	}

	r.nextID++
	ap.ID = r.nextID
	if svc, ok := r.services[ap.ServiceID]; ok {
		ap.Service = *svc
	}
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	if ap, ok := r.appointments[id]; ok {
		cp := *ap
		return &cp, nil
	}
	return nil, httperr.ErrNotFound("appointment_not_found")
}

func (r *fakeRepo) ListBlockingAppointmentsForDay(_ context.Context, businessID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.BusinessID != businessID || !domain.Status(ap.Status).Blocks() {
			continue
		}
		if ap.Date.Before(start) || !ap.Date.Before(end) {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForBusinessDay(_ context.Context, businessID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.BusinessID == businessID && !ap.Date.Before(start) && ap.Date.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForCustomer(_ context.Context, customerID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.CustomerID == customerID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) BatchCancelExpiredPending(_ context.Context, ownerID uint, now time.Time) (int64, error) {
	var count int64
	for _, ap := range r.appointments {
		biz, ok := r.businesses[ap.BusinessID]
		if !ok || biz.OwnerID != ownerID {
			continue
		}
		if ap.Status == string(domain.StatusPending) && ap.Date.Before(now) {
			ap.Status = string(domain.StatusCancelled)
			count++
		}
	}
	return count, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// ------------------------------------------------------
// Notifier / mailer fakes
// ------------------------------------------------------

type notified struct {
	UserID uint
	Event  string
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls []notified
}

func (n *fakeNotifier) Notify(userID uint, event, _, _ string, _ any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, notified{UserID: userID, Event: event})
}

func (n *fakeNotifier) sent() []notified {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notified(nil), n.calls...)
}

type fakeMailer struct {
	sentTo   []string
	lastCode string
	err      error
}

func (m *fakeMailer) SendCompletionCode(_ context.Context, email, code string, _ *models.Appointment) error {
	if m.err != nil {
		return m.err
	}
	m.sentTo = append(m.sentTo, email)
	m.lastCode = code
	return nil
}

// ------------------------------------------------------
// Scenario seed: one business, one owner, one linked staff
// ------------------------------------------------------

const (
	ownerUserID    = uint(1)
	customerUserID = uint(2)
	staffUserID    = uint(3)
	otherUserID    = uint(4)

	bizID     = uint(1)
	serviceID = uint(1)
	staffID   = uint(1)
)

func seedRepo() *fakeRepo {
	repo := newFakeRepo()

	repo.businesses[bizID] = &models.Business{ID: bizID, OwnerID: ownerUserID, Name: "Shear Genius"}

	repo.services[serviceID] = &models.Service{
		ID: serviceID, BusinessID: bizID, Name: "Haircut", DurationMin: 30,
	}

	repo.users[ownerUserID] = &models.User{ID: ownerUserID, Email: "owner@salon.test", Role: models.RoleOwner}
	repo.users[customerUserID] = &models.User{ID: customerUserID, Email: "customer@salon.test", Role: models.RoleCustomer}
	repo.users[staffUserID] = &models.User{ID: staffUserID, Email: "staff@salon.test", Role: models.RoleStaff}

	uid := staffUserID
	repo.staff[staffID] = &models.Staff{ID: staffID, BusinessID: bizID, UserID: &uid, Name: "Sam"}

	// Open Monday to Saturday, 09:00-18:00.
	for wd := 1; wd <= 6; wd++ {
		repo.hours[hourKey{bizID, wd}] = &models.BusinessHour{
			BusinessID: bizID, Weekday: wd, IsOpen: true, StartTime: "09:00", EndTime: "18:00",
		}
	}

	return repo
}

// 2026-09-14 is a Monday.
func monday(hour, min int) time.Time {
	return time.Date(2026, 9, 14, hour, min, 0, 0, time.UTC)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
