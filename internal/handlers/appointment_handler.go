package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ashugithubb/BookSaloon-Backend/internal/config"
	domain "github.com/Ashugithubb/BookSaloon-Backend/internal/domain/appointment"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/httperr"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/httpresp"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/middleware"
	ucAppointment "github.com/Ashugithubb/BookSaloon-Backend/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	cfg *config.Config

	repo domain.Repository

	bookUC     *ucAppointment.BookAppointment
	statusUC   *ucAppointment.UpdateStatus
	initiateUC *ucAppointment.InitiateCompletion
	verifyUC   *ucAppointment.VerifyCompletion
	claimUC    *ucAppointment.ClaimAppointment
	cleanupUC  *ucAppointment.CleanupExpiredPending
	dayListUC  *ucAppointment.ListBusinessDay
}

func NewAppointmentHandler(
	cfg *config.Config,
	repo domain.Repository,
	bookUC *ucAppointment.BookAppointment,
	statusUC *ucAppointment.UpdateStatus,
	initiateUC *ucAppointment.InitiateCompletion,
	verifyUC *ucAppointment.VerifyCompletion,
	claimUC *ucAppointment.ClaimAppointment,
	cleanupUC *ucAppointment.CleanupExpiredPending,
	dayListUC *ucAppointment.ListBusinessDay,
) *AppointmentHandler {
	return &AppointmentHandler{
		cfg:        cfg,
		repo:       repo,
		bookUC:     bookUC,
		statusUC:   statusUC,
		initiateUC: initiateUC,
		verifyUC:   verifyUC,
		claimUC:    claimUC,
		cleanupUC:  cleanupUC,
		dayListUC:  dayListUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	BusinessID uint   `json:"businessId" binding:"required"`
	ServiceID  uint   `json:"serviceId" binding:"required"`
	Date       string `json:"date" binding:"required"` // YYYY-MM-DD
	Time       string `json:"time" binding:"required"` // HH:mm
	Notes      string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type VerifyCompletionRequest struct {
	Code string `json:"code" binding:"required"`
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	start, err := parseDateTime(h.cfg, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		CustomerID: userID,
		BusinessID: req.BusinessID,
		ServiceID:  req.ServiceID,
		Date:       start,
		Notes:      req.Notes,
	})
	if err != nil {
		httperr.From(c, err, "Could not book appointment.")
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// LISTS
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	aps, err := h.repo.ListAppointmentsForCustomer(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListBusinessDay(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	date, err := parseDate(h.cfg, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	biz, err := h.businessForActor(c, userID)
	if err != nil {
		httperr.From(c, err, "No business for this account.")
		return
	}

	out, err := h.dayListUC.Execute(c.Request.Context(), biz, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, out)
}

// businessForActor resolves the business an owner or staff member acts
// for. Owners resolve through ownership, staff through their profile.
func (h *AppointmentHandler) businessForActor(c *gin.Context, userID uint) (uint, error) {
	ctx := c.Request.Context()

	if biz, err := h.repo.GetBusinessByOwnerID(ctx, userID); err == nil {
		return biz.ID, nil
	}
	if staff, err := h.repo.GetStaffByUserID(ctx, userID); err == nil {
		return staff.BusinessID, nil
	}
	return 0, httperr.ErrForbidden("no_business_for_user")
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	apID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	ap, err := h.statusUC.Execute(c.Request.Context(), ucAppointment.UpdateStatusInput{
		ActorUserID:   userID,
		AppointmentID: apID,
		Target:        req.Status,
	})
	if err != nil {
		httperr.From(c, err, "Could not update appointment status.")
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// OTP COMPLETION
// ======================================================

func (h *AppointmentHandler) InitiateCompletion(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	apID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.initiateUC.Execute(c.Request.Context(), userID, apID)
	if err != nil {
		httperr.From(c, err, "Could not start completion verification.")
		return
	}

	c.JSON(200, gin.H{
		"appointment": ap,
		"message":     "A completion code was sent to the customer.",
	})
}

func (h *AppointmentHandler) VerifyCompletion(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	apID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req VerifyCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Code is required.")
		return
	}

	ap, err := h.verifyUC.Execute(c.Request.Context(), userID, apID, req.Code)
	if err != nil {
		httperr.From(c, err, "Could not verify completion code.")
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// CLAIM
// ======================================================

func (h *AppointmentHandler) Claim(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	apID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.claimUC.Execute(c.Request.Context(), userID, apID)
	if err != nil {
		httperr.From(c, err, "Could not claim appointment.")
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// CLEANUP
// ======================================================

func (h *AppointmentHandler) Cleanup(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	count, err := h.cleanupUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "cleanup_failed", "Could not clean up stale appointments.")
		return
	}

	c.JSON(200, gin.H{"cancelled": count})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, strconv.ErrRange
	}
	return uint(id), nil
}
