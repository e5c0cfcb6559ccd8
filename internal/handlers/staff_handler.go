package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ashugithubb/BookSaloon-Backend/internal/httperr"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/httpresp"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/middleware"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/models"
)

type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

type StaffCreateRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (h *StaffHandler) ownBusinessID(c *gin.Context) (uint, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var biz models.Business
	if err := h.db.Where("owner_id = ?", userID).First(&biz).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "No business for this account.")
		return 0, false
	}
	return biz.ID, true
}

func (h *StaffHandler) List(c *gin.Context) {
	bizID, ok := h.ownBusinessID(c)
	if !ok {
		return
	}

	var staff []models.Staff
	if err := h.db.
		Where("business_id = ?", bizID).
		Order("id ASC").
		Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Could not list staff.")
		return
	}

	httpresp.List(c, staff)
}

func (h *StaffHandler) Create(c *gin.Context) {
	bizID, ok := h.ownBusinessID(c)
	if !ok {
		return
	}

	var req StaffCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	staff := models.Staff{
		BusinessID: bizID,
		Name:       req.Name,
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:      req.Phone,
	}

	// If the email already belongs to an account, link the profile
	// right away; otherwise UserID stays null until the invitation is
	// accepted.
	if staff.Email != "" {
		var user models.User
		if err := h.db.Where("email = ?", staff.Email).First(&user).Error; err == nil {
			staff.UserID = &user.ID
		}
	}

	if err := h.db.Create(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_create_staff", "Could not create staff member.")
		return
	}

	c.JSON(http.StatusCreated, staff)
}
