package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ashugithubb/BookSaloon-Backend/internal/httperr"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/middleware"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/models"
)

type BusinessHoursHandler struct {
	db *gorm.DB
}

func NewBusinessHoursHandler(db *gorm.DB) *BusinessHoursHandler {
	return &BusinessHoursHandler{db: db}
}

type BusinessDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	IsOpen    bool   `json:"isOpen"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type BusinessHoursUpdateRequest struct {
	Days []BusinessDayConfig `json:"days" binding:"required"`
}

func (h *BusinessHoursHandler) ownBusinessID(c *gin.Context) (uint, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var biz models.Business
	if err := h.db.Where("owner_id = ?", userID).First(&biz).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "No business for this account.")
		return 0, false
	}
	return biz.ID, true
}

func (h *BusinessHoursHandler) Get(c *gin.Context) {
	bizID, ok := h.ownBusinessID(c)
	if !ok {
		return
	}

	var hours []models.BusinessHour
	if err := h.db.
		Where("business_id = ?", bizID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_get_business_hours", "Could not load business hours.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

// Update replaces the whole weekly schedule in one shot. Days without a
// row are treated as closed by the slot engine, so sending a partial
// week closes the missing days.
func (h *BusinessHoursHandler) Update(c *gin.Context) {
	bizID, ok := h.ownBusinessID(c)
	if !ok {
		return
	}

	var req BusinessHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if err := h.db.Where("business_id = ?", bizID).Delete(&models.BusinessHour{}).Error; err != nil {
		httperr.Internal(c, "failed_to_clear_existing_hours", "Could not update business hours.")
		return
	}

	var toCreate []models.BusinessHour
	for _, d := range req.Days {
		toCreate = append(toCreate, models.BusinessHour{
			BusinessID: bizID,
			Weekday:    d.Weekday,
			IsOpen:     d.IsOpen,
			StartTime:  d.StartTime,
			EndTime:    d.EndTime,
		})
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			httperr.Internal(c, "failed_to_save_business_hours", "Could not update business hours.")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
