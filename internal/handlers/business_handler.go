package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ashugithubb/BookSaloon-Backend/internal/httperr"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/middleware"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/models"
)

type BusinessHandler struct {
	db *gorm.DB
}

func NewBusinessHandler(db *gorm.DB) *BusinessHandler {
	return &BusinessHandler{db: db}
}

func (h *BusinessHandler) ownBusiness(c *gin.Context) (*models.Business, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var biz models.Business
	if err := h.db.Where("owner_id = ?", userID).First(&biz).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "No business for this account.")
		return nil, false
	}
	return &biz, true
}

func (h *BusinessHandler) GetMine(c *gin.Context) {
	biz, ok := h.ownBusiness(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, biz)
}

type BusinessUpdateRequest struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
}

func (h *BusinessHandler) UpdateMine(c *gin.Context) {
	biz, ok := h.ownBusiness(c)
	if !ok {
		return
	}

	var req BusinessUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	if req.Name != nil {
		biz.Name = *req.Name
	}
	if req.Phone != nil {
		biz.Phone = *req.Phone
	}
	if req.Address != nil {
		biz.Address = *req.Address
	}
	if req.Description != nil {
		biz.Description = *req.Description
	}

	if err := h.db.Save(biz).Error; err != nil {
		httperr.Internal(c, "failed_to_update_business", "Could not update business.")
		return
	}

	c.JSON(http.StatusOK, biz)
}
