package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ashugithubb/BookSaloon-Backend/internal/middleware"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	resp := gin.H{"user": user}

	var biz models.Business
	if err := h.db.Where("owner_id = ?", userID).First(&biz).Error; err == nil {
		resp["business"] = biz
	}

	var staff models.Staff
	if err := h.db.Where("user_id = ?", userID).First(&staff).Error; err == nil {
		resp["staff"] = staff
	}

	c.JSON(http.StatusOK, resp)
}
