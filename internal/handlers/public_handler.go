package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ashugithubb/BookSaloon-Backend/internal/config"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/httperr"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/httpresp"
	"github.com/Ashugithubb/BookSaloon-Backend/internal/models"
	ucAppointment "github.com/Ashugithubb/BookSaloon-Backend/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db      *gorm.DB
	cfg     *config.Config
	slotsUC *ucAppointment.GetSlots
}

func NewPublicHandler(db *gorm.DB, cfg *config.Config, slotsUC *ucAppointment.GetSlots) *PublicHandler {
	return &PublicHandler{
		db:      db,
		cfg:     cfg,
		slotsUC: slotsUC,
	}
}

////////////////////////////////////////////////////////
// DISCOVERY
////////////////////////////////////////////////////////

func (h *PublicHandler) ListBusinesses(c *gin.Context) {
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Model(&models.Business{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(address) LIKE ?", like, like)
	}

	var businesses []models.Business
	if err := q.Order("id ASC").Find(&businesses).Error; err != nil {
		httperr.Internal(c, "failed_to_list_businesses", "Could not list businesses.")
		return
	}

	httpresp.List(c, businesses)
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	bizID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid business id.")
		return
	}

	var biz models.Business
	if err := h.db.First(&biz, bizID).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "Business not found.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("business_id = ? AND active = true", biz.ID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"business": biz,
		"services": services,
	})
}

////////////////////////////////////////////////////////
// SLOTS
////////////////////////////////////////////////////////

func (h *PublicHandler) Slots(c *gin.Context) {
	bizID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid business id.")
		return
	}

	dateStr := c.Query("date")
	serviceIDStr := c.Query("serviceId")
	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Date and serviceId are required.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
		return
	}

	date, err := parseDate(h.cfg, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	slots, err := h.slotsUC.Execute(
		c.Request.Context(),
		ucAppointment.GetSlotsInput{
			BusinessID: bizID,
			ServiceID:  uint(serviceID),
			Date:       date,
		},
	)
	if err != nil {
		httperr.From(c, err, "Could not compute available slots.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// REVIEWS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListReviews(c *gin.Context) {
	bizID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid business id.")
		return
	}

	var reviews []models.Review
	if err := h.db.
		Where("business_id = ?", bizID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Could not list reviews.")
		return
	}

	httpresp.List(c, reviews)
}
