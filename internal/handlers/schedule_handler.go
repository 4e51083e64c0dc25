package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/barbershop-bg/booking-api/internal/domain/booking"
	"github.com/barbershop-bg/booking-api/internal/httpresp"
	"github.com/barbershop-bg/booking-api/internal/models"
)

type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

// --------- Requests ---------

type CreateScheduleRequest struct {
	Day   string   `json:"day" binding:"required"`
	Slots []string `json:"slots" binding:"required"`
}

type UpdateScheduleRequest struct {
	Slots []string `json:"slots" binding:"required"`
}

// normalizeSlots validates the "HH:MM" format, drops duplicates and
// returns the slots chronologically sorted, which is the order the
// availability computation relies on.
func normalizeSlots(slots []string) ([]string, bool) {
	seen := make(map[string]bool, len(slots))
	out := make([]string, 0, len(slots))

	for _, s := range slots {
		if _, err := time.Parse("15:04", s); err != nil {
			return nil, false
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}

	sort.Strings(out)
	return out, true
}

// --------- Handlers ---------

func (h *ScheduleHandler) Create(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	day, err := domain.ParseWeekday(req.Day)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	slots, ok := normalizeSlots(req.Slots)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time_format"})
		return
	}

	var count int64
	h.db.Model(&models.Schedule{}).Where("day = ?", string(day)).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "schedule_already_exists"})
		return
	}

	schedule := models.Schedule{
		Day:   string(day),
		Slots: slots,
	}

	if err := h.db.Create(&schedule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_schedule"})
		return
	}

	httpresp.Created(c, schedule)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	day, err := domain.ParseWeekday(c.Param("day"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	slots, ok := normalizeSlots(req.Slots)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time_format"})
		return
	}

	var schedule models.Schedule
	if err := h.db.Where("day = ?", string(day)).First(&schedule).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule_not_found"})
		return
	}

	schedule.Slots = slots
	if err := h.db.Save(&schedule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_schedule"})
		return
	}

	httpresp.OK(c, schedule)
}

func (h *ScheduleHandler) GetByDay(c *gin.Context) {
	day, err := domain.ParseWeekday(c.Param("day"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	var schedule models.Schedule
	if err := h.db.Where("day = ?", string(day)).First(&schedule).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule_not_found"})
		return
	}

	httpresp.OK(c, schedule)
}

func (h *ScheduleHandler) List(c *gin.Context) {
	var schedules []models.Schedule
	if err := h.db.Find(&schedules).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_schedules"})
		return
	}

	httpresp.List(c, schedules)
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	day, err := domain.ParseWeekday(c.Param("day"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	res := h.db.Where("day = ?", string(day)).Delete(&models.Schedule{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_schedule"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule_not_found"})
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}
