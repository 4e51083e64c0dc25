package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domainbooking "github.com/barbershop-bg/booking-api/internal/domain/booking"
	"github.com/barbershop-bg/booking-api/internal/dto"
	"github.com/barbershop-bg/booking-api/internal/httpresp"
	"github.com/barbershop-bg/booking-api/internal/middleware"
	"github.com/barbershop-bg/booking-api/internal/models"
	ucbooking "github.com/barbershop-bg/booking-api/internal/usecase/booking"
)

type BookingHandler struct {
	db *gorm.DB

	createUC       *ucbooking.CreateBooking
	availabilityUC *ucbooking.GetAvailability
	cancelUC       *ucbooking.CancelBooking
	statusUC       *ucbooking.UpdateBookingStatus

	loc *time.Location
}

func NewBookingHandler(
	db *gorm.DB,
	createUC *ucbooking.CreateBooking,
	availabilityUC *ucbooking.GetAvailability,
	cancelUC *ucbooking.CancelBooking,
	statusUC *ucbooking.UpdateBookingStatus,
	loc *time.Location,
) *BookingHandler {
	return &BookingHandler{
		db:             db,
		createUC:       createUC,
		availabilityUC: availabilityUC,
		cancelUC:       cancelUC,
		statusUC:       statusUC,
		loc:            loc,
	}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	UserName  string `json:"user_name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------- Handlers ---------

func (h *BookingHandler) AvailableSlots(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_date", "message": "Date query is required (e.g. ?date=2025-05-10)"})
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 32)
	if err != nil || serviceID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_service_id"})
		return
	}

	day, err := parseDateIn(h.loc, dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), day, uint(serviceID))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"date":            dateStr,
		"weekday":         string(domainbooking.WeekdayOf(day)),
		"available_slots": slots,
	})
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucbooking.CreateBookingInput{
		UserID:    currentUserID(c),
		UserName:  req.UserName,
		Phone:     req.Phone,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) MyBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := h.db.
		Where("user_id = ?", currentUserID(c)).
		Order("start_time DESC").
		Find(&bookings).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_bookings"})
		return
	}

	httpresp.List(c, toBookingDTOs(bookings))
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var b models.Booking
	if err := h.db.First(&b, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking_not_found"})
		return
	}

	// customers may only see their own bookings
	if currentUserRole(c) != middleware.RoleAdmin && b.UserID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) ListAll(c *gin.Context) {
	q := h.db.Model(&models.Booking{})

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	if dateStr := c.Query("date"); dateStr != "" {
		day, err := parseDateIn(h.loc, dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
			return
		}
		q = q.Where(
			"start_time >= ? AND start_time < ?",
			day, day.Add(24*time.Hour),
		)
	}

	var bookings []models.Booking
	if err := q.Order("start_time DESC").Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_bookings"})
		return
	}

	httpresp.List(c, toBookingDTOs(bookings))
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	b, err := h.statusUC.Execute(c.Request.Context(), id, req.Status)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// Delete is the admin hard-delete; normal lifecycle changes go through
// status updates so history stays intact.
func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	res := h.db.Delete(&models.Booking{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_booking"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking_not_found"})
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}

// --------- Mapping ---------

func toBookingDTOs(bookings []models.Booking) []dto.BookingListDTO {
	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:           b.ID,
			Code:         b.Code,
			UserName:     b.UserName,
			Phone:        b.Phone,
			ServiceName:  b.ServiceName,
			ServicePrice: b.ServicePrice,
			StartTime:    b.StartTime,
			Time:         b.Time,
			Status:       b.Status,
		})
	}
	return out
}
