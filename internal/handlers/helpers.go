package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barbershop-bg/booking-api/internal/httperr"
	"github.com/barbershop-bg/booking-api/internal/httpresp"
	"github.com/barbershop-bg/booking-api/internal/middleware"
)

// --------------------------------------------------
// Business error → HTTP mapping
// --------------------------------------------------

var businessStatus = map[string]func(*gin.Context, string, string){
	"missing_fields":          httperr.BadRequest,
	"invalid_phone":           httperr.BadRequest,
	"invalid_date_or_time":    httperr.BadRequest,
	"invalid_time_format":     httperr.BadRequest,
	"invalid_weekday":         httperr.BadRequest,
	"invalid_status":          httperr.BadRequest,
	"invalid_image":           httperr.BadRequest,
	"day_off":                 httperr.BadRequest,
	"time_not_in_schedule":    httperr.BadRequest,
	"past_closing_time":       httperr.BadRequest,
	"service_not_found":       httperr.NotFound,
	"booking_not_found":       httperr.NotFound,
	"schedule_not_found":      httperr.NotFound,
	"time_conflict":           httperr.Conflict,
	"invalid_state":           httperr.Conflict,
	"too_late_to_cancel":      httperr.Conflict,
	"booking_already_started": httperr.Conflict,
	"forbidden":               httperr.Forbidden,
}

var businessMessages = map[string]string{
	"missing_fields":          "All fields are required.",
	"invalid_phone":           "The phone number is not a valid Bulgarian number.",
	"invalid_date_or_time":    "Invalid date or time.",
	"day_off":                 "The shop is closed on that day.",
	"time_not_in_schedule":    "The requested time is not an advertised slot.",
	"past_closing_time":       "The service would run past closing time.",
	"service_not_found":       "Service not found.",
	"booking_not_found":       "Booking not found.",
	"schedule_not_found":      "No schedule found for that day.",
	"time_conflict":           "This time slot is already booked.",
	"invalid_state":           "The booking is no longer in a state that allows this change.",
	"too_late_to_cancel":      "Bookings can be cancelled up to 2 hours before the start time.",
	"booking_already_started": "This booking has already started.",
	"forbidden":               "You may only manage your own bookings.",
}

func writeBusinessError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Unexpected server error.")
		return
	}

	write, ok := businessStatus[be.Code]
	if !ok {
		httperr.BadRequest(c, be.Code, be.Code)
		return
	}

	msg := businessMessages[be.Code]
	if msg == "" {
		msg = be.Code
	}
	write(c, be.Code, msg)
}

// --------------------------------------------------
// Auth context
// --------------------------------------------------

func currentUserID(c *gin.Context) uint {
	v, _ := c.Get(middleware.ContextUserID)
	id, _ := v.(uint)
	return id
}

func currentUserRole(c *gin.Context) string {
	v, _ := c.Get(middleware.ContextUserRole)
	role, _ := v.(string)
	return role
}

// --------------------------------------------------
// Query parsing
// --------------------------------------------------

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid id parameter.")
		return 0, false
	}
	return uint(id), true
}

func parsePagination(c *gin.Context) (page int, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func paginationMeta(page, limit int, total int64) httpresp.Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return httpresp.Pagination{
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		TotalItems: total,
	}
}

// --------------------------------------------------
// Time parsing in the shop's clock
// --------------------------------------------------

func parseDateIn(loc *time.Location, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}
