package feed

import (
	"gorm.io/gorm"

	"github.com/barbershop-bg/booking-api/internal/models"
)

// Event types shown on the admin dashboard.
const (
	TypeBooking      = "booking"
	TypeCancellation = "cancellation"
	TypeSystem       = "system"
)

type Writer struct {
	db *gorm.DB
}

func NewWriter(db *gorm.DB) *Writer {
	return &Writer{db: db}
}

func (w *Writer) Write(
	eventType string,
	title string,
	message string,
	bookingID *uint,
) error {

	n := models.Notification{
		Type:      eventType,
		Title:     title,
		Message:   message,
		BookingID: bookingID,
		Unread:    true,
	}

	return w.db.Create(&n).Error
}
