package notification

import (
	"fmt"

	"github.com/barbershop-bg/booking-api/internal/models"
)

// Customer-facing texts stay in Bulgarian, matching the shop's audience.

func ConfirmationMessage(b *models.Booking) string {
	return fmt.Sprintf(
		"Вашата резервация за %s на %s в %s ч. е потвърдена. Код: %s",
		b.ServiceName,
		b.StartTime.Format("02.01.2006"),
		b.Time,
		b.Code,
	)
}

func ReminderMessage(b *models.Booking) string {
	return fmt.Sprintf("Напомняне: Имате резервация в %s ч. днес. Очакваме Ви!", b.Time)
}

func CancellationMessage(b *models.Booking) string {
	return fmt.Sprintf(
		"Вашата резервация за %s на %s в %s ч. беше отменена.",
		b.ServiceName,
		b.StartTime.Format("02.01.2006"),
		b.Time,
	)
}
