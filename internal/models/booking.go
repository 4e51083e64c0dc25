package models

import "time"

type Booking struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:36;uniqueIndex;not null" json:"code"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	UserName string `gorm:"size:100;not null" json:"user_name"`
	Phone    string `gorm:"size:20;not null" json:"phone"`

	// Service data is snapshotted at creation time so deleting a service
	// never changes the meaning of existing bookings.
	ServiceID       uint    `json:"service_id"`
	ServiceName     string  `gorm:"size:100;not null" json:"service_name"`
	ServiceDuration int     `gorm:"not null" json:"service_duration"`
	ServicePrice    float64 `json:"service_price"`

	// StartTime is the full booking instant (date + slot time).
	StartTime time.Time `gorm:"index;not null" json:"start_time"`
	Time      string    `gorm:"size:5;not null" json:"time"`

	Status       string `gorm:"size:20;default:'confirmed';index" json:"status"`
	ReminderSent bool   `gorm:"default:false" json:"reminder_sent"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
