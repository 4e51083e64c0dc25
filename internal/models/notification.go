package models

import "time"

// Notification is an in-app event shown on the admin dashboard.
type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Type    string `gorm:"size:20;default:'booking'" json:"type"`
	Title   string `gorm:"size:100;not null" json:"title"`
	Message string `gorm:"size:255;not null" json:"message"`

	BookingID *uint `json:"booking_id"`

	Unread bool `gorm:"default:true" json:"unread"`

	CreatedAt time.Time `json:"created_at"`
}
