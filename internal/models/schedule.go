package models

import "time"

// Schedule holds the nominal opening slots for one weekday.
// A missing row, or a row with an empty slot list, means the shop is closed.
type Schedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Day   string   `gorm:"size:20;uniqueIndex;not null" json:"day"`
	Slots []string `gorm:"serializer:json;type:jsonb" json:"slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
