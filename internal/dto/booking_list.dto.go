package dto

import "time"

type BookingListDTO struct {
	ID           uint      `json:"id"`
	Code         string    `json:"code"`
	UserName     string    `json:"user_name"`
	Phone        string    `json:"phone"`
	ServiceName  string    `json:"service_name"`
	ServicePrice float64   `json:"service_price"`
	StartTime    time.Time `json:"start_time"`
	Time         string    `json:"time"`
	Status       string    `json:"status"`
}
