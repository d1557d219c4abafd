package models

import "time"

type Booking struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	Service   string    `json:"service" db:"service"`
	Date      string    `json:"date" db:"date"` // YYYY-MM-DD
	Time      string    `json:"time" db:"time"` // HH:MM
	Notes     string    `json:"notes" db:"notes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
