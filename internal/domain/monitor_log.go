package domain

import (
	"time"
)

// LogMarker is the sentinel stored in the check-in/check-out columns for
// self-service logs. These are display markers, not real clock times.
const LogMarker = "Logged"

// MonitorLog records hours for one (monitor, date, period). MonitorName is a
// snapshot taken at insert time so history stays readable after the account
// is renamed or removed.
type MonitorLog struct {
	ID              int64     `json:"id"`
	MonitorID       int64     `json:"monitorId"`
	MonitorName     string    `json:"monitorName"`
	Date            string    `json:"date"` // YYYY-MM-DD
	Period          int32     `json:"period"`
	CheckIn         string    `json:"checkIn"`
	CheckOut        string    `json:"checkOut"`
	DurationMinutes int32     `json:"durationMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
