package domain

import (
	"time"
)

// Shift is the assignment of monitors to one (date, period) cell. Exactly one
// row exists per cell; a cell with nobody assigned has no row at all.
type Shift struct {
	ID        int64            `json:"id"`
	Date      string           `json:"date"` // YYYY-MM-DD
	Period    int32            `json:"period"`
	Monitors  []MonitorSummary `json:"monitors"`
	CreatedAt time.Time        `json:"createdAt"`
}
