package schedule

import (
	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
)

// PeriodCell is one renderable grid cell: a period on a date, the monitors
// assigned to it and the resolved session duration.
type PeriodCell struct {
	Period          int32                   `json:"period"`
	StartTime       string                  `json:"startTime"`
	EndTime         string                  `json:"endTime"`
	DurationMinutes int32                   `json:"durationMinutes"`
	Monitors        []domain.MonitorSummary `json:"monitors"`
	Closed          bool                    `json:"closed"`
}

// DaySchedule is one column of the composed grid.
//
// When Closed is set the whole day renders as a single block spanning all
// periods (ClosureEvents, first primary) and Cells is empty: full-day
// closures suppress per-period rendering entirely.
type DaySchedule struct {
	Date          string                 `json:"date"`
	Closed        bool                   `json:"closed"`
	ClosureEvents []domain.CalendarEvent `json:"closureEvents,omitempty"`
	ClosedRanges  []ClosedRange          `json:"closedRanges,omitempty"`
	Events        []domain.CalendarEvent `json:"events,omitempty"`
	Cells         []PeriodCell           `json:"cells"`
}
