package domain

import (
	"strings"
	"time"
)

type EventType struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Color         string `json:"color"`
	Icon          string `json:"icon"`
	ClosesLibrary bool   `json:"closesLibrary"`
}

// Closes reports whether events of this type close the library. Older rows
// predate the closesLibrary flag, so a name-based fallback is kept for them.
func (t *EventType) Closes() bool {
	if t.ClosesLibrary {
		return true
	}
	switch strings.ToLower(t.Name) {
	case "closure", "holiday", "maintenance":
		return true
	}
	return false
}

// CalendarEvent spans an inclusive date range. If AllDay is set or neither
// period bound is present, the event affects the whole day for every date in
// range; otherwise only periods in [PeriodStart, PeriodEnd].
type CalendarEvent struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	TypeID      int64     `json:"typeId"`
	Type        EventType `json:"type"`
	StartDate   string    `json:"startDate"` // YYYY-MM-DD
	EndDate     string    `json:"endDate"`   // YYYY-MM-DD
	AllDay      bool      `json:"allDay"`
	PeriodStart *int32    `json:"periodStart,omitempty"`
	PeriodEnd   *int32    `json:"periodEnd,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CoversWholeDay reports whether the event suppresses the entire day rather
// than a period range.
func (e *CalendarEvent) CoversWholeDay() bool {
	return e.AllDay || (e.PeriodStart == nil && e.PeriodEnd == nil)
}

// PeriodRange returns the affected period range for a partial event.
// PeriodEnd defaults to PeriodStart when absent.
func (e *CalendarEvent) PeriodRange() (int32, int32) {
	if e.PeriodStart == nil {
		return 0, 0
	}
	start := *e.PeriodStart
	end := start
	if e.PeriodEnd != nil {
		end = *e.PeriodEnd
	}
	return start, end
}
