package schedule

import (
	"sort"
	"time"

	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
)

const dateLayout = "2006-01-02"

// ComposeWeek joins the period catalog, the week's shifts and the calendar
// into a renderable Monday-to-Friday grid starting at start.
func ComposeWeek(start time.Time, catalog []domain.PeriodDefinition, shifts []*domain.Shift, events []*domain.CalendarEvent) []DaySchedule {
	days := make([]DaySchedule, 0, 5)
	for i := 0; i < 5; i++ {
		date := start.AddDate(0, 0, i)
		days = append(days, composeDay(date, catalog, shifts, events))
	}
	return days
}

// ComposeMonth builds the grid for every day of the given month.
func ComposeMonth(year int, month time.Month, catalog []domain.PeriodDefinition, shifts []*domain.Shift, events []*domain.CalendarEvent) []DaySchedule {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]DaySchedule, 0, daysInMonth)
	for i := 0; i < daysInMonth; i++ {
		days = append(days, composeDay(first.AddDate(0, 0, i), catalog, shifts, events))
	}
	return days
}

func composeDay(date time.Time, catalog []domain.PeriodDefinition, shifts []*domain.Shift, events []*domain.CalendarEvent) DaySchedule {
	dateStr := date.Format(dateLayout)
	day := DaySchedule{Date: dateStr}

	// Split the day's events into full-day closures, partial closures and
	// plain display events. YYYY-MM-DD strings compare in date order, so the
	// inclusive range check needs no parsing.
	var partialClosures []domain.CalendarEvent
	for _, event := range events {
		if dateStr < event.StartDate || dateStr > event.EndDate {
			continue
		}
		switch {
		case !event.Type.Closes():
			day.Events = append(day.Events, *event)
		case event.CoversWholeDay():
			day.ClosureEvents = append(day.ClosureEvents, *event)
		default:
			partialClosures = append(partialClosures, *event)
		}
	}

	// A full-day closure wins over partial ones: render one block spanning
	// all periods and no shift cells at all.
	if len(day.ClosureEvents) > 0 {
		day.Closed = true
		return day
	}

	day.ClosedRanges = MergeClosedRanges(partialClosures)

	defs := make([]domain.PeriodDefinition, len(catalog))
	copy(defs, catalog)
	sort.Slice(defs, func(i, j int) bool { return defs[i].Period < defs[j].Period })

	for _, def := range defs {
		cell := PeriodCell{
			Period:          def.Period,
			StartTime:       def.StartTime,
			EndTime:         def.EndTime,
			DurationMinutes: ResolveDuration(date, def.Period, catalog),
			Monitors:        make([]domain.MonitorSummary, 0),
		}

		for _, r := range day.ClosedRanges {
			if r.Covers(def.Period) {
				cell.Closed = true
				break
			}
		}

		// Closed cells render as part of the merged block, so assignments
		// under them are suppressed.
		if !cell.Closed {
			for _, shift := range shifts {
				if shift.Date == dateStr && shift.Period == def.Period {
					cell.Monitors = shift.Monitors
					break
				}
			}
		}

		day.Cells = append(day.Cells, cell)
	}

	return day
}
