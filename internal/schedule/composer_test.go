package schedule

import (
	"testing"
	"time"

	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
	"github.com/stretchr/testify/require"
)

var testCatalog = []domain.PeriodDefinition{
	{Period: 0, Duration: 50, StartTime: "07:15", EndTime: "08:05"},
	{Period: 1, Duration: 55, StartTime: "08:10", EndTime: "09:05"},
	{Period: 2, Duration: 55, StartTime: "09:10", EndTime: "10:05"},
	{Period: 3, Duration: 55, StartTime: "10:10", EndTime: "11:05"},
}

func TestComposeWeekFullDayClosure(t *testing.T) {
	holiday := &domain.CalendarEvent{
		Title:     "Staff Day",
		Type:      domain.EventType{Name: "Holiday", ClosesLibrary: true},
		StartDate: "2024-09-02",
		EndDate:   "2024-09-02",
		AllDay:    true,
	}
	shift := &domain.Shift{
		Date:     "2024-09-02",
		Period:   1,
		Monitors: []domain.MonitorSummary{{ID: 7, FullName: "Dana Reyes"}},
	}

	week := ComposeWeek(date("2024-09-02"), testCatalog, []*domain.Shift{shift}, []*domain.CalendarEvent{holiday})

	require.Len(t, week, 5)

	monday := week[0]
	require.True(t, monday.Closed)
	require.Empty(t, monday.Cells, "full-day closure suppresses per-period cells")
	require.Len(t, monday.ClosureEvents, 1)
	require.Equal(t, "Staff Day", monday.ClosureEvents[0].Title)

	// the rest of the week is unaffected
	tuesday := week[1]
	require.False(t, tuesday.Closed)
	require.Len(t, tuesday.Cells, len(testCatalog))
}

func TestComposeWeekFullDayTakesPrecedenceOverPartial(t *testing.T) {
	full := &domain.CalendarEvent{
		Title:     "Closed",
		Type:      domain.EventType{Name: "Closure", ClosesLibrary: true},
		StartDate: "2024-09-03",
		EndDate:   "2024-09-03",
		AllDay:    true,
	}
	partial := &domain.CalendarEvent{
		Title:       "Assembly",
		Type:        domain.EventType{Name: "Closure", ClosesLibrary: true},
		StartDate:   "2024-09-03",
		EndDate:     "2024-09-03",
		PeriodStart: p(1),
		PeriodEnd:   p(2),
	}

	week := ComposeWeek(date("2024-09-02"), testCatalog, nil, []*domain.CalendarEvent{partial, full})

	tuesday := week[1]
	require.True(t, tuesday.Closed)
	require.Empty(t, tuesday.ClosedRanges)
	require.Empty(t, tuesday.Cells)
}

func TestComposeWeekPartialClosures(t *testing.T) {
	a := &domain.CalendarEvent{
		Title:       "Early Dismissal",
		Type:        domain.EventType{Name: "Closure", ClosesLibrary: true},
		StartDate:   "2024-09-05",
		EndDate:     "2024-09-05",
		PeriodStart: p(1),
		PeriodEnd:   p(2),
	}
	b := &domain.CalendarEvent{
		Title:       "Book Fair Setup",
		Type:        domain.EventType{Name: "Maintenance"},
		StartDate:   "2024-09-05",
		EndDate:     "2024-09-05",
		PeriodStart: p(2),
		PeriodEnd:   p(3),
	}
	shiftUnder := &domain.Shift{
		Date:     "2024-09-05",
		Period:   2,
		Monitors: []domain.MonitorSummary{{ID: 3, FullName: "Sam Okafor"}},
	}
	shiftClear := &domain.Shift{
		Date:     "2024-09-05",
		Period:   0,
		Monitors: []domain.MonitorSummary{{ID: 4, FullName: "Priya Nair"}},
	}

	week := ComposeWeek(date("2024-09-02"), testCatalog, []*domain.Shift{shiftUnder, shiftClear}, []*domain.CalendarEvent{a, b})

	thursday := week[3]
	require.False(t, thursday.Closed)

	// "Maintenance" closes via the legacy name fallback; [1,2] and [2,3]
	// collapse into one block.
	require.Len(t, thursday.ClosedRanges, 1)
	require.Equal(t, int32(1), thursday.ClosedRanges[0].PeriodStart)
	require.Equal(t, int32(3), thursday.ClosedRanges[0].PeriodEnd)

	require.Len(t, thursday.Cells, 4)
	require.False(t, thursday.Cells[0].Closed)
	require.Equal(t, []domain.MonitorSummary{{ID: 4, FullName: "Priya Nair"}}, thursday.Cells[0].Monitors)
	for _, period := range []int{1, 2, 3} {
		require.True(t, thursday.Cells[period].Closed)
		require.Empty(t, thursday.Cells[period].Monitors, "assignments under a closed range are suppressed")
	}
}

func TestComposeWeekDurations(t *testing.T) {
	week := ComposeWeek(date("2024-09-02"), testCatalog, nil, nil)

	monday := week[0]
	require.Equal(t, int32(50), monday.Cells[0].DurationMinutes)
	require.Equal(t, int32(55), monday.Cells[1].DurationMinutes)

	wednesday := week[2]
	require.Equal(t, int32(45), wednesday.Cells[0].DurationMinutes)
	for _, cell := range wednesday.Cells[1:] {
		require.Equal(t, int32(40), cell.DurationMinutes)
	}
}

func TestComposeWeekNonClosingEvents(t *testing.T) {
	event := &domain.CalendarEvent{
		Title:     "Author Visit",
		Type:      domain.EventType{Name: "General Event", Color: "#2e7d32"},
		StartDate: "2024-09-04",
		EndDate:   "2024-09-06",
		AllDay:    true,
	}

	week := ComposeWeek(date("2024-09-02"), testCatalog, nil, []*domain.CalendarEvent{event})

	require.False(t, week[2].Closed, "non-closing types never close the day")
	require.Len(t, week[2].Cells, len(testCatalog))
	require.Len(t, week[2].Events, 1)
	require.Len(t, week[3].Events, 1)
	require.Empty(t, week[1].Events)
}

func TestComposeMonth(t *testing.T) {
	days := ComposeMonth(2024, time.September, testCatalog, nil, nil)

	require.Len(t, days, 30)
	require.Equal(t, "2024-09-01", days[0].Date)
	require.Equal(t, "2024-09-30", days[29].Date)
}
