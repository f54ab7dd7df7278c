package schedule

import (
	"testing"

	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
	"github.com/stretchr/testify/require"
)

func p(v int32) *int32 { return &v }

func closure(title string, start, end int32) domain.CalendarEvent {
	return domain.CalendarEvent{
		Title:       title,
		Type:        domain.EventType{Name: "Closure", ClosesLibrary: true},
		StartDate:   "2024-09-02",
		EndDate:     "2024-09-02",
		PeriodStart: p(start),
		PeriodEnd:   p(end),
	}
}

func TestMergeClosedRanges(t *testing.T) {
	tests := []struct {
		name   string
		events []domain.CalendarEvent
		want   [][2]int32
	}{
		{
			"no events",
			nil,
			nil,
		},
		{
			"single range",
			[]domain.CalendarEvent{closure("Assembly", 2, 4)},
			[][2]int32{{2, 4}},
		},
		{
			"overlapping ranges merge",
			[]domain.CalendarEvent{closure("a", 1, 2), closure("b", 2, 4)},
			[][2]int32{{1, 4}},
		},
		{
			"gap produces two blocks",
			[]domain.CalendarEvent{closure("a", 1, 2), closure("b", 4, 5)},
			[][2]int32{{1, 2}, {4, 5}},
		},
		{
			"adjacent ranges merge",
			[]domain.CalendarEvent{closure("a", 1, 3), closure("b", 4, 6)},
			[][2]int32{{1, 6}},
		},
		{
			"contained range does not shrink the run",
			[]domain.CalendarEvent{closure("a", 6, 9), closure("b", 7, 8)},
			[][2]int32{{6, 9}},
		},
		{
			"unsorted input",
			[]domain.CalendarEvent{closure("b", 5, 6), closure("a", 1, 2), closure("c", 2, 3)},
			[][2]int32{{1, 3}, {5, 6}},
		},
		{
			"periodEnd defaults to periodStart",
			[]domain.CalendarEvent{
				{Title: "x", PeriodStart: p(3)},
				{Title: "y", PeriodStart: p(4), PeriodEnd: p(4)},
			},
			[][2]int32{{3, 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeClosedRanges(tt.events)
			require.Len(t, got, len(tt.want))
			for i, bounds := range tt.want {
				require.Equal(t, bounds[0], got[i].PeriodStart)
				require.Equal(t, bounds[1], got[i].PeriodEnd)
			}
		})
	}
}

func TestMergeClosedRangesKeepsContributors(t *testing.T) {
	early := closure("Early Dismissal", 6, 9)
	assembly := closure("Assembly", 7, 8)

	got := MergeClosedRanges([]domain.CalendarEvent{assembly, early})

	require.Len(t, got, 1)
	require.Len(t, got[0].Events, 2)
	// first contributor is primary and drives color/icon
	require.Equal(t, "Early Dismissal", got[0].Events[0].Title)
	require.Equal(t, "Assembly", got[0].Events[1].Title)
}
