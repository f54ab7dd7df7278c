package schedule

import (
	"sort"

	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
)

// ClosedRange is one display block covering a run of closed periods. Events
// holds every contributing closure; the first one is primary and drives the
// block's color and icon.
type ClosedRange struct {
	PeriodStart int32                  `json:"periodStart"`
	PeriodEnd   int32                  `json:"periodEnd"`
	Events      []domain.CalendarEvent `json:"events"`
}

// MergeClosedRanges collapses partial closures into maximal runs. Events are
// sorted by periodStart and an event joins the current run when its start is
// at most run.end + 1, so adjacent ranges merge as well as overlapping ones.
// Callers pass only non-all-day closing events that intersect a single date.
func MergeClosedRanges(events []domain.CalendarEvent) []ClosedRange {
	if len(events) == 0 {
		return nil
	}

	sorted := make([]domain.CalendarEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		iStart, _ := sorted[i].PeriodRange()
		jStart, _ := sorted[j].PeriodRange()
		return iStart < jStart
	})

	ranges := make([]ClosedRange, 0, 1)
	for _, event := range sorted {
		start, end := event.PeriodRange()

		if len(ranges) > 0 {
			current := &ranges[len(ranges)-1]
			if start <= current.PeriodEnd+1 {
				if end > current.PeriodEnd {
					current.PeriodEnd = end
				}
				current.Events = append(current.Events, event)
				continue
			}
		}

		ranges = append(ranges, ClosedRange{
			PeriodStart: start,
			PeriodEnd:   end,
			Events:      []domain.CalendarEvent{event},
		})
	}

	return ranges
}

// Covers reports whether the run includes the given period.
func (r *ClosedRange) Covers(period int32) bool {
	return period >= r.PeriodStart && period <= r.PeriodEnd
}
