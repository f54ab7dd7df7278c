package utils

import (
	"fmt"
	"time"

	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
)

const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return d, nil
}

// ParseMonth parses a YYYY-MM string into its year and month.
func ParseMonth(s string) (int, time.Month, error) {
	d, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	return d.Year(), d.Month(), nil
}

// MonthBounds returns the first day of the month and the first day of the
// next month, for use as a half-open query range.
func MonthBounds(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first.Format(DateLayout), first.AddDate(0, 1, 0).Format(DateLayout)
}

// ValidatePeriodDefinitions checks the replace-all payload: period numbers
// must be unique and the time bounds well-formed.
func ValidatePeriodDefinitions(defs []domain.PeriodDefinition) error {
	seen := make(map[int32]bool)
	for i, def := range defs {
		if seen[def.Period] {
			return domain.ErrDuplicatePeriod
		}
		seen[def.Period] = true

		if _, err := time.Parse("15:04", def.StartTime); err != nil {
			return fmt.Errorf("definition %d has a malformed start time", i)
		}
		if _, err := time.Parse("15:04", def.EndTime); err != nil {
			return fmt.Errorf("definition %d has a malformed end time", i)
		}
	}
	return nil
}

// ValidateEventRange checks the date bounds and, for non-all-day events, the
// period bounds of a calendar event payload.
func ValidateEventRange(startDate, endDate string, allDay bool, periodStart, periodEnd *int32) error {
	start, err := ParseDate(startDate)
	if err != nil {
		return err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("endDate must not be before startDate")
	}

	if allDay {
		return nil
	}

	if periodStart == nil {
		return fmt.Errorf("periodStart is required for events that are not all-day")
	}
	if periodEnd != nil && *periodStart > *periodEnd {
		return domain.ErrInvalidPeriodRange
	}

	return nil
}
