package schedule

import (
	"time"

	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
)

// Fallback durations used when the period catalog has no entry. Logging hours
// must never hard-fail on missing catalog data, so the resolver always
// returns a best-effort value.
const (
	defaultZeroPeriodMinutes = 45
	defaultPeriodMinutes     = 46
)

// Wednesday runs the shortened bell schedule: period 0 is 45 minutes and
// every other period is 40, no matter what the catalog says.
const (
	wednesdayZeroPeriodMinutes = 45
	wednesdayPeriodMinutes     = 40
)

// ResolveDuration computes the session length in minutes for one period on
// one date. The Wednesday override wins over the catalog unconditionally.
func ResolveDuration(date time.Time, period int32, catalog []domain.PeriodDefinition) int32 {
	if date.Weekday() == time.Wednesday {
		if period == 0 {
			return wednesdayZeroPeriodMinutes
		}
		return wednesdayPeriodMinutes
	}

	for _, def := range catalog {
		if def.Period == period {
			return def.Duration
		}
	}

	if period == 0 {
		return defaultZeroPeriodMinutes
	}
	return defaultPeriodMinutes
}
