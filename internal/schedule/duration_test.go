package schedule

import (
	"testing"
	"time"

	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestResolveDuration(t *testing.T) {
	catalog := []domain.PeriodDefinition{
		{Period: 0, Duration: 50, StartTime: "07:15", EndTime: "08:05"},
		{Period: 1, Duration: 55, StartTime: "08:10", EndTime: "09:05"},
		{Period: 4, Duration: 30, StartTime: "11:30", EndTime: "12:00"},
	}

	tests := []struct {
		name    string
		date    string
		period  int32
		catalog []domain.PeriodDefinition
		want    int32
	}{
		{"wednesday period 0 overrides catalog", "2024-09-04", 0, catalog, 45},
		{"wednesday other periods override catalog", "2024-09-04", 1, catalog, 40},
		{"wednesday override without catalog", "2024-09-04", 7, nil, 40},
		{"catalog hit", "2024-09-05", 1, catalog, 55},
		{"catalog hit period 0", "2024-09-05", 0, catalog, 50},
		{"catalog miss falls back to default", "2024-09-05", 9, catalog, 46},
		{"catalog miss period 0 default", "2024-09-05", 0, nil, 45},
		{"empty catalog default", "2024-09-06", 3, nil, 46},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ResolveDuration(date(tt.date), tt.period, tt.catalog))
		})
	}
}

func TestResolveDurationEveryWednesday(t *testing.T) {
	// invariant holds for arbitrary Wednesdays regardless of catalog contents
	catalog := []domain.PeriodDefinition{{Period: 0, Duration: 99}, {Period: 5, Duration: 99}}

	d := date("2024-01-03") // a Wednesday
	for i := 0; i < 10; i++ {
		require.Equal(t, time.Wednesday, d.Weekday())
		require.Equal(t, int32(45), ResolveDuration(d, 0, catalog))
		require.Equal(t, int32(40), ResolveDuration(d, 5, catalog))
		d = d.AddDate(0, 0, 7)
	}
}
