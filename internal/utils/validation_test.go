package utils

import (
	"testing"

	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
	"github.com/stretchr/testify/require"
)

func p(v int32) *int32 { return &v }

func TestValidatePeriodDefinitions(t *testing.T) {
	tests := []struct {
		name    string
		defs    []domain.PeriodDefinition
		wantErr error
	}{
		{
			"valid set",
			[]domain.PeriodDefinition{
				{Period: 0, Duration: 45, StartTime: "07:15", EndTime: "08:00"},
				{Period: 1, Duration: 46, StartTime: "08:05", EndTime: "08:51"},
			},
			nil,
		},
		{
			"empty set is fine",
			nil,
			nil,
		},
		{
			"duplicate period",
			[]domain.PeriodDefinition{
				{Period: 1, Duration: 46, StartTime: "08:05", EndTime: "08:51"},
				{Period: 1, Duration: 40, StartTime: "09:00", EndTime: "09:40"},
			},
			domain.ErrDuplicatePeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePeriodDefinitions(tt.defs)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}

	t.Run("malformed time", func(t *testing.T) {
		err := ValidatePeriodDefinitions([]domain.PeriodDefinition{
			{Period: 0, Duration: 45, StartTime: "7:15am", EndTime: "08:00"},
		})
		require.Error(t, err)
	})
}

func TestValidateEventRange(t *testing.T) {
	tests := []struct {
		name                   string
		start, end             string
		allDay                 bool
		periodStart, periodEnd *int32
		wantErr                bool
	}{
		{"all day single date", "2024-09-02", "2024-09-02", true, nil, nil, false},
		{"all day multi day", "2024-09-02", "2024-09-06", true, nil, nil, false},
		{"partial with range", "2024-09-02", "2024-09-02", false, p(6), p(9), false},
		{"partial periodEnd defaults", "2024-09-02", "2024-09-02", false, p(6), nil, false},
		{"inverted dates", "2024-09-06", "2024-09-02", true, nil, nil, true},
		{"partial missing periodStart", "2024-09-02", "2024-09-02", false, nil, nil, true},
		{"inverted period range", "2024-09-02", "2024-09-02", false, p(9), p(6), true},
		{"garbage date", "09/02/2024", "2024-09-02", true, nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEventRange(tt.start, tt.end, tt.allDay, tt.periodStart, tt.periodEnd)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}

	t.Run("inverted period range is the sentinel", func(t *testing.T) {
		err := ValidateEventRange("2024-09-02", "2024-09-02", false, p(9), p(6))
		require.ErrorIs(t, err, domain.ErrInvalidPeriodRange)
	})
}
