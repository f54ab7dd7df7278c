package domain

import "errors"

var (
	ErrInvalidCode        = errors.New("check-in code is invalid or expired")
	ErrAlreadyLogged      = errors.New("hours already logged for this date and period")
	ErrShiftExists        = errors.New("a shift already exists for this date and period")
	ErrDuplicatePeriod    = errors.New("duplicate period in catalog")
	ErrInvalidPeriodRange = errors.New("period range is inverted or missing")
)
