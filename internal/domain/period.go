package domain

// PeriodDefinition describes one numbered slot of the bell schedule.
// The catalog is replaced wholesale by the librarian, never patched.
type PeriodDefinition struct {
	Period    int32  `json:"period"`
	Duration  int32  `json:"duration"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
