package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
	"github.com/oakmont-ms/library-volunteers/backend/internal/schedule"
	"github.com/oakmont-ms/library-volunteers/backend/internal/utils"
)

// GetWeekSchedule returns the composed Monday-to-Friday grid: period catalog
// joined with shift assignments and calendar closures.
func (h *Handler) GetWeekSchedule(w http.ResponseWriter, r *http.Request) {
	startDateParam := chi.URLParam(r, "startDate")
	start, err := utils.ParseDate(startDateParam)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	end := start.AddDate(0, 0, 5)
	startStr := start.Format(utils.DateLayout)
	endStr := end.Format(utils.DateLayout)

	catalog, shifts, events, err := h.loadScheduleInputs(startStr, endStr)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	grid := schedule.ComposeWeek(start, catalog, shifts, events)
	h.successResponse(w, r, "week schedule composed", grid)
}

func (h *Handler) GetMonthSchedule(w http.ResponseWriter, r *http.Request) {
	monthParam := chi.URLParam(r, "month")
	year, month, err := utils.ParseMonth(monthParam)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	startStr, endStr := utils.MonthBounds(year, month)

	catalog, shifts, events, err := h.loadScheduleInputs(startStr, endStr)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	grid := schedule.ComposeMonth(year, month, catalog, shifts, events)
	h.successResponse(w, r, "month schedule composed", grid)
}

func (h *Handler) loadScheduleInputs(startDate, endDate string) ([]domain.PeriodDefinition, []*domain.Shift, []*domain.CalendarEvent, error) {
	catalog, err := h.repository.GetAllPeriodDefinitions()
	if err != nil {
		return nil, nil, nil, err
	}

	shifts, err := h.repository.GetShiftsForRange(startDate, endDate)
	if err != nil {
		return nil, nil, nil, err
	}

	events, err := h.repository.GetEventsForRange(startDate, endDate, false)
	if err != nil {
		return nil, nil, nil, err
	}

	return catalog, shifts, events, nil
}
