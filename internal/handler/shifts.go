package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
	"github.com/oakmont-ms/library-volunteers/backend/internal/utils"
)

func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date       string  `json:"date" validate:"required"`
		Period     int32   `json:"period" validate:"min=0,max=20"`
		MonitorIDs []int64 `json:"monitorIds" validate:"required,min=1,unique"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if _, err := utils.ParseDate(req.Date); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// friendly pre-check; the unique constraint below is the real guard
	exists, err := h.repository.ShiftExists(req.Date, req.Period)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if exists {
		h.conflict(w, r, domain.ErrShiftExists.Error())
		return
	}

	shift := &domain.Shift{
		Date:   req.Date,
		Period: req.Period,
	}

	if err := h.repository.CreateShift(shift, req.MonitorIDs); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "shifts_date_period_key":
			h.conflict(w, r, domain.ErrShiftExists.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// re-read so monitors come back with their names embedded
	created, err := h.repository.GetShiftByID(shift.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shift created", created)
}

func (h *Handler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MonitorIDs []int64 `json:"monitorIds" validate:"unique"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	// an emptied shift is deleted, not kept as an empty row
	if len(req.MonitorIDs) == 0 {
		if err := h.repository.DeleteShift(shift.ID); err != nil {
			h.internalServerError(w, r, err)
			return
		}
		h.successResponse(w, r, "shift deleted", map[string]bool{"deleted": true})
		return
	}

	if err := h.repository.ReplaceShiftAssignments(shift.ID, req.MonitorIDs); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	updated, err := h.repository.GetShiftByID(shift.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shift updated", updated)
}

func (h *Handler) GetWeekShifts(w http.ResponseWriter, r *http.Request) {
	startDateParam := chi.URLParam(r, "startDate")
	start, err := utils.ParseDate(startDateParam)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	// Monday through Friday: [startDate, startDate+5d)
	end := start.AddDate(0, 0, 5)

	shifts, err := h.repository.GetShiftsForRange(start.Format(utils.DateLayout), end.Format(utils.DateLayout))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "week shifts fetched", shifts)
}
