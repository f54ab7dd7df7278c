package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
	"github.com/oakmont-ms/library-volunteers/backend/internal/schedule"
	"github.com/oakmont-ms/library-volunteers/backend/internal/utils"
)

const monitorLogUniqueConstraint = "monitor_logs_monitor_date_period_key"

// LogHours is the self-service path: a monitor redeems the current check-in
// code to record hours for one (date, period).
func (h *Handler) LogHours(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date   string `json:"date" validate:"required"`
		Period int32  `json:"period" validate:"min=0,max=20"`
		Code   string `json:"code" validate:"required,len=6,numeric"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	valid, err := h.repository.ValidateCheckinCode(req.Code)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !valid {
		h.badRequest(w, r, domain.ErrInvalidCode)
		return
	}

	me := r.Context().Value(MyInfoCtx).(*domain.User)

	// friendly pre-check; the unique constraint is the real enforcement and
	// a concurrent duplicate surfaces as the same error below
	exists, err := h.repository.MonitorLogExists(me.ID, req.Date, req.Period)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if exists {
		h.badRequest(w, r, domain.ErrAlreadyLogged)
		return
	}

	catalog, err := h.repository.GetAllPeriodDefinitions()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	log := &domain.MonitorLog{
		MonitorID:       me.ID,
		MonitorName:     me.FullName,
		Date:            req.Date,
		Period:          req.Period,
		CheckIn:         domain.LogMarker,
		CheckOut:        domain.LogMarker,
		DurationMinutes: schedule.ResolveDuration(date, req.Period, catalog),
	}

	if err := h.repository.CreateMonitorLog(log); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == monitorLogUniqueConstraint:
			h.badRequest(w, r, domain.ErrAlreadyLogged)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "hours logged", log)
}

// LogHoursAsLibrarian records hours on a monitor's behalf. No code required;
// the action is audited instead.
func (h *Handler) LogHoursAsLibrarian(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MonitorID       int64  `json:"monitorId" validate:"required"`
		Date            string `json:"date" validate:"required"`
		Period          int32  `json:"period" validate:"min=0,max=20"`
		DurationMinutes *int32 `json:"durationMinutes" validate:"omitempty,min=1"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	monitor, err := h.repository.GetUserByID(req.MonitorID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "monitor not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	exists, err := h.repository.MonitorLogExists(monitor.ID, req.Date, req.Period)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if exists {
		h.badRequest(w, r, domain.ErrAlreadyLogged)
		return
	}

	duration := int32(0)
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	} else {
		catalog, err := h.repository.GetAllPeriodDefinitions()
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		duration = schedule.ResolveDuration(date, req.Period, catalog)
	}

	log := &domain.MonitorLog{
		MonitorID:       monitor.ID,
		MonitorName:     monitor.FullName,
		Date:            req.Date,
		Period:          req.Period,
		CheckIn:         domain.LogMarker,
		CheckOut:        domain.LogMarker,
		DurationMinutes: duration,
	}

	if err := h.repository.CreateMonitorLog(log); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == monitorLogUniqueConstraint:
			h.badRequest(w, r, domain.ErrAlreadyLogged)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	me := r.Context().Value(MyInfoCtx).(*domain.User)
	h.emitAudit(me.ID, &monitor.ID, domain.ActionHoursAddedByLibrarian, map[string]any{
		"date":            log.Date,
		"period":          log.Period,
		"durationMinutes": log.DurationMinutes,
	})

	// let the monitor know; best-effort like the audit trail
	if err := h.publishMail(domain.MailMessage{
		Type: "hours_added",
		To:   monitor.Email,
		Data: domain.HoursAddedMailData{
			FullName:        monitor.FullName,
			Date:            log.Date,
			Period:          log.Period,
			DurationMinutes: log.DurationMinutes,
		},
	}); err != nil {
		slog.Warn("failed to queue hours-added mail", "error", err)
	}

	h.successResponse(w, r, "hours logged", log)
}

func (h *Handler) GetMonitorLogs(w http.ResponseWriter, r *http.Request) {
	var monitorID int64
	if v := r.URL.Query().Get("monitorId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.errorResponse(w, r, http.StatusBadRequest, "invalid monitorId")
			return
		}
		monitorID = id
	}

	date := r.URL.Query().Get("date")
	if date != "" {
		if _, err := utils.ParseDate(date); err != nil {
			h.badRequest(w, r, err)
			return
		}
	}

	logs, err := h.repository.GetMonitorLogs(monitorID, date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "monitor logs fetched", logs)
}

func (h *Handler) GetMyMonitorLogs(w http.ResponseWriter, r *http.Request) {
	me := r.Context().Value(MyInfoCtx).(*domain.User)

	logs, err := h.repository.GetMonitorLogs(me.ID, "")
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "monitor logs fetched", logs)
}

func (h *Handler) UpdateMonitorLog(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date            *string `json:"date"`
		Period          *int32  `json:"period" validate:"omitempty,min=0,max=20"`
		CheckIn         *string `json:"checkIn"`
		CheckOut        *string `json:"checkOut"`
		DurationMinutes *int32  `json:"durationMinutes" validate:"omitempty,min=1"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	log := r.Context().Value(MonitorLogCtx).(*domain.MonitorLog)

	if req.Date != nil {
		if _, err := utils.ParseDate(*req.Date); err != nil {
			h.badRequest(w, r, err)
			return
		}
		log.Date = *req.Date
	}
	if req.Period != nil {
		log.Period = *req.Period
	}
	if req.CheckIn != nil {
		log.CheckIn = *req.CheckIn
	}
	if req.CheckOut != nil {
		log.CheckOut = *req.CheckOut
	}
	if req.DurationMinutes != nil {
		log.DurationMinutes = *req.DurationMinutes
	}

	if err := h.repository.UpdateMonitorLog(log); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == monitorLogUniqueConstraint:
			h.badRequest(w, r, domain.ErrAlreadyLogged)
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "log not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	me := r.Context().Value(MyInfoCtx).(*domain.User)
	h.emitAudit(me.ID, &log.MonitorID, domain.ActionHoursEditedByLibrarian, map[string]any{
		"logId":           log.ID,
		"date":            log.Date,
		"period":          log.Period,
		"durationMinutes": log.DurationMinutes,
	})

	h.successResponse(w, r, "log updated", log)
}

func (h *Handler) DeleteMonitorLog(w http.ResponseWriter, r *http.Request) {
	log := r.Context().Value(MonitorLogCtx).(*domain.MonitorLog)

	if err := h.repository.DeleteMonitorLog(log.ID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "log not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	me := r.Context().Value(MyInfoCtx).(*domain.User)
	h.emitAudit(me.ID, &log.MonitorID, domain.ActionHoursDeletedByLibrarian, map[string]any{
		"logId":           log.ID,
		"date":            log.Date,
		"period":          log.Period,
		"durationMinutes": log.DurationMinutes,
	})

	h.successResponse(w, r, "log deleted", nil)
}
