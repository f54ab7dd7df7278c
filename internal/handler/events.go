package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
	"github.com/oakmont-ms/library-volunteers/backend/internal/utils"
)

type eventRequest struct {
	Title       string `json:"title" validate:"required"`
	TypeID      int64  `json:"typeId" validate:"required"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate" validate:"required"`
	AllDay      bool   `json:"allDay"`
	PeriodStart *int32 `json:"periodStart"`
	PeriodEnd   *int32 `json:"periodEnd"`
	Description string `json:"description"`
}

// applyEventRequest validates the payload and copies it onto the event.
// periodEnd defaults to periodStart; all-day events carry no period range.
func (h *Handler) applyEventRequest(req *eventRequest, event *domain.CalendarEvent) error {
	if err := utils.ValidateEventRange(req.StartDate, req.EndDate, req.AllDay, req.PeriodStart, req.PeriodEnd); err != nil {
		return err
	}

	if _, err := h.repository.GetEventTypeByID(req.TypeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errors.New("unknown event type")
		}
		return err
	}

	event.Title = req.Title
	event.TypeID = req.TypeID
	event.StartDate = req.StartDate
	event.EndDate = req.EndDate
	event.AllDay = req.AllDay
	event.Description = req.Description

	if req.AllDay {
		event.PeriodStart = nil
		event.PeriodEnd = nil
		return nil
	}

	event.PeriodStart = req.PeriodStart
	if req.PeriodEnd != nil {
		event.PeriodEnd = req.PeriodEnd
	} else {
		event.PeriodEnd = req.PeriodStart
	}

	return nil
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	event := &domain.CalendarEvent{}
	if err := h.applyEventRequest(&req, event); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.CreateEvent(event); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "calendar_events_type_id_fkey":
			h.badRequest(w, r, errors.New("unknown event type"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	created, err := h.repository.GetEventByID(event.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "event created", created)
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	event := r.Context().Value(EventCtx).(*domain.CalendarEvent)
	if err := h.applyEventRequest(&req, event); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpdateEvent(event); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "event not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	updated, err := h.repository.GetEventByID(event.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "event updated", updated)
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	event := r.Context().Value(EventCtx).(*domain.CalendarEvent)

	if err := h.repository.DeleteEvent(event.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "event deleted", nil)
}

func (h *Handler) GetMonthEvents(w http.ResponseWriter, r *http.Request) {
	monthParam := chi.URLParam(r, "month")
	year, month, err := utils.ParseMonth(monthParam)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	start, end := utils.MonthBounds(year, month)

	events, err := h.repository.GetEventsForRange(start, end, true)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "month events fetched", events)
}

func (h *Handler) GetRangeEvents(w http.ResponseWriter, r *http.Request) {
	startParam := r.URL.Query().Get("start")
	endParam := r.URL.Query().Get("end")

	if _, err := utils.ParseDate(startParam); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if _, err := utils.ParseDate(endParam); err != nil {
		h.badRequest(w, r, err)
		return
	}

	events, err := h.repository.GetEventsForRange(startParam, endParam, false)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "range events fetched", events)
}

func (h *Handler) GetEventTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.repository.GetAllEventTypes()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "event types fetched", types)
}

func (h *Handler) CreateEventType(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name          string `json:"name" validate:"required"`
		Color         string `json:"color" validate:"required,hexcolor"`
		Icon          string `json:"icon" validate:"required"`
		ClosesLibrary bool   `json:"closesLibrary"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	et := &domain.EventType{
		Name:          req.Name,
		Color:         req.Color,
		Icon:          req.Icon,
		ClosesLibrary: req.ClosesLibrary,
	}

	if err := h.repository.CreateEventType(et); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "event_types_name_key":
			h.conflict(w, r, "an event type with this name already exists")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "event type created", et)
}
