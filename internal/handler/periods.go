package handler

import (
	"errors"
	"net/http"

	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
	"github.com/oakmont-ms/library-volunteers/backend/internal/utils"
)

func (h *Handler) GetPeriodDefinitions(w http.ResponseWriter, r *http.Request) {
	defs, err := h.repository.GetAllPeriodDefinitions()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "period definitions fetched", defs)
}

func (h *Handler) ReplacePeriodDefinitions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Definitions []struct {
			Period    int32  `json:"period" validate:"min=0,max=20"`
			Duration  int32  `json:"duration" validate:"required,min=1"`
			StartTime string `json:"startTime" validate:"required"`
			EndTime   string `json:"endTime" validate:"required"`
		} `json:"definitions" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	defs := make([]domain.PeriodDefinition, 0, len(req.Definitions))
	for _, d := range req.Definitions {
		defs = append(defs, domain.PeriodDefinition{
			Period:    d.Period,
			Duration:  d.Duration,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		})
	}

	if err := utils.ValidatePeriodDefinitions(defs); err != nil {
		if errors.Is(err, domain.ErrDuplicatePeriod) {
			h.conflict(w, r, err.Error())
			return
		}
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.ReplacePeriodDefinitions(defs); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// read back so the response reflects the stored order (period ascending)
	stored, err := h.repository.GetAllPeriodDefinitions()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "period definitions replaced", stored)
}
