package handler

import (
	"net/http"

	"github.com/mtlprog/turnaround/internal/domain"
	"github.com/mtlprog/turnaround/internal/handler/dto"
)

// handleCalculateDueDate resolves the due date for one submission.
// @Summary Calculate a due date
// @Description Adds turnaround_hours working hours (Mon-Fri, 09:00-17:00) to submitted_at.
// @Tags due-dates
// @Accept json
// @Produce json
// @Param request body dto.DueDateRequest true "Submission"
// @Success 200 {object} dto.DueDateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /due-dates [post]
func (h *Handler) handleCalculateDueDate(w http.ResponseWriter, r *http.Request) {
	var req dto.DueDateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	domainReq, err := h.toDomainRequest(req)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	dueDate, err := h.dueDateService.Calculate(r.Context(), domainReq)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToDueDateResponse(dueDate))
}

// handleCalculateBatch resolves due dates for many submissions.
// Invalid items are reported inline; the request itself succeeds.
// @Summary Calculate due dates in bulk
// @Tags due-dates
// @Accept json
// @Produce json
// @Param request body dto.BatchDueDateRequest true "Submissions"
// @Success 200 {object} dto.BatchDueDateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /due-dates/batch [post]
func (h *Handler) handleCalculateBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchDueDateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if len(req.Submissions) == 0 {
		respondDomainError(w, r, domain.ErrEmptyBatch)
		return
	}

	resp := dto.BatchDueDateResponse{
		Results: make([]dto.BatchItemResponse, len(req.Submissions)),
		Total:   len(req.Submissions),
	}

	reqs := make([]domain.DueDateRequest, 0, len(req.Submissions))
	index := make([]int, 0, len(req.Submissions))
	for i, item := range req.Submissions {
		resp.Results[i] = dto.BatchItemResponse{Index: i, ID: item.ID}

		domainReq, err := h.toDomainRequest(item)
		if err != nil {
			resp.Results[i].Error = dto.ToErrorDetail(err)
			continue
		}
		reqs = append(reqs, domainReq)
		index = append(index, i)
	}

	if len(reqs) > 0 {
		results, err := h.dueDateService.CalculateBatch(r.Context(), reqs)
		if err != nil {
			respondDomainError(w, r, err)
			return
		}

		for j, res := range results {
			item := &resp.Results[index[j]]
			item.ID = res.Request.ID
			if res.Err != nil {
				item.Error = dto.ToErrorDetail(res.Err)
				continue
			}
			dueDate := dto.ToDueDateResponse(res.DueDate)
			item.DueDate = &dueDate
		}
	}

	for _, item := range resp.Results {
		if item.Error != nil {
			resp.Failed++
		} else {
			resp.Succeeded++
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

// handleGetWorkingTime reports whether a moment is working time.
// @Summary Check a timestamp against the business calendar
// @Tags calendar
// @Produce json
// @Param at query string true "Timestamp (RFC 3339 or 2006-01-02T15:04)"
// @Success 200 {object} dto.WorkingTimeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /working-time [get]
func (h *Handler) handleGetWorkingTime(w http.ResponseWriter, r *http.Request) {
	at, err := domain.ParseTimestamp(r.URL.Query().Get("at"), h.location)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToWorkingTimeResponse(h.dueDateService.Inspect(at)))
}

// handleNextWorkingDay returns the start of the next working day.
// @Summary Advance to the next working day
// @Tags calendar
// @Accept json
// @Produce json
// @Param request body dto.NextWorkingDayRequest true "Timestamp and minute"
// @Success 200 {object} dto.NextWorkingDayResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /next-working-day [post]
func (h *Handler) handleNextWorkingDay(w http.ResponseWriter, r *http.Request) {
	var req dto.NextWorkingDayRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	at, err := domain.ParseTimestamp(req.At, h.location)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	minute := at.Minute()
	if req.OriginalMinute != nil {
		minute = *req.OriginalMinute
	}

	next, err := h.dueDateService.NextWorkingDay(at, minute)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NextWorkingDayResponse{
		At:             at,
		OriginalMinute: minute,
		NextWorkingDay: next,
	})
}

// handleGetCalendar describes the business calendar.
// @Summary Get the business calendar
// @Tags calendar
// @Produce json
// @Success 200 {object} dto.CalendarResponse
// @Router /calendar [get]
func (h *Handler) handleGetCalendar(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, dto.ToCalendarResponse(h.dueDateService.Calendar()))
}

// toDomainRequest parses and checks the required fields of a submission.
func (h *Handler) toDomainRequest(req dto.DueDateRequest) (domain.DueDateRequest, error) {
	submittedAt, err := domain.ParseTimestamp(req.SubmittedAt, h.location)
	if err != nil {
		return domain.DueDateRequest{}, err
	}
	if req.TurnaroundHours == nil {
		return domain.DueDateRequest{}, domain.ErrMissingTurnaround
	}

	return domain.DueDateRequest{
		ID:              req.ID,
		SubmittedAt:     submittedAt,
		TurnaroundHours: *req.TurnaroundHours,
	}, nil
}
