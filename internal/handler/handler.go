package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mtlprog/turnaround/internal/handler/dto"
	"github.com/mtlprog/turnaround/internal/metrics"
	"github.com/mtlprog/turnaround/internal/middleware"
	"github.com/mtlprog/turnaround/internal/service"
	"github.com/mtlprog/turnaround/internal/static"
)

const maxBodyBytes = 1 << 20

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	dueDateService *service.DueDateService
	location       *time.Location
}

// New creates a new Handler. Zone-less timestamps in requests are read in loc.
func New(dueDateService *service.DueDateService, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{
		dueDateService: dueDateService,
		location:       loc,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Health check and metrics
	mux.HandleFunc("GET /healthz", h.handleHealthz)
	mux.Handle("GET /metrics", metrics.Handler())

	// Usage guide
	mux.HandleFunc("GET /{$}", h.handleUsage)

	// API v1 routes
	mux.HandleFunc("GET /api/v1/calendar", h.handleGetCalendar)
	mux.HandleFunc("GET /api/v1/working-time", h.handleGetWorkingTime)
	mux.HandleFunc("POST /api/v1/due-dates", h.handleCalculateDueDate)
	mux.HandleFunc("POST /api/v1/due-dates/batch", h.handleCalculateBatch)
	mux.HandleFunc("POST /api/v1/next-working-day", h.handleNextWorkingDay)
}

// handleHealthz returns 200 OK.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// handleUsage serves the embedded API usage guide.
func (h *Handler) handleUsage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(static.UsageMd))
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// respondDomainError maps err to a status and writes it.
func respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, message := dto.MapDomainError(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err,
		)
	}
	respondError(w, status, code, message)
}

// decodeJSON decodes a size-limited request body into v.
// Returns false if decoding failed (error already sent to client).
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			respondError(w, http.StatusRequestEntityTooLarge, "INVALID_REQUEST", "request body too large")
		case errors.Is(err, io.EOF):
			respondError(w, http.StatusBadRequest, "INVALID_JSON", "request body is required")
		default:
			respondError(w, http.StatusBadRequest, "INVALID_JSON", fmt.Sprintf("invalid request body: %v", err))
		}
		return false
	}
	return true
}
