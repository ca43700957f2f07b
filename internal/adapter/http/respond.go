package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"

	"affiliate-ledger/internal/core/domain"
)

// Error codes of the response envelope.
const (
	codeValidation          = "validation_error"
	codeNotFound            = "not_found"
	codeAlreadyProcessed    = "already_processed"
	codeInsufficientBalance = "insufficient_balance"
	codeUnavailable         = "persistence_unavailable"
	codeInternal            = "internal_error"
)

// retryAfterSeconds is advertised on persistence failures.
const retryAfterSeconds = 1

type errorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorBody struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []errorDetail `json:"details,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses. Internal
// details are logged, never sent.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		status int
		body   errorBody
		verr   *domain.ValidationError
		nferr  *domain.NotFoundError
	)
	switch {
	case errors.As(err, &verr):
		status = http.StatusBadRequest
		body = errorBody{Code: codeValidation, Message: "request validation failed",
			Details: []errorDetail{{Field: verr.Field, Message: verr.Message}}}
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
		body = errorBody{Code: codeValidation, Message: "request validation failed"}
	case errors.As(err, &nferr):
		status = http.StatusNotFound
		body = errorBody{Code: codeNotFound, Message: nferr.Error()}
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		body = errorBody{Code: codeNotFound, Message: "resource not found"}
	case errors.Is(err, domain.ErrAlreadyProcessed):
		status = http.StatusConflict
		body = errorBody{Code: codeAlreadyProcessed, Message: "request was already processed"}
	case errors.Is(err, domain.ErrInsufficientBalance):
		status = http.StatusUnprocessableEntity
		body = errorBody{Code: codeInsufficientBalance, Message: "pending balance is too low"}
	case errors.Is(err, domain.ErrPersistence):
		status = http.StatusServiceUnavailable
		body = errorBody{Code: codeUnavailable, Message: "temporarily unable to complete the request; retry with the same idempotency key"}
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
	default:
		status = http.StatusInternalServerError
		body = errorBody{Code: codeInternal, Message: "internal error"}
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err),
		)
	}
	h.writeJSON(w, status, errorEnvelope{Error: body})
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	return nil
}

func parsePage(r *http.Request) (domain.Page, error) {
	var (
		q    = r.URL.Query()
		page domain.Page
		err  error
	)
	if v := q.Get("page"); v != "" {
		if page.Number, err = strconv.Atoi(v); err != nil {
			return page, domain.NewValidationError("page", "must be an integer")
		}
	}
	if v := q.Get("size"); v != "" {
		if page.Size, err = strconv.Atoi(v); err != nil {
			return page, domain.NewValidationError("size", "must be an integer")
		}
	}
	return page, nil
}
