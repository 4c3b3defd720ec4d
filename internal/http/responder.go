package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/campus-scheduler/internal/application"
)

var (
	errBadRequestBody      = errors.New("request body is not valid JSON")
	errMissingSessionToken = errors.New("a session token is required")
)

type responder struct {
	logger *slog.Logger
}

func newResponder(logger *slog.Logger) responder {
	if logger == nil {
		logger = slog.Default()
	}
	return responder{logger: logger}
}

func (r responder) writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}

	if status == http.StatusNoContent || payload == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		r.loggerFor(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

func (r responder) writeError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	message := http.StatusText(status)
	if err != nil {
		if msg := strings.TrimSpace(err.Error()); msg != "" {
			message = msg
		}
		r.loggerFor(ctx).ErrorContext(ctx, "request failed", "status", status, "error", err)
	}

	r.writeJSON(ctx, w, status, errorResponse{Message: message})
}

// handleServiceError maps application errors to HTTP statuses. Scheduling
// refusals are conflicts; malformed input, including an unreadable stored
// capacity, is a bad request.
func (r responder) handleServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	if err == nil {
		r.writeError(ctx, w, http.StatusInternalServerError, errors.New("unknown error"))
		return
	}

	var vErr *application.ValidationError
	var nfErr *application.NotFoundError

	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		r.writeJSON(ctx, w, http.StatusUnauthorized, errorResponse{
			ErrorCode: "AUTH_INVALID_CREDENTIALS",
			Message:   "username or password is incorrect",
		})
	case errors.Is(err, application.ErrSessionExpired):
		r.writeJSON(ctx, w, http.StatusUnauthorized, errorResponse{
			ErrorCode: "AUTH_SESSION_EXPIRED",
			Message:   "the session has expired, log in again",
		})
	case errors.Is(err, application.ErrUnauthorized):
		r.writeJSON(ctx, w, http.StatusForbidden, errorResponse{
			ErrorCode: "AUTH_FORBIDDEN",
			Message:   "you are not allowed to perform this operation",
		})
	case errors.As(err, &nfErr):
		r.writeJSON(ctx, w, http.StatusNotFound, errorResponse{
			ErrorCode: "NOT_FOUND",
			Message:   string(nfErr.Kind) + " not found",
		})
	case errors.Is(err, application.ErrNotFound):
		r.writeJSON(ctx, w, http.StatusNotFound, errorResponse{
			ErrorCode: "NOT_FOUND",
			Message:   "the requested resource was not found",
		})
	case errors.Is(err, application.ErrMalformedTimeslot):
		r.writeJSON(ctx, w, http.StatusBadRequest, errorResponse{
			ErrorCode: "MALFORMED_TIMESLOT",
			Message:   "timeslot must look like \"Monday 09:00-10:00\"",
		})
	case errors.Is(err, application.ErrInvalidCapacityValue):
		r.writeJSON(ctx, w, http.StatusBadRequest, errorResponse{
			ErrorCode: "INVALID_CAPACITY",
			Message:   "the room's stored capacity is not a valid number",
		})
	case errors.Is(err, application.ErrRoomUnavailable):
		r.writeJSON(ctx, w, http.StatusConflict, errorResponse{
			ErrorCode: "ROOM_UNAVAILABLE",
			Message:   "the room is already booked for an overlapping timeslot",
		})
	case errors.Is(err, application.ErrInsufficientCapacity):
		r.writeJSON(ctx, w, http.StatusConflict, errorResponse{
			ErrorCode: "INSUFFICIENT_CAPACITY",
			Message:   "the room cannot seat the expected number of attendees",
		})
	case errors.Is(err, application.ErrAccessibilityMismatch):
		r.writeJSON(ctx, w, http.StatusConflict, errorResponse{
			ErrorCode: "ACCESSIBILITY_MISMATCH",
			Message:   "the room does not meet the instructor's accessibility needs",
		})
	case errors.As(err, &vErr):
		r.writeJSON(ctx, w, http.StatusBadRequest, errorResponse{
			ErrorCode: "VALIDATION_FAILED",
			Message:   "the request is missing or misusing required fields",
			Errors:    vErr.FieldErrors,
		})
	default:
		r.loggerFor(ctx).ErrorContext(ctx, "unexpected service error", "error", err)
		r.writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
	}
}

func (r responder) loggerFor(ctx context.Context) *slog.Logger {
	if logger := LoggerFromContext(ctx); logger != nil {
		return logger
	}
	return r.logger
}

type errorResponse struct {
	ErrorCode string            `json:"error_code,omitempty"`
	Message   string            `json:"message"`
	Errors    map[string]string `json:"errors,omitempty"`
}
