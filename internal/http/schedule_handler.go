package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/campus-scheduler/internal/application"
)

type scheduleService interface {
	ScheduleClass(ctx context.Context, input application.ScheduleClassInput) (application.Class, error)
	IsRoomAvailable(ctx context.Context, universityID, roomID, rawSlot string) (bool, error)
}

type ScheduleHandler struct {
	service   scheduleService
	responder responder
	logger    *slog.Logger
}

func NewScheduleHandler(service scheduleService, logger *slog.Logger) *ScheduleHandler {
	base := defaultLogger(logger)
	return &ScheduleHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *ScheduleHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "ScheduleHandler", operation, attrs...)
}

// ScheduleClass books a class into a room. The expected_capacity field is
// weakly typed, so 50 and "50" are both accepted.
func (h *ScheduleHandler) ScheduleClass(w http.ResponseWriter, r *http.Request, universityID string) {
	var req scheduleClassRequest
	if err := decodeWeaklyTyped(r, &req); err != nil {
		h.log(r.Context(), "ScheduleClass", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode schedule request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "ScheduleClass", "university_id", universityID, "room_id", req.RoomID)

	class, err := h.service.ScheduleClass(r.Context(), application.ScheduleClassInput{
		UniversityID:      universityID,
		Title:             req.Title,
		RoomID:            req.RoomID,
		Timeslot:          req.Timeslot,
		InstructorID:      req.InstructorID,
		ExpectedHeadcount: req.ExpectedCapacity,
	})
	if err != nil {
		logger.ErrorContext(r.Context(), "scheduling rejected", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "class scheduled", "class_id", class.ID)
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, class)
}

// RoomAvailability reports whether a room is free for the timeslot given
// in the query string.
func (h *ScheduleHandler) RoomAvailability(w http.ResponseWriter, r *http.Request, universityID, roomID string) {
	rawSlot := strings.TrimSpace(r.URL.Query().Get("timeslot"))
	if rawSlot == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errors.New("the timeslot query parameter is required"))
		return
	}

	available, err := h.service.IsRoomAvailable(r.Context(), universityID, roomID, rawSlot)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, availabilityResponse{
		RoomID:    roomID,
		Timeslot:  rawSlot,
		Available: available,
	})
}

type scheduleClassRequest struct {
	Title            string `json:"title"`
	RoomID           string `json:"room_id"`
	Timeslot         string `json:"timeslot"`
	InstructorID     string `json:"instructor_id"`
	ExpectedCapacity int    `json:"expected_capacity"`
}

type availabilityResponse struct {
	RoomID    string `json:"room_id"`
	Timeslot  string `json:"timeslot"`
	Available bool   `json:"available"`
}
