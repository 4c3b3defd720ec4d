package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mitchellh/mapstructure"

	"github.com/example/campus-scheduler/internal/application"
)

type universityService interface {
	CreateUniversity(ctx context.Context, name string) (application.University, error)
	AddRoom(ctx context.Context, input application.RoomInput) (application.Room, error)
	AddPersonnel(ctx context.Context, input application.PersonnelInput) (application.Personnel, error)
	ListUniversities(ctx context.Context) ([]application.University, error)
	GetUniversity(ctx context.Context, id string) (application.University, error)
	ListRooms(ctx context.Context, universityID string) ([]application.Room, error)
	GetRoom(ctx context.Context, universityID, roomID string) (application.Room, error)
	ListClasses(ctx context.Context, universityID string) ([]application.Class, error)
	GetClass(ctx context.Context, universityID, classID string) (application.Class, error)
	ListPersonnel(ctx context.Context, universityID string) ([]application.Personnel, error)
	GetPersonnel(ctx context.Context, universityID, personnelID string) (application.Personnel, error)
}

type UniversityHandler struct {
	service   universityService
	responder responder
	logger    *slog.Logger
}

func NewUniversityHandler(service universityService, logger *slog.Logger) *UniversityHandler {
	base := defaultLogger(logger)
	return &UniversityHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *UniversityHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "UniversityHandler", operation, attrs...)
}

func (h *UniversityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUniversityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Create", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode university request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	university, err := h.service.CreateUniversity(r.Context(), req.Name)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.log(r.Context(), "Create").InfoContext(r.Context(), "university created", "university_id", university.ID)
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, university)
}

func (h *UniversityHandler) List(w http.ResponseWriter, r *http.Request) {
	universities, err := h.service.ListUniversities(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, universities)
}

func (h *UniversityHandler) Get(w http.ResponseWriter, r *http.Request, universityID string) {
	university, err := h.service.GetUniversity(r.Context(), universityID)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, university)
}

// AddRoom accepts the room payload with a weakly typed capacity, so both
// 40 and "40" decode to the same request.
func (h *UniversityHandler) AddRoom(w http.ResponseWriter, r *http.Request, universityID string) {
	var req addRoomRequest
	if err := decodeWeaklyTyped(r, &req); err != nil {
		h.log(r.Context(), "AddRoom", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode room request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	room, err := h.service.AddRoom(r.Context(), application.RoomInput{
		UniversityID:          universityID,
		Name:                  req.Name,
		Type:                  req.RoomType,
		Capacity:              req.Capacity,
		AccessibilityFeatures: req.AccessibilityFeatures,
	})
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.log(r.Context(), "AddRoom", "university_id", universityID).InfoContext(r.Context(), "room added", "room_id", room.ID)
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, room)
}

func (h *UniversityHandler) ListRooms(w http.ResponseWriter, r *http.Request, universityID string) {
	rooms, err := h.service.ListRooms(r.Context(), universityID)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, rooms)
}

func (h *UniversityHandler) GetRoom(w http.ResponseWriter, r *http.Request, universityID, roomID string) {
	room, err := h.service.GetRoom(r.Context(), universityID, roomID)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, room)
}

func (h *UniversityHandler) AddPersonnel(w http.ResponseWriter, r *http.Request, universityID string) {
	var req addPersonnelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "AddPersonnel", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode personnel request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	person, err := h.service.AddPersonnel(r.Context(), application.PersonnelInput{
		UniversityID:       universityID,
		Name:               req.Name,
		Role:               req.Role,
		Specializations:    req.Specializations,
		AccessibilityNeeds: req.AccessibilityNeeds,
	})
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.log(r.Context(), "AddPersonnel", "university_id", universityID).InfoContext(r.Context(), "personnel added", "personnel_id", person.ID)
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, person)
}

func (h *UniversityHandler) ListPersonnel(w http.ResponseWriter, r *http.Request, universityID string) {
	people, err := h.service.ListPersonnel(r.Context(), universityID)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, people)
}

func (h *UniversityHandler) GetPersonnel(w http.ResponseWriter, r *http.Request, universityID, personnelID string) {
	person, err := h.service.GetPersonnel(r.Context(), universityID, personnelID)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, person)
}

func (h *UniversityHandler) ListClasses(w http.ResponseWriter, r *http.Request, universityID string) {
	classes, err := h.service.ListClasses(r.Context(), universityID)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, classes)
}

func (h *UniversityHandler) GetClass(w http.ResponseWriter, r *http.Request, universityID, classID string) {
	class, err := h.service.GetClass(r.Context(), universityID, classID)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, class)
}

type createUniversityRequest struct {
	Name string `json:"name"`
}

type addRoomRequest struct {
	Name                  string   `json:"name"`
	RoomType              string   `json:"room_type"`
	Capacity              int      `json:"capacity"`
	AccessibilityFeatures []string `json:"accessibility_features"`
}

type addPersonnelRequest struct {
	Name               string   `json:"name"`
	Role               string   `json:"role"`
	Specializations    []string `json:"specializations"`
	AccessibilityNeeds []string `json:"accessibilityNeeds"`
}

// decodeWeaklyTyped decodes a JSON body through mapstructure so numeric
// fields also accept their string forms.
func decodeWeaklyTyped(r *http.Request, target any) error {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          "json",
		Result:           target,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}
