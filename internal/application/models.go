package application

import (
	"time"

	"github.com/samber/lo"

	"github.com/example/campus-scheduler/internal/persistence"
)

// Principal identifies the authenticated caller and the roles granted to it.
// The scheduling core itself never inspects roles; they exist for the
// transport layer's authorization middleware.
type Principal struct {
	Username string
	Roles    []string
}

// HasAnyRole reports whether the principal holds at least one of the roles.
func (p Principal) HasAnyRole(roles ...string) bool {
	return lo.Some(p.Roles, roles)
}

// University mirrors the persisted university aggregate for callers.
type University struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Rooms     []Room      `json:"rooms"`
	Classes   []Class     `json:"classes"`
	Personnel []Personnel `json:"personnel"`
}

// Room mirrors the persisted room. Capacity keeps the stored shape so
// legacy string capacities render unchanged.
type Room struct {
	ID                    string               `json:"id"`
	Type                  string               `json:"type"`
	Name                  string               `json:"name"`
	Capacity              persistence.Capacity `json:"capacity"`
	AccessibilityFeatures []string             `json:"accessibilityFeatures"`
}

// Personnel mirrors the persisted personnel record.
type Personnel struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Role               string   `json:"role"`
	Specializations    []string `json:"specializations"`
	AccessibilityNeeds []string `json:"accessibilityNeeds"`
}

// Class mirrors the persisted class record.
type Class struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	RoomID     string `json:"room_id"`
	Timeslot   string `json:"timeslot"`
	Instructor string `json:"instructor"`
}

// RoomInput captures caller provided room fields.
type RoomInput struct {
	UniversityID          string
	Name                  string
	Type                  string
	Capacity              int
	AccessibilityFeatures []string
}

// PersonnelInput captures caller provided personnel fields.
type PersonnelInput struct {
	UniversityID       string
	Name               string
	Role               string
	Specializations    []string
	AccessibilityNeeds []string
}

// ScheduleClassInput captures the data required to schedule a class.
type ScheduleClassInput struct {
	UniversityID      string
	Title             string
	RoomID            string
	Timeslot          string
	InstructorID      string
	ExpectedHeadcount int
}

// Session represents an authenticated session issued to a user.
type Session struct {
	Token     string
	ExpiresAt time.Time
	Principal Principal
}

func toUniversity(model persistence.University) University {
	return University{
		ID:        model.ID,
		Name:      model.Name,
		Rooms:     toRooms(model.Rooms),
		Classes:   toClasses(model.Classes),
		Personnel: toPersonnelList(model.Personnel),
	}
}

func toRoom(model persistence.Room) Room {
	return Room{
		ID:                    model.ID,
		Type:                  model.Type,
		Name:                  model.Name,
		Capacity:              model.Capacity,
		AccessibilityFeatures: append([]string{}, model.AccessibilityFeatures...),
	}
}

func toRooms(models []persistence.Room) []Room {
	rooms := make([]Room, 0, len(models))
	for _, model := range models {
		rooms = append(rooms, toRoom(model))
	}
	return rooms
}

func toPersonnel(model persistence.Personnel) Personnel {
	return Personnel{
		ID:                 model.ID,
		Name:               model.Name,
		Role:               model.Role,
		Specializations:    append([]string{}, model.Specializations...),
		AccessibilityNeeds: append([]string{}, model.AccessibilityNeeds...),
	}
}

func toPersonnelList(models []persistence.Personnel) []Personnel {
	people := make([]Personnel, 0, len(models))
	for _, model := range models {
		people = append(people, toPersonnel(model))
	}
	return people
}

func toClass(model persistence.Class) Class {
	return Class{
		ID:         model.ID,
		Title:      model.Title,
		RoomID:     model.RoomID,
		Timeslot:   model.Timeslot,
		Instructor: model.Instructor,
	}
}

func toClasses(models []persistence.Class) []Class {
	classes := make([]Class, 0, len(models))
	for _, model := range models {
		classes = append(classes, toClass(model))
	}
	return classes
}
