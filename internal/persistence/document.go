package persistence

import (
	"encoding/json"
	"fmt"
)

// NewCampus returns an empty document with non-nil collections, matching
// the persisted shape of a freshly initialised data file.
func NewCampus() *Campus {
	return &Campus{Universities: []University{}}
}

// University resolves a university by id.
func (c *Campus) University(id string) (*University, error) {
	for i := range c.Universities {
		if c.Universities[i].ID == id {
			return &c.Universities[i], nil
		}
	}
	return nil, &NotFoundError{Kind: KindUniversity, ID: id}
}

// AddUniversity appends a university with the next sequential identifier
// and empty child collections.
func (c *Campus) AddUniversity(name string) *University {
	c.Universities = append(c.Universities, University{
		ID:        fmt.Sprintf("university_id_%d", len(c.Universities)+1),
		Name:      name,
		Rooms:     []Room{},
		Classes:   []Class{},
		Personnel: []Personnel{},
	})
	return &c.Universities[len(c.Universities)-1]
}

// Clone returns a deep copy of the document via a JSON round trip, which
// is exact because the model is defined by its JSON shape.
func (c *Campus) Clone() (*Campus, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("persistence: clone campus: %w", err)
	}
	clone := NewCampus()
	if err := json.Unmarshal(data, clone); err != nil {
		return nil, fmt.Errorf("persistence: clone campus: %w", err)
	}
	return clone, nil
}

// Room resolves a room by id within the university.
func (u *University) Room(id string) (*Room, error) {
	for i := range u.Rooms {
		if u.Rooms[i].ID == id {
			return &u.Rooms[i], nil
		}
	}
	return nil, &NotFoundError{Kind: KindRoom, ID: id}
}

// Instructor resolves a personnel record by id within the university.
func (u *University) Instructor(id string) (*Personnel, error) {
	for i := range u.Personnel {
		if u.Personnel[i].ID == id {
			return &u.Personnel[i], nil
		}
	}
	return nil, &NotFoundError{Kind: KindPersonnel, ID: id}
}

// Class resolves a class by id within the university.
func (u *University) Class(id string) (*Class, error) {
	for i := range u.Classes {
		if u.Classes[i].ID == id {
			return &u.Classes[i], nil
		}
	}
	return nil, &NotFoundError{Kind: KindClass, ID: id}
}

// AddRoom appends a room with the next sequential identifier.
func (u *University) AddRoom(name, roomType string, capacity Capacity, accessibilityFeatures []string) *Room {
	if accessibilityFeatures == nil {
		accessibilityFeatures = []string{}
	}
	u.Rooms = append(u.Rooms, Room{
		ID:                    fmt.Sprintf("room_id_%d", len(u.Rooms)+1),
		Type:                  roomType,
		Name:                  name,
		Capacity:              capacity,
		AccessibilityFeatures: accessibilityFeatures,
	})
	return &u.Rooms[len(u.Rooms)-1]
}

// AddPersonnel appends a personnel record with the next sequential
// identifier.
func (u *University) AddPersonnel(name, role string, specializations, accessibilityNeeds []string) *Personnel {
	if specializations == nil {
		specializations = []string{}
	}
	if accessibilityNeeds == nil {
		accessibilityNeeds = []string{}
	}
	u.Personnel = append(u.Personnel, Personnel{
		ID:                 fmt.Sprintf("instructor_id_%d", len(u.Personnel)+1),
		Name:               name,
		Role:               role,
		Specializations:    specializations,
		AccessibilityNeeds: accessibilityNeeds,
	})
	return &u.Personnel[len(u.Personnel)-1]
}

// AddClass appends a class with the next sequential identifier. Callers
// are responsible for having validated the referenced room and instructor
// and the timeslot beforehand.
func (u *University) AddClass(title, roomID, slot, instructorID string) *Class {
	u.Classes = append(u.Classes, Class{
		ID:         fmt.Sprintf("class_id_%d", len(u.Classes)+1),
		Title:      title,
		RoomID:     roomID,
		Timeslot:   slot,
		Instructor: instructorID,
	})
	return &u.Classes[len(u.Classes)-1]
}
