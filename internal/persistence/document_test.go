package persistence

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestCampusAddUniversity(t *testing.T) {
	campus := NewCampus()

	first := campus.AddUniversity("Coastal University")
	second := campus.AddUniversity("Highland Institute")

	if first.ID != "university_id_1" {
		t.Fatalf("expected university_id_1, got %s", first.ID)
	}
	if second.ID != "university_id_2" {
		t.Fatalf("expected university_id_2, got %s", second.ID)
	}
	if first.Rooms == nil || first.Classes == nil || first.Personnel == nil {
		t.Fatalf("expected empty child collections, got %+v", first)
	}

	found, err := campus.University("university_id_2")
	if err != nil {
		t.Fatalf("unexpected lookup error: %v", err)
	}
	if found.Name != "Highland Institute" {
		t.Fatalf("expected Highland Institute, got %s", found.Name)
	}
}

func TestCampusUniversityNotFound(t *testing.T) {
	campus := NewCampus()

	_, err := campus.University("university_id_99")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Kind != KindUniversity {
		t.Fatalf("expected kind university, got %s", nf.Kind)
	}
}

func TestUniversityAppendOperations(t *testing.T) {
	campus := NewCampus()
	university := campus.AddUniversity("Coastal University")

	room := university.AddRoom("Lecture Hall A", "lecture_hall", NewCapacity(120), []string{"wheelchair"})
	if room.ID != "room_id_1" {
		t.Fatalf("expected room_id_1, got %s", room.ID)
	}
	if room.ID != university.Rooms[0].ID {
		t.Fatalf("expected returned room to alias the stored one")
	}

	second := university.AddRoom("Lab 2", "laboratory", NewCapacity(30), nil)
	if second.ID != "room_id_2" {
		t.Fatalf("expected room_id_2, got %s", second.ID)
	}
	if second.AccessibilityFeatures == nil {
		t.Fatalf("expected non-nil feature list")
	}

	instructor := university.AddPersonnel("Dana Reyes", "instructor", []string{"physics"}, nil)
	if instructor.ID != "instructor_id_1" {
		t.Fatalf("expected instructor_id_1, got %s", instructor.ID)
	}
	if instructor.Specializations == nil || instructor.AccessibilityNeeds == nil {
		t.Fatalf("expected non-nil personnel collections")
	}

	class := university.AddClass("Physics 101", room.ID, "Monday 09:00-10:00", instructor.ID)
	if class.ID != "class_id_1" {
		t.Fatalf("expected class_id_1, got %s", class.ID)
	}

	for _, tc := range []struct {
		name string
		kind EntityKind
		err  error
	}{
		{"room", KindRoom, func() error { _, err := university.Room("room_id_99"); return err }()},
		{"personnel", KindPersonnel, func() error { _, err := university.Instructor("instructor_id_99"); return err }()},
		{"class", KindClass, func() error { _, err := university.Class("class_id_99"); return err }()},
	} {
		var nf *NotFoundError
		if !errors.As(tc.err, &nf) {
			t.Fatalf("%s: expected NotFoundError, got %v", tc.name, tc.err)
		}
		if nf.Kind != tc.kind {
			t.Fatalf("%s: expected kind %s, got %s", tc.name, tc.kind, nf.Kind)
		}
	}
}

func TestCampusClone(t *testing.T) {
	campus := NewCampus()
	university := campus.AddUniversity("Coastal University")
	university.AddRoom("Lecture Hall A", "lecture_hall", NewCapacity(120), []string{"wheelchair"})

	clone, err := campus.Clone()
	if err != nil {
		t.Fatalf("unexpected clone error: %v", err)
	}

	clone.Universities[0].Rooms[0].Name = "Renamed"
	clone.Universities[0].AddRoom("Lab", "laboratory", NewCapacity(10), nil)

	if campus.Universities[0].Rooms[0].Name != "Lecture Hall A" {
		t.Fatalf("clone mutation leaked into the original")
	}
	if len(campus.Universities[0].Rooms) != 1 {
		t.Fatalf("clone append leaked into the original")
	}
}

func TestCapacityDecoding(t *testing.T) {
	t.Run("accepts numbers and numeric strings", func(t *testing.T) {
		var room Room
		if err := json.Unmarshal([]byte(`{"id":"room_id_1","capacity":40}`), &room); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n, err := room.Capacity.Int(); err != nil || n != 40 {
			t.Fatalf("expected 40, got %d (%v)", n, err)
		}

		if err := json.Unmarshal([]byte(`{"id":"room_id_1","capacity":"55"}`), &room); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n, err := room.Capacity.Int(); err != nil || n != 55 {
			t.Fatalf("expected 55, got %d (%v)", n, err)
		}
	})

	t.Run("fails closed on non-numeric values", func(t *testing.T) {
		var room Room
		if err := json.Unmarshal([]byte(`{"id":"room_id_1","capacity":"plenty"}`), &room); err != nil {
			t.Fatalf("unexpected decode error: %v", err)
		}
		if _, err := room.Capacity.Int(); !errors.Is(err, ErrInvalidCapacity) {
			t.Fatalf("expected ErrInvalidCapacity, got %v", err)
		}

		if _, err := CapacityFromString("-5").Int(); !errors.Is(err, ErrInvalidCapacity) {
			t.Fatalf("expected ErrInvalidCapacity for negative value, got %v", err)
		}
		if _, err := (Capacity{}).Int(); !errors.Is(err, ErrInvalidCapacity) {
			t.Fatalf("expected ErrInvalidCapacity for empty value, got %v", err)
		}
	})

	t.Run("round-trips the stored shape", func(t *testing.T) {
		for input, want := range map[string]string{
			`{"capacity":40}`:       `{"capacity":40}`,
			`{"capacity":"40"}`:     `{"capacity":"40"}`,
			`{"capacity":"plenty"}`: `{"capacity":"plenty"}`,
		} {
			var payload struct {
				Capacity Capacity `json:"capacity"`
			}
			if err := json.Unmarshal([]byte(input), &payload); err != nil {
				t.Fatalf("%s: unexpected error: %v", input, err)
			}
			out, err := json.Marshal(payload)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", input, err)
			}
			if string(out) != want {
				t.Fatalf("%s: expected %s, got %s", input, want, out)
			}
		}
	})

	t.Run("rejects structured values", func(t *testing.T) {
		var room Room
		err := json.Unmarshal([]byte(`{"id":"room_id_1","capacity":{"seats":40}}`), &room)
		if !errors.Is(err, ErrInvalidCapacity) {
			t.Fatalf("expected ErrInvalidCapacity, got %v", err)
		}
	})
}
