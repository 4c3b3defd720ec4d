// Package persistence defines the persisted campus document, traversal and
// append operations over it, and the store contract that backends
// implement. The JSON field names and nesting are a compatibility surface
// shared with pre-existing data files and must not change.
package persistence

// Campus is the full persisted document: every university with its nested
// room, class, and personnel collections.
type Campus struct {
	Universities []University `json:"universities"`
}

// University is the root aggregate. It owns all children by value; nothing
// is shared across universities.
type University struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Rooms     []Room      `json:"rooms"`
	Classes   []Class     `json:"classes"`
	Personnel []Personnel `json:"personnel"`
}

// Room is a physical room owned by a university.
type Room struct {
	ID                    string   `json:"id"`
	Type                  string   `json:"type"`
	Name                  string   `json:"name"`
	Capacity              Capacity `json:"capacity"`
	AccessibilityFeatures []string `json:"accessibilityFeatures"`
}

// Personnel is a staff member owned by a university. Identifiers carry the
// historical "instructor_id_" prefix regardless of role.
type Personnel struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Role               string   `json:"role"`
	Specializations    []string `json:"specializations"`
	AccessibilityNeeds []string `json:"accessibilityNeeds"`
}

// Class is a scheduled class. RoomID and Instructor are references into the
// owning university's collections, fixed at creation time. Timeslot holds
// the canonical "Day HH:MM-HH:MM" form.
type Class struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	RoomID     string `json:"room_id"`
	Timeslot   string `json:"timeslot"`
	Instructor string `json:"instructor"`
}
