// Package sqlite persists the campus document in normalized SQLite tables
// while keeping the document-store contract: Load materialises the full
// graph, Save rewrites it in one transaction.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/example/campus-scheduler/internal/persistence"
)

// Store implements persistence.Store on top of a SQLite database.
type Store struct {
	db *sql.DB
}

// Open connects to the database identified by dsn. The connection pool is
// capped at a single connection; the store serialises whole-document
// writes anyway and this keeps in-memory DSNs usable in tests.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", dsn, err)
	}
	db.SetMaxOpenConns(1)
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS universities (
	position   INTEGER PRIMARY KEY,
	id         TEXT NOT NULL UNIQUE,
	name       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS rooms (
	university_id          TEXT NOT NULL REFERENCES universities(id) ON DELETE CASCADE,
	position               INTEGER NOT NULL,
	id                     TEXT NOT NULL,
	type                   TEXT NOT NULL,
	name                   TEXT NOT NULL,
	capacity               TEXT NOT NULL,
	accessibility_features TEXT NOT NULL,
	PRIMARY KEY (university_id, position)
);

CREATE TABLE IF NOT EXISTS personnel (
	university_id       TEXT NOT NULL REFERENCES universities(id) ON DELETE CASCADE,
	position            INTEGER NOT NULL,
	id                  TEXT NOT NULL,
	name                TEXT NOT NULL,
	role                TEXT NOT NULL,
	specializations     TEXT NOT NULL,
	accessibility_needs TEXT NOT NULL,
	PRIMARY KEY (university_id, position)
);

CREATE TABLE IF NOT EXISTS classes (
	university_id TEXT NOT NULL REFERENCES universities(id) ON DELETE CASCADE,
	position      INTEGER NOT NULL,
	id            TEXT NOT NULL,
	title         TEXT NOT NULL,
	room_id       TEXT NOT NULL,
	timeslot      TEXT NOT NULL,
	instructor    TEXT NOT NULL,
	PRIMARY KEY (university_id, position)
);
`

// Migrate creates the schema when it does not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return nil
}

// Load reads the complete campus graph, preserving collection order.
func (s *Store) Load(ctx context.Context) (*persistence.Campus, error) {
	campus := persistence.NewCampus()

	err := s.withTx(ctx, &sql.TxOptions{ReadOnly: true}, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `SELECT id, name FROM universities ORDER BY position`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var university persistence.University
			if err := rows.Scan(&university.ID, &university.Name); err != nil {
				return err
			}
			university.Rooms = []persistence.Room{}
			university.Classes = []persistence.Class{}
			university.Personnel = []persistence.Personnel{}
			campus.Universities = append(campus.Universities, university)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		for i := range campus.Universities {
			university := &campus.Universities[i]
			if university.Rooms, err = s.loadRooms(ctx, tx, university.ID); err != nil {
				return err
			}
			if university.Personnel, err = s.loadPersonnel(ctx, tx, university.ID); err != nil {
				return err
			}
			if university.Classes, err = s.loadClasses(ctx, tx, university.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite: load campus: %w", err)
	}
	return campus, nil
}

// Save rewrites the full document: all rows are replaced in a single
// transaction so a failed save never leaves a partial graph behind.
func (s *Store) Save(ctx context.Context, campus *persistence.Campus) error {
	err := s.withTx(ctx, nil, func(tx *sql.Tx) error {
		for _, table := range []string{"classes", "personnel", "rooms", "universities"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return err
			}
		}

		for uniPos, university := range campus.Universities {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO universities (position, id, name) VALUES (?, ?, ?)`,
				uniPos, university.ID, university.Name,
			); err != nil {
				return err
			}

			for pos, room := range university.Rooms {
				features, err := encodeStrings(room.AccessibilityFeatures)
				if err != nil {
					return err
				}
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO rooms (university_id, position, id, type, name, capacity, accessibility_features)
					 VALUES (?, ?, ?, ?, ?, ?, ?)`,
					university.ID, pos, room.ID, room.Type, room.Name, room.Capacity.String(), features,
				); err != nil {
					return err
				}
			}

			for pos, person := range university.Personnel {
				specializations, err := encodeStrings(person.Specializations)
				if err != nil {
					return err
				}
				needs, err := encodeStrings(person.AccessibilityNeeds)
				if err != nil {
					return err
				}
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO personnel (university_id, position, id, name, role, specializations, accessibility_needs)
					 VALUES (?, ?, ?, ?, ?, ?, ?)`,
					university.ID, pos, person.ID, person.Name, person.Role, specializations, needs,
				); err != nil {
					return err
				}
			}

			for pos, class := range university.Classes {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO classes (university_id, position, id, title, room_id, timeslot, instructor)
					 VALUES (?, ?, ?, ?, ?, ?, ?)`,
					university.ID, pos, class.ID, class.Title, class.RoomID, class.Timeslot, class.Instructor,
				); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("sqlite: save campus: %w", err)
	}
	return nil
}

func (s *Store) loadRooms(ctx context.Context, tx *sql.Tx, universityID string) ([]persistence.Room, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT id, type, name, capacity, accessibility_features
		 FROM rooms WHERE university_id = ? ORDER BY position`, universityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := []persistence.Room{}
	for rows.Next() {
		var room persistence.Room
		var capacity, features string
		if err := rows.Scan(&room.ID, &room.Type, &room.Name, &capacity, &features); err != nil {
			return nil, err
		}
		room.Capacity = persistence.CapacityFromString(capacity)
		if room.AccessibilityFeatures, err = decodeStrings(features); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

func (s *Store) loadPersonnel(ctx context.Context, tx *sql.Tx, universityID string) ([]persistence.Personnel, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT id, name, role, specializations, accessibility_needs
		 FROM personnel WHERE university_id = ? ORDER BY position`, universityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	people := []persistence.Personnel{}
	for rows.Next() {
		var person persistence.Personnel
		var specializations, needs string
		if err := rows.Scan(&person.ID, &person.Name, &person.Role, &specializations, &needs); err != nil {
			return nil, err
		}
		if person.Specializations, err = decodeStrings(specializations); err != nil {
			return nil, err
		}
		if person.AccessibilityNeeds, err = decodeStrings(needs); err != nil {
			return nil, err
		}
		people = append(people, person)
	}
	return people, rows.Err()
}

func (s *Store) loadClasses(ctx context.Context, tx *sql.Tx, universityID string) ([]persistence.Class, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT id, title, room_id, timeslot, instructor
		 FROM classes WHERE university_id = ? ORDER BY position`, universityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := []persistence.Class{}
	for rows.Next() {
		var class persistence.Class
		if err := rows.Scan(&class.ID, &class.Title, &class.RoomID, &class.Timeslot, &class.Instructor); err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	return classes, rows.Err()
}

// withTx executes fn within a transaction, rolling back on error.
func (s *Store) withTx(ctx context.Context, opts *sql.TxOptions, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction failed (rollback error: %v): %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func encodeStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("encode string list: %w", err)
	}
	return string(data), nil
}

func decodeStrings(data string) ([]string, error) {
	values := []string{}
	if err := json.Unmarshal([]byte(data), &values); err != nil {
		return nil, fmt.Errorf("decode string list %q: %w", data, err)
	}
	return values, nil
}
