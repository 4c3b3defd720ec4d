package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/example/campus-scheduler/internal/persistence"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "campus.db")
	store, err := Open(dsn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	campus, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(campus.Universities) != 0 {
		t.Fatalf("expected empty document, got %+v", campus.Universities)
	}

	first := campus.AddUniversity("Coastal University")
	first.AddRoom("Lecture Hall A", "lecture_hall", persistence.NewCapacity(120), []string{"wheelchair", "hearing_loop"})
	first.AddRoom("Lab 2", "laboratory", persistence.CapacityFromString("30"), nil)
	first.AddPersonnel("Dana Reyes", "instructor", []string{"physics"}, []string{"wheelchair"})
	first.AddClass("Physics 101", "room_id_1", "Monday 09:00-10:00", "instructor_id_1")
	campus.AddUniversity("Highland Institute")

	if err := store.Save(ctx, campus); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(reloaded.Universities) != 2 {
		t.Fatalf("expected two universities, got %d", len(reloaded.Universities))
	}
	if reloaded.Universities[0].ID != "university_id_1" || reloaded.Universities[1].ID != "university_id_2" {
		t.Fatalf("university order not preserved: %+v", reloaded.Universities)
	}

	university := reloaded.Universities[0]
	if len(university.Rooms) != 2 || university.Rooms[0].ID != "room_id_1" || university.Rooms[1].ID != "room_id_2" {
		t.Fatalf("room order not preserved: %+v", university.Rooms)
	}
	if n, err := university.Rooms[0].Capacity.Int(); err != nil || n != 120 {
		t.Fatalf("expected capacity 120, got %d (%v)", n, err)
	}
	if got := university.Rooms[0].AccessibilityFeatures; len(got) != 2 || got[0] != "wheelchair" {
		t.Fatalf("unexpected features: %v", got)
	}
	if len(university.Rooms[1].AccessibilityFeatures) != 0 {
		t.Fatalf("expected empty feature list, got %v", university.Rooms[1].AccessibilityFeatures)
	}

	if len(university.Personnel) != 1 || university.Personnel[0].ID != "instructor_id_1" {
		t.Fatalf("unexpected personnel: %+v", university.Personnel)
	}
	if len(university.Classes) != 1 || university.Classes[0].Timeslot != "Monday 09:00-10:00" {
		t.Fatalf("unexpected classes: %+v", university.Classes)
	}
}

func TestStoreSaveReplacesPreviousDocument(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	campus := persistence.NewCampus()
	campus.AddUniversity("Coastal University")
	campus.AddUniversity("Highland Institute")
	if err := store.Save(ctx, campus); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	replacement := persistence.NewCampus()
	replacement.AddUniversity("Lakeside College")
	if err := store.Save(ctx, replacement); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reloaded.Universities) != 1 || reloaded.Universities[0].Name != "Lakeside College" {
		t.Fatalf("expected replaced document, got %+v", reloaded.Universities)
	}
}

func TestStorePreservesRawCapacity(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	campus := persistence.NewCampus()
	university := campus.AddUniversity("Coastal University")
	university.AddRoom("Hall", "lecture_hall", persistence.CapacityFromString("plenty"), nil)
	if err := store.Save(ctx, campus); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	capacity := reloaded.Universities[0].Rooms[0].Capacity
	if capacity.String() != "plenty" {
		t.Fatalf("expected raw capacity to survive, got %q", capacity.String())
	}
	if _, err := capacity.Int(); err == nil {
		t.Fatalf("expected invalid capacity error")
	}
}
