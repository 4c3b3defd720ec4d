package memory

import (
	"context"
	"testing"

	"github.com/example/campus-scheduler/internal/persistence"
	"github.com/example/campus-scheduler/internal/testfixtures"
)

func TestStoreLoadReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	campus, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	campus.AddUniversity("Coastal University")

	reloaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reloaded.Universities) != 0 {
		t.Fatalf("mutation before Save leaked into the store")
	}

	if err := store.Save(ctx, campus); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reloaded.Universities) != 1 || reloaded.Universities[0].ID != "university_id_1" {
		t.Fatalf("expected saved university, got %+v", reloaded.Universities)
	}
}

func TestNewSeededStore(t *testing.T) {
	seed := testfixtures.NewCampus(
		testfixtures.WithRoom("Lab B", "lab", 12, "hearing_loop"),
		testfixtures.WithClass("Databases 101", "room_id_1", "Friday 09:00-10:00", "instructor_id_1"),
	)

	store, err := NewSeededStore(seed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mutating the seed afterwards must not affect the store.
	seed.Universities[0].Name = "Renamed"

	campus, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if campus.Universities[0].Name != "State University" {
		t.Fatalf("seed mutation leaked into the store")
	}
	if len(campus.Universities[0].Rooms) != 2 || len(campus.Universities[0].Classes) != 1 {
		t.Fatalf("seeded document incomplete: %+v", campus.Universities[0])
	}
}

func TestStoreHonoursContext(t *testing.T) {
	store := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.Load(ctx); err == nil {
		t.Fatalf("expected context error on Load")
	}
	if err := store.Save(ctx, persistence.NewCampus()); err == nil {
		t.Fatalf("expected context error on Save")
	}
}
