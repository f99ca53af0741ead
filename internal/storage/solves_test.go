package storage

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.MigrateUp(); err != nil {
		t.Fatalf("MigrateUp failed: %v", err)
	}
	return db
}

func TestCreateAndGetSolve(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	id, err := repo.Create("F D L'", "L D' F'", 3, 42, 12)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	s, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if s == nil {
		t.Fatal("Get returned nil for an existing solve")
	}
	if s.Scramble != "F D L'" || s.Solution != "L D' F'" || s.SolutionLen != 3 {
		t.Errorf("Unexpected solve record: %+v", s)
	}
	if s.StatesExplored != 42 {
		t.Errorf("StatesExplored = %d, want 42", s.StatesExplored)
	}
}

func TestGetCorruptCreatedAt(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	id, err := repo.Create("F", "F'", 1, 7, 1)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := db.Exec("UPDATE solves SET created_at = 'not-a-timestamp' WHERE solve_id = ?", id); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if _, err := repo.Get(id); err == nil {
		t.Error("Get should fail when created_at cannot be parsed")
	}
	if _, err := repo.List(10); err == nil {
		t.Error("List should fail when created_at cannot be parsed")
	}
}

func TestGetMissingSolve(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	s, err := repo.Get("no-such-id")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if s != nil {
		t.Errorf("Get of missing solve should return nil, got %+v", s)
	}
}

func TestListSolves(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	for i := 0; i < 3; i++ {
		if _, err := repo.Create("F", "F'", 1, 7, 1); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	solves, err := repo.List(2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(solves) != 2 {
		t.Errorf("List(2) returned %d solves", len(solves))
	}
}

func TestDeleteSolve(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	id, err := repo.Create("D", "D'", 1, 7, 1)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := repo.Delete(id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	s, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if s != nil {
		t.Error("Solve should be gone after Delete")
	}
}
