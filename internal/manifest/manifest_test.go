package manifest

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestRecordAndGet(t *testing.T) {
	t.Parallel()

	store, err := NewStore(NewMemoryBackend())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	run, err := store.Record(Run{Rows: 15, Path: "mock_employees.csv", Format: "csv", Seed: 9, Bytes: 512})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if _, err := uuid.Parse(run.ID); err != nil {
		t.Errorf("Record assigned a non-uuid id %q: %v", run.ID, err)
	}
	if run.CreatedAt.IsZero() {
		t.Error("Record did not set CreatedAt")
	}

	got, err := store.Get(run.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != run.ID || got.Rows != 15 || got.Seed != 9 || got.Bytes != 512 || !got.CreatedAt.Equal(run.CreatedAt) {
		t.Errorf("Get returned %+v, want %+v", got, run)
	}

	if _, err := store.Get("missing"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrRunNotFound", err)
	}
}

func TestListOrdersByCreation(t *testing.T) {
	t.Parallel()

	store, err := NewStore(NewMemoryBackend())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, offset := range []int{3, 1, 2} {
		_, err := store.Record(Run{
			ID:        uuid.New().String(),
			CreatedAt: base.Add(time.Duration(offset) * time.Hour),
			Rows:      offset * 100,
		})
		if err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	runs, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("List returned %d runs, want 3", len(runs))
	}
	for i, want := range []int{100, 200, 300} {
		if runs[i].Rows != want {
			t.Errorf("runs[%d].Rows = %d, want %d", i, runs[i].Rows, want)
		}
	}
}

func TestOpenPersists(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "runs.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	run, err := store.Record(Run{Rows: 42, Format: "parquet"})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	runs, err := reopened.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != run.ID || runs[0].Rows != 42 {
		t.Errorf("List after reopen = %+v", runs)
	}
}
