// Package manifest keeps a ledger of generation runs so a fixture can be
// traced back to the seed and settings that produced it.
package manifest

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

var (
	ErrRunNotFound    = errors.New("run not found")
	ErrBucketNotFound = errors.New("bucket not found")
)

var runsBucket = []byte("runs")

// Run is one recorded generation.
type Run struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Rows      int       `json:"rows"`
	Path      string    `json:"path"`
	Format    string    `json:"format"`
	Seed      uint64    `json:"seed"`
	Bytes     int64     `json:"bytes"`
}

// Store records runs in a Backend as JSON.
type Store struct {
	backend Backend
}

// Open returns a Store backed by a bbolt file at path.
func Open(path string) (*Store, error) {
	backend, err := NewBoltBackend(path)
	if err != nil {
		return nil, err
	}

	store, err := NewStore(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return store, nil
}

func NewStore(backend Backend) (*Store, error) {
	if err := backend.CreateBucket(runsBucket); err != nil {
		return nil, fmt.Errorf("failed to create runs bucket: %w", err)
	}
	return &Store{backend: backend}, nil
}

// Record saves run, filling in ID and CreatedAt when unset.
func (s *Store) Record(run Run) (Run, error) {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(run)
	if err != nil {
		return Run{}, fmt.Errorf("failed to encode run: %w", err)
	}
	if err := s.backend.Put(runsBucket, []byte(run.ID), data); err != nil {
		return Run{}, fmt.Errorf("failed to store run %s: %w", run.ID, err)
	}
	return run, nil
}

func (s *Store) Get(id string) (Run, error) {
	data, err := s.backend.Get(runsBucket, []byte(id))
	if err != nil {
		return Run{}, err
	}
	if data == nil {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return Run{}, fmt.Errorf("failed to decode run %s: %w", id, err)
	}
	return run, nil
}

// List returns every run, oldest first.
func (s *Store) List() ([]Run, error) {
	var runs []Run
	err := s.backend.ForEach(runsBucket, func(k, v []byte) error {
		var run Run
		if err := json.Unmarshal(v, &run); err != nil {
			return fmt.Errorf("failed to decode run %s: %w", k, err)
		}
		runs = append(runs, run)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(runs, func(a, b Run) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return runs, nil
}

func (s *Store) Close() error {
	return s.backend.Close()
}

