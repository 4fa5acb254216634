package manifest

import (
	"fmt"
	"sync"
)

// MemoryBackend keeps buckets in maps. Nothing survives Close.
type MemoryBackend struct {
	buckets map[string]map[string][]byte
	mu      sync.RWMutex
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		buckets: make(map[string]map[string][]byte),
	}
}

func (m *MemoryBackend) CreateBucket(name []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.buckets[string(name)]; !exists {
		m.buckets[string(name)] = make(map[string][]byte)
	}
	return nil
}

func (m *MemoryBackend) Put(bucket, key, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	bkt, exists := m.buckets[string(bucket)]
	if !exists {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}
	bkt[string(key)] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryBackend) Get(bucket, key []byte) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bkt, exists := m.buckets[string(bucket)]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}
	value, exists := bkt[string(key)]
	if !exists {
		return nil, nil
	}
	return append([]byte(nil), value...), nil
}

func (m *MemoryBackend) ForEach(bucket []byte, fn func(k, v []byte) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bkt, exists := m.buckets[string(bucket)]
	if !exists {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}
	for k, v := range bkt {
		if err := fn([]byte(k), v); err != nil {
			return err
		}
	}
	return nil
}

func (m *MemoryBackend) Close() error {
	return nil
}
