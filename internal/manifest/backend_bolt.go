package manifest

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// BoltBackend stores buckets in a bbolt file.
type BoltBackend struct {
	db *bolt.DB
}

func NewBoltBackend(path string) (*BoltBackend, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest database: %w", err)
	}

	return &BoltBackend{db: db}, nil
}

func (b *BoltBackend) CreateBucket(name []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(name)
		return err
	})
}

func (b *BoltBackend) Put(bucket, key, value []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(bucket)
		if bkt == nil {
			return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
		}
		return bkt.Put(key, value)
	})
}

func (b *BoltBackend) Get(bucket, key []byte) ([]byte, error) {
	var value []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(bucket)
		if bkt == nil {
			return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
		}
		if v := bkt.Get(key); v != nil {
			// only valid for the life of the transaction
			value = append([]byte(nil), v...)
		}
		return nil
	})
	return value, err
}

func (b *BoltBackend) ForEach(bucket []byte, fn func(k, v []byte) error) error {
	return b.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(bucket)
		if bkt == nil {
			return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
		}
		return bkt.ForEach(fn)
	})
}

func (b *BoltBackend) Close() error {
	return b.db.Close()
}
