package manifest

// Backend is a bucketed key-value store. Values are opaque bytes; Store
// decides the encoding.
type Backend interface {
	CreateBucket(name []byte) error
	Put(bucket, key, value []byte) error
	// Get returns nil, nil for a missing key
	Get(bucket, key []byte) ([]byte, error)
	ForEach(bucket []byte, fn func(k, v []byte) error) error
	Close() error
}
