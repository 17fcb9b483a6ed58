// Package memory holds process-local repository implementations used when no
// database is configured and in tests.
package memory

import (
	"context"
	"sync"
)

// KVRepository keeps per-user entries in a map. Values are copied on the way in
// and out so callers never share backing arrays.
type KVRepository struct {
	mu      sync.RWMutex
	entries map[string]map[string][]byte
}

// NewKVRepository creates an empty KVRepository
func NewKVRepository() *KVRepository {
	return &KVRepository{entries: make(map[string]map[string][]byte)}
}

// GetEntry returns the entry stored under userID and key
func (r *KVRepository) GetEntry(_ context.Context, userID, key string) ([]byte, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.entries[userID][key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

// SetEntry stores value under userID and key
func (r *KVRepository) SetEntry(_ context.Context, userID, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.entries[userID]
	if !ok {
		user = make(map[string][]byte)
		r.entries[userID] = user
	}
	user[key] = append([]byte(nil), value...)
	return nil
}
