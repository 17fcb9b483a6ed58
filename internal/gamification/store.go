package gamification

import "context"

// Store is the key-value persistence surface a ledger writes through.
// Implementations are scoped to a single user.
type Store interface {
	// Get returns the value under key. found is false when the key was never written.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

// StoreFactory returns the Store holding the entries of userID
type StoreFactory func(userID string) Store
