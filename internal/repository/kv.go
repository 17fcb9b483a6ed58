package repository

import "context"

// KV stores opaque per-user entries under string keys
type KV interface {
	GetEntry(ctx context.Context, userID, key string) (value []byte, found bool, err error)
	SetEntry(ctx context.Context, userID, key string, value []byte) error
}

// UserScope binds a KV to a single user. It satisfies the per-user store
// interfaces of the gamification and bootcamp packages.
type UserScope struct {
	kv     KV
	userID string
}

// ForUser scopes kv to userID
func ForUser(kv KV, userID string) *UserScope {
	return &UserScope{kv: kv, userID: userID}
}

// Get returns the user's entry under key
func (s *UserScope) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.kv.GetEntry(ctx, s.userID, key)
}

// Set writes the user's entry under key
func (s *UserScope) Set(ctx context.Context, key string, value []byte) error {
	return s.kv.SetEntry(ctx, s.userID, key, value)
}
