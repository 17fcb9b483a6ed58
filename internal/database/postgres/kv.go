package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// KVRepository implements the per-user key-value store for PostgreSQL
type KVRepository struct {
	db *pgxpool.Pool
}

// NewKVRepository creates a new KVRepository
func NewKVRepository(db *pgxpool.Pool) *KVRepository {
	return &KVRepository{db: db}
}

// GetEntry returns the entry stored under userID and key
func (r *KVRepository) GetEntry(ctx context.Context, userID, key string) ([]byte, bool, error) {
	var value []byte
	err := r.db.QueryRow(ctx, `
		SELECT entry_value
		FROM user_kv
		WHERE user_id = $1 AND entry_key = $2
	`, userID, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%s %q: %w", ErrMsgFailedToGetEntry, key, err)
	}
	return value, true, nil
}

// SetEntry inserts or replaces the entry stored under userID and key
func (r *KVRepository) SetEntry(ctx context.Context, userID, key string, value []byte) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_kv (user_id, entry_key, entry_value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, entry_key) DO UPDATE
		SET entry_value = EXCLUDED.entry_value, updated_at = NOW()
	`, userID, key, value)
	if err != nil {
		return fmt.Errorf("%s %q: %w", ErrMsgFailedToSetEntry, key, err)
	}
	return nil
}
