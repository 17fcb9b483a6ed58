package bootcamp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sync"

	"github.com/osse101/Codinho_Go/internal/domain"
	"github.com/osse101/Codinho_Go/internal/logger"
)

// Store is the key-value persistence surface a tracker writes through
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

// StoreFactory returns the Store holding the entries of userID
type StoreFactory func(userID string) Store

// Tracker owns the bootcamp list of one user
type Tracker struct {
	mu        sync.Mutex
	bootcamps []domain.Bootcamp
	store     Store
}

// NewTracker creates a tracker holding the default seed. Call Load to read persisted data.
func NewTracker(store Store) *Tracker {
	return &Tracker{
		bootcamps: DefaultBootcamps(),
		store:     store,
	}
}

// Load reads the persisted bootcamp list, seeding it when absent. Any failure
// restores the default seed and returns an advisory message.
func (t *Tracker) Load(ctx context.Context) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	bootcamps, err := t.read(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgLoadFallback, "error", err)
		t.bootcamps = DefaultBootcamps()
		return LoadAdvisory
	}
	t.bootcamps = bootcamps
	return ""
}

func (t *Tracker) read(ctx context.Context) ([]domain.Bootcamp, error) {
	data, found, err := t.store.Get(ctx, KeyBootcamps)
	if err != nil {
		return nil, fmt.Errorf("failed to read bootcamps: %w", err)
	}
	if found {
		return Decode(data)
	}

	seed := DefaultBootcamps()
	if err := t.write(ctx, seed); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug(LogMsgSeedPersisted)
	return seed, nil
}

// List returns a copy of every bootcamp in catalog order
func (t *Tracker) List() []domain.Bootcamp {
	t.mu.Lock()
	defer t.mu.Unlock()
	return domain.CloneBootcamps(t.bootcamps)
}

// Get returns one bootcamp
func (t *Tracker) Get(id string) (domain.Bootcamp, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.find(id)
	if idx < 0 {
		return domain.Bootcamp{}, fmt.Errorf("%w: %s", domain.ErrBootcampNotFound, id)
	}
	return domain.CloneBootcamps(t.bootcamps[idx : idx+1])[0], nil
}

// UpdateProgress overwrites the progress percentage of a bootcamp
func (t *Tracker) UpdateProgress(ctx context.Context, id string, progress int) (domain.Bootcamp, error) {
	if progress < MinProgress || progress > MaxProgress {
		return domain.Bootcamp{}, fmt.Errorf("%w: progress must be between %d and %d", domain.ErrInvalidInput, MinProgress, MaxProgress)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.find(id)
	if idx < 0 {
		return domain.Bootcamp{}, fmt.Errorf("%w: %s", domain.ErrBootcampNotFound, id)
	}

	next := domain.CloneBootcamps(t.bootcamps)
	next[idx].Progress = progress
	if err := t.commit(ctx, next); err != nil {
		return domain.Bootcamp{}, err
	}
	return next[idx], nil
}

// CompleteLevel records a finished level, advances the current level and recomputes
// progress. Reaching 100% unlocks the first bootcamp that is still locked.
// newlyCompleted is false when the level had been completed before.
func (t *Tracker) CompleteLevel(ctx context.Context, id string, level int) (bc domain.Bootcamp, newlyCompleted bool, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.find(id)
	if idx < 0 {
		return domain.Bootcamp{}, false, fmt.Errorf("%w: %s", domain.ErrBootcampNotFound, id)
	}

	current := t.bootcamps[idx]
	if level < 1 || level > current.Levels {
		return domain.Bootcamp{}, false, fmt.Errorf("%w: %d not in 1..%d", domain.ErrInvalidLevel, level, current.Levels)
	}

	next := domain.CloneBootcamps(t.bootcamps)
	b := &next[idx]

	newlyCompleted = !b.HasCompleted(level)
	if newlyCompleted {
		b.CompletedLevels = append(b.CompletedLevels, level)
	}
	b.CurrentLevel = min(level+1, b.Levels)
	b.Progress = progressFor(len(b.CompletedLevels), b.Levels)

	if b.Progress == MaxProgress {
		for i := range next {
			if !next[i].IsUnlocked {
				next[i].IsUnlocked = true
				logger.FromContext(ctx).Info(LogMsgBootcampUnlocked, "bootcamp_id", next[i].ID)
				break
			}
		}
	}

	if err := t.commit(ctx, next); err != nil {
		return domain.Bootcamp{}, false, err
	}
	return next[idx], newlyCompleted, nil
}

// Unlock makes a bootcamp playable. Unlocking twice is a no-op.
func (t *Tracker) Unlock(ctx context.Context, id string) (domain.Bootcamp, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.find(id)
	if idx < 0 {
		return domain.Bootcamp{}, fmt.Errorf("%w: %s", domain.ErrBootcampNotFound, id)
	}
	if t.bootcamps[idx].IsUnlocked {
		return domain.CloneBootcamps(t.bootcamps[idx : idx+1])[0], nil
	}

	next := domain.CloneBootcamps(t.bootcamps)
	next[idx].IsUnlocked = true
	if err := t.commit(ctx, next); err != nil {
		return domain.Bootcamp{}, err
	}
	return next[idx], nil
}

func (t *Tracker) find(id string) int {
	for i := range t.bootcamps {
		if t.bootcamps[i].ID == id {
			return i
		}
	}
	return -1
}

// commit persists next and adopts it. A failed write leaves the tracker unchanged.
func (t *Tracker) commit(ctx context.Context, next []domain.Bootcamp) error {
	if err := t.write(ctx, next); err != nil {
		return err
	}
	t.bootcamps = next
	return nil
}

func (t *Tracker) write(ctx context.Context, bootcamps []domain.Bootcamp) error {
	data, err := json.Marshal(bootcamps)
	if err != nil {
		return fmt.Errorf("failed to encode bootcamps: %w", err)
	}
	if err := t.store.Set(ctx, KeyBootcamps, data); err != nil {
		return fmt.Errorf("failed to persist bootcamps: %w", err)
	}
	return nil
}

// progressFor is the rounded share of completed levels, in percent
func progressFor(completed, levels int) int {
	if levels <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(levels) * 100))
}

// Decode parses a persisted bootcamp list and rejects inconsistent entries as corrupt
func Decode(data []byte) ([]domain.Bootcamp, error) {
	var bootcamps []domain.Bootcamp
	if err := json.Unmarshal(data, &bootcamps); err != nil {
		return nil, fmt.Errorf("%w: bootcamps: %v", domain.ErrCorruptEntry, err)
	}
	if bootcamps == nil {
		return nil, fmt.Errorf("%w: bootcamps: not a list", domain.ErrCorruptEntry)
	}

	seen := make(map[string]struct{}, len(bootcamps))
	for i := range bootcamps {
		b := &bootcamps[i]
		if b.ID == "" {
			return nil, fmt.Errorf("%w: bootcamp without id", domain.ErrCorruptEntry)
		}
		if _, dup := seen[b.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate bootcamp %q", domain.ErrCorruptEntry, b.ID)
		}
		seen[b.ID] = struct{}{}

		if b.Levels < 1 || b.CurrentLevel < 1 || b.CurrentLevel > b.Levels {
			return nil, fmt.Errorf("%w: bootcamp %q has invalid levels", domain.ErrCorruptEntry, b.ID)
		}
		if b.Progress < MinProgress || b.Progress > MaxProgress {
			return nil, fmt.Errorf("%w: bootcamp %q has invalid progress", domain.ErrCorruptEntry, b.ID)
		}
		if b.CompletedLevels == nil {
			b.CompletedLevels = []int{}
		}
	}
	return bootcamps, nil
}
