package gamification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/Codinho_Go/internal/domain"
	"github.com/osse101/Codinho_Go/internal/logger"
	"github.com/osse101/Codinho_Go/internal/progression"
)

// Ledger owns the gamification state of one user and writes every change
// through its Store. State transitions are delegated to the pure Apply* functions.
type Ledger struct {
	mu    sync.Mutex
	state domain.LedgerState
	store Store
	now   func() time.Time
}

// NewLedger creates a ledger holding the default seed. Call Load to read persisted data.
func NewLedger(store Store) *Ledger {
	return &Ledger{
		state: DefaultState(),
		store: store,
		now:   time.Now,
	}
}

// Load reads the three persisted entries. Missing entries are seeded with their
// default value and written back immediately. Any read, parse or write failure
// resets the whole ledger to the default seed and returns an advisory message
// for the user; Load itself never fails.
func (l *Ledger) Load(ctx context.Context) string {
	l.mu.Lock()
	defer l.mu.Unlock()

	log := logger.FromContext(ctx)

	state, err := l.read(ctx)
	if err != nil {
		log.Warn(LogMsgLedgerLoadFallback, "error", err)
		l.state = DefaultState()
		return LoadAdvisory
	}

	l.state = state
	log.Debug(LogMsgLedgerLoaded, "total_xp", state.TotalXP, "level", state.CurrentLevel)
	return ""
}

func (l *Ledger) read(ctx context.Context) (domain.LedgerState, error) {
	state := DefaultState()

	data, found, err := l.store.Get(ctx, KeyAchievements)
	if err != nil {
		return state, fmt.Errorf("failed to read achievements: %w", err)
	}
	if found {
		if state.Achievements, err = DecodeAchievements(data); err != nil {
			return state, err
		}
	} else if err := l.seed(ctx, KeyAchievements, mustEncode(EncodeAchievements(state.Achievements))); err != nil {
		return state, err
	}

	data, found, err = l.store.Get(ctx, KeyRewards)
	if err != nil {
		return state, fmt.Errorf("failed to read rewards: %w", err)
	}
	if found {
		if state.Rewards, err = DecodeRewards(data); err != nil {
			return state, err
		}
	} else if err := l.seed(ctx, KeyRewards, mustEncode(EncodeRewards(state.Rewards))); err != nil {
		return state, err
	}

	data, found, err = l.store.Get(ctx, KeyXP)
	if err != nil {
		return state, fmt.Errorf("failed to read xp: %w", err)
	}
	if found {
		if state.TotalXP, err = DecodeXP(data); err != nil {
			return state, err
		}
	} else if err := l.seed(ctx, KeyXP, EncodeXP(0)); err != nil {
		return state, err
	}

	// Initialization is the only place the level is assigned rather than raised
	state.CurrentLevel = progression.LevelFor(state.TotalXP)
	return state, nil
}

func (l *Ledger) seed(ctx context.Context, key string, value []byte) error {
	if err := l.store.Set(ctx, key, value); err != nil {
		return fmt.Errorf("failed to persist default %s: %w", key, err)
	}
	logger.FromContext(ctx).Debug(LogMsgSeedPersisted, "key", key)
	return nil
}

// AddXP adds points to the total and raises the level when a threshold is crossed.
// Negative points are rejected with domain.ErrNegativeXP.
func (l *Ledger) AddXP(ctx context.Context, points int64) (Change, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next, change, err := ApplyXP(l.state, points)
	if err != nil {
		return Change{}, err
	}
	return change, l.commit(ctx, next, change)
}

// UnlockAchievement unlocks a locked achievement and awards its points.
// Unknown or already unlocked ids are ignored.
func (l *Ledger) UnlockAchievement(ctx context.Context, id string) (Change, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next, change := ApplyUnlock(l.state, id, l.now())
	return change, l.commit(ctx, next, change)
}

// CollectReward collects a reward the current level allows.
// Unknown, collected or level-gated ids are ignored.
func (l *Ledger) CollectReward(ctx context.Context, id string) (Change, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next, change := ApplyCollect(l.state, id, l.now())
	return change, l.commit(ctx, next, change)
}

// ClearRecentlyUnlockedAchievement acknowledges the pending achievement notification
func (l *Ledger) ClearRecentlyUnlockedAchievement() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = ClearRecentAchievement(l.state)
}

// ClearRecentlyCollectedReward acknowledges the pending reward notification
func (l *Ledger) ClearRecentlyCollectedReward() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = ClearRecentReward(l.state)
}

// Snapshot returns a deep copy of the current state
func (l *Ledger) Snapshot() domain.LedgerState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Clone()
}

// commit writes the dirty entries of next and then adopts it as the current state.
// On a write failure the in-memory state is left unchanged.
func (l *Ledger) commit(ctx context.Context, next domain.LedgerState, change Change) error {
	if !change.Changed() {
		return nil
	}

	if change.AchievementsDirty {
		data, err := EncodeAchievements(next.Achievements)
		if err != nil {
			return fmt.Errorf("failed to encode achievements: %w", err)
		}
		if err := l.store.Set(ctx, KeyAchievements, data); err != nil {
			return fmt.Errorf("failed to persist achievements: %w", err)
		}
	}

	if change.RewardsDirty {
		data, err := EncodeRewards(next.Rewards)
		if err != nil {
			return fmt.Errorf("failed to encode rewards: %w", err)
		}
		if err := l.store.Set(ctx, KeyRewards, data); err != nil {
			return fmt.Errorf("failed to persist rewards: %w", err)
		}
	}

	if change.XPDirty {
		if err := l.store.Set(ctx, KeyXP, EncodeXP(next.TotalXP)); err != nil {
			return fmt.Errorf("failed to persist xp: %w", err)
		}
	}

	l.state = next
	return nil
}

// mustEncode unwraps the result of encoding a seed list, which cannot fail
func mustEncode(data []byte, err error) []byte {
	if err != nil {
		panic(fmt.Sprintf("gamification: encoding default seed: %v", err))
	}
	return data
}
