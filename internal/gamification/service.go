package gamification

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Codinho_Go/internal/concurrency"
	"github.com/osse101/Codinho_Go/internal/domain"
	"github.com/osse101/Codinho_Go/internal/event"
	"github.com/osse101/Codinho_Go/internal/logger"
	"github.com/osse101/Codinho_Go/internal/progression"
)

// XP sources reported on award events
const (
	SourceManual      = "manual"
	SourceAchievement = "achievement"
)

// Service defines the gamification business logic for many users
type Service interface {
	GetLedger(ctx context.Context, userID string) (*domain.LedgerView, error)
	AddXP(ctx context.Context, userID string, points int64) (*domain.LedgerView, error)
	UnlockAchievement(ctx context.Context, userID, achievementID string) (*domain.LedgerView, error)
	CollectReward(ctx context.Context, userID, rewardID string) (*domain.LedgerView, error)
	ClearRecentAchievement(ctx context.Context, userID string) (*domain.LedgerView, error)
	ClearRecentReward(ctx context.Context, userID string) (*domain.LedgerView, error)
	GetProgress(ctx context.Context, userID string) (domain.LevelProgress, error)
	GetEligibleRewards(ctx context.Context, userID string) ([]domain.Reward, error)
	Reload(ctx context.Context, userID string) (*domain.LedgerView, error)
	Shutdown(ctx context.Context) error
}

// cachedLedger pairs a loaded ledger with the advisory its load produced
type cachedLedger struct {
	ledger   *Ledger
	advisory string
}

type service struct {
	stores   StoreFactory
	eventBus event.Bus
	cache    *expirable.LRU[string, *cachedLedger]
	now      func() time.Time

	// locks holds one lock per user outside the cache. An evicted ledger can
	// still be in use by a request, so the cache entry cannot carry the lock.
	locks *concurrency.LockManager
}

// NewService creates a new gamification service.
// Ledgers stay cached for ttl after their last load; size bounds the number of users held.
func NewService(stores StoreFactory, eventBus event.Bus, size int, ttl time.Duration) Service {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &service{
		stores:   stores,
		eventBus: eventBus,
		cache:    expirable.NewLRU[string, *cachedLedger](size, nil, ttl),
		now:      time.Now,
		locks:    concurrency.NewLockManager(),
	}
}

// acquire locks userID and returns its ledger, loading it when it is not cached.
// The caller must call release once done with the ledger.
func (s *service) acquire(ctx context.Context, userID string) (entry *cachedLedger, release func(), err error) {
	if userID == "" {
		return nil, nil, domain.ErrUnauthorized
	}

	release = s.locks.Lock(userID)
	entry, ok := s.cache.Get(userID)
	if !ok {
		entry = s.load(ctx, userID)
		s.cache.Add(userID, entry)
	}
	return entry, release, nil
}

func (s *service) load(ctx context.Context, userID string) *cachedLedger {
	ledger := NewLedger(s.stores(userID))
	ledger.now = s.now
	advisory := ledger.Load(ctx)
	return &cachedLedger{ledger: ledger, advisory: advisory}
}

func (s *service) view(entry *cachedLedger) *domain.LedgerView {
	state := entry.ledger.Snapshot()
	return &domain.LedgerView{
		LedgerState:     state,
		Progress:        progression.Progress(state.TotalXP),
		EligibleRewards: EligibleRewards(state),
		Advisory:        entry.advisory,
	}
}

// GetLedger returns the user's ledger, loading it on first use
func (s *service) GetLedger(ctx context.Context, userID string) (*domain.LedgerView, error) {
	entry, release, err := s.acquire(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer release()
	return s.view(entry), nil
}

// AddXP awards points to the user
func (s *service) AddXP(ctx context.Context, userID string, points int64) (*domain.LedgerView, error) {
	entry, release, err := s.acquire(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer release()

	change, err := entry.ledger.AddXP(ctx, points)
	if err != nil {
		return nil, err
	}
	if !change.Changed() {
		return s.view(entry), nil
	}

	logger.FromContext(ctx).Info(LogMsgXPAwarded, "user_id", userID, "amount", points)
	s.publishXP(ctx, userID, change, entry.ledger, SourceManual)
	return s.view(entry), nil
}

// UnlockAchievement unlocks an achievement. Unknown and already unlocked ids
// return the unchanged ledger.
func (s *service) UnlockAchievement(ctx context.Context, userID, achievementID string) (*domain.LedgerView, error) {
	entry, release, err := s.acquire(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer release()

	change, err := entry.ledger.UnlockAchievement(ctx, achievementID)
	if err != nil {
		return nil, err
	}
	if change.Achievement == nil {
		return s.view(entry), nil
	}

	logger.FromContext(ctx).Info(LogMsgAchievementUnlocked,
		"user_id", userID,
		"achievement_id", achievementID,
		"points", change.Achievement.Points)

	s.publish(ctx, event.NewAchievementUnlockedEvent(userID, achievementID, change.Achievement.Points))
	if change.XPDirty {
		s.publishXP(ctx, userID, change, entry.ledger, SourceAchievement)
	}
	return s.view(entry), nil
}

// CollectReward collects a reward. Unknown, collected or level-gated rewards
// return the unchanged ledger.
func (s *service) CollectReward(ctx context.Context, userID, rewardID string) (*domain.LedgerView, error) {
	entry, release, err := s.acquire(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer release()

	change, err := entry.ledger.CollectReward(ctx, rewardID)
	if err != nil {
		return nil, err
	}
	if change.Reward == nil {
		return s.view(entry), nil
	}

	logger.FromContext(ctx).Info(LogMsgRewardCollected, "user_id", userID, "reward_id", rewardID)
	s.publish(ctx, event.NewRewardCollectedEvent(userID, rewardID, change.Reward.Type))
	return s.view(entry), nil
}

// ClearRecentAchievement acknowledges the user's pending achievement notification
func (s *service) ClearRecentAchievement(ctx context.Context, userID string) (*domain.LedgerView, error) {
	entry, release, err := s.acquire(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer release()
	entry.ledger.ClearRecentlyUnlockedAchievement()
	return s.view(entry), nil
}

// ClearRecentReward acknowledges the user's pending reward notification
func (s *service) ClearRecentReward(ctx context.Context, userID string) (*domain.LedgerView, error) {
	entry, release, err := s.acquire(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer release()
	entry.ledger.ClearRecentlyCollectedReward()
	return s.view(entry), nil
}

func (s *service) GetProgress(ctx context.Context, userID string) (domain.LevelProgress, error) {
	entry, release, err := s.acquire(ctx, userID)
	if err != nil {
		return domain.LevelProgress{}, err
	}
	defer release()
	return progression.Progress(entry.ledger.Snapshot().TotalXP), nil
}

func (s *service) GetEligibleRewards(ctx context.Context, userID string) ([]domain.Reward, error) {
	entry, release, err := s.acquire(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer release()
	return EligibleRewards(entry.ledger.Snapshot()), nil
}

// Reload drops the cached ledger and reads it again from the store
func (s *service) Reload(ctx context.Context, userID string) (*domain.LedgerView, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	release := s.locks.Lock(userID)
	defer release()

	entry := s.load(ctx, userID)
	s.cache.Add(userID, entry)
	return s.view(entry), nil
}

// Shutdown drops every cached ledger. All writes are synchronous so nothing is pending.
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("Gamification service shutting down...", "cached_ledgers", s.cache.Len())
	s.cache.Purge()
	log.Info("Gamification service shutdown complete")
	return nil
}

func (s *service) publishXP(ctx context.Context, userID string, change Change, ledger *Ledger, source string) {
	total := ledger.Snapshot().TotalXP
	s.publish(ctx, event.NewXPAwardedEvent(userID, change.XPGained, total, source))
	if change.LeveledUp() {
		s.publish(ctx, event.NewLevelUpEvent(userID, change.OldLevel, change.NewLevel))
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
