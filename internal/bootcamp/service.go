package bootcamp

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Codinho_Go/internal/concurrency"
	"github.com/osse101/Codinho_Go/internal/domain"
	"github.com/osse101/Codinho_Go/internal/event"
	"github.com/osse101/Codinho_Go/internal/logger"
)

// Service defines the bootcamp business logic for many users
type Service interface {
	List(ctx context.Context, userID string) (*domain.BootcampList, error)
	Get(ctx context.Context, userID, bootcampID string) (*domain.Bootcamp, error)
	UpdateProgress(ctx context.Context, userID, bootcampID string, progress int) (*domain.Bootcamp, error)
	CompleteLevel(ctx context.Context, userID, bootcampID string, level int) (*domain.Bootcamp, error)
	Unlock(ctx context.Context, userID, bootcampID string) (*domain.Bootcamp, error)
	Reload(ctx context.Context, userID string) (*domain.BootcampList, error)
}

type cachedTracker struct {
	tracker  *Tracker
	advisory string
}

type service struct {
	stores   StoreFactory
	eventBus event.Bus
	cache    *expirable.LRU[string, *cachedTracker]
	locks    *concurrency.LockManager
}

// NewService creates a new bootcamp service
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
		cache:    expirable.NewLRU[string, *cachedTracker](size, nil, ttl),
		locks:    concurrency.NewLockManager(),
	}
}

// acquire locks userID and returns its tracker. The lock lives outside the
// cache so a tracker evicted mid-request is never used alongside a fresh one.
func (s *service) acquire(ctx context.Context, userID string) (entry *cachedTracker, release func(), err error) {
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

func (s *service) load(ctx context.Context, userID string) *cachedTracker {
	tracker := NewTracker(s.stores(userID))
	return &cachedTracker{tracker: tracker, advisory: tracker.Load(ctx)}
}

func (s *service) List(ctx context.Context, userID string) (*domain.BootcampList, error) {
	entry, release, err := s.acquire(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer release()
	return &domain.BootcampList{Bootcamps: entry.tracker.List(), Advisory: entry.advisory}, nil
}

func (s *service) Get(ctx context.Context, userID, bootcampID string) (*domain.Bootcamp, error) {
	entry, release, err := s.acquire(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer release()
	b, err := entry.tracker.Get(bootcampID)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *service) UpdateProgress(ctx context.Context, userID, bootcampID string, progress int) (*domain.Bootcamp, error) {
	entry, release, err := s.acquire(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer release()
	b, err := entry.tracker.UpdateProgress(ctx, bootcampID, progress)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CompleteLevel marks a level as done and publishes the completion the first time it happens
func (s *service) CompleteLevel(ctx context.Context, userID, bootcampID string, level int) (*domain.Bootcamp, error) {
	entry, release, err := s.acquire(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer release()
	b, newly, err := entry.tracker.CompleteLevel(ctx, bootcampID, level)
	if err != nil {
		return nil, err
	}

	if newly {
		logger.FromContext(ctx).Info(LogMsgLevelCompleted,
			"user_id", userID,
			"bootcamp_id", bootcampID,
			"level", level,
			"progress", b.Progress)

		if s.eventBus != nil {
			evt := event.NewBootcampLevelCompletedEvent(userID, bootcampID, level, b.Progress)
			if err := s.eventBus.Publish(ctx, evt); err != nil {
				logger.FromContext(ctx).Warn(LogMsgPublishFailed, "bootcamp_id", bootcampID, "error", err)
			}
		}
	}
	return &b, nil
}

func (s *service) Unlock(ctx context.Context, userID, bootcampID string) (*domain.Bootcamp, error) {
	entry, release, err := s.acquire(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer release()
	b, err := entry.tracker.Unlock(ctx, bootcampID)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Reload drops the cached tracker and reads it again from the store
func (s *service) Reload(ctx context.Context, userID string) (*domain.BootcampList, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	release := s.locks.Lock(userID)
	defer release()

	entry := s.load(ctx, userID)
	s.cache.Add(userID, entry)
	return &domain.BootcampList{Bootcamps: entry.tracker.List(), Advisory: entry.advisory}, nil
}
