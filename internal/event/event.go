package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/Codinho_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Event types
const (
	AchievementUnlocked    Type = domain.EventTypeAchievementUnlocked
	RewardCollected        Type = domain.EventTypeRewardCollected
	XPAwarded              Type = domain.EventTypeXPAwarded
	LevelUp                Type = domain.EventTypeLevelUp
	BootcampLevelCompleted Type = domain.EventTypeBootcampLevelCompleted
	SubmissionCreated      Type = domain.EventTypeSubmissionCreated
)

// Typed event payloads for type safety

// AchievementUnlockedPayloadV1 is the typed payload for achievement unlock events
type AchievementUnlockedPayloadV1 struct {
	UserID        string `json:"user_id"`
	AchievementID string `json:"achievement_id"`
	Points        int64  `json:"points"`
	Timestamp     int64  `json:"timestamp"`
}

// RewardCollectedPayloadV1 is the typed payload for reward collection events
type RewardCollectedPayloadV1 struct {
	UserID     string `json:"user_id"`
	RewardID   string `json:"reward_id"`
	RewardType string `json:"reward_type"`
	Timestamp  int64  `json:"timestamp"`
}

// XPAwardedPayloadV1 is the typed payload for XP award events
type XPAwardedPayloadV1 struct {
	UserID    string `json:"user_id"`
	Amount    int64  `json:"amount"`
	TotalXP   int64  `json:"total_xp"`
	Source    string `json:"source,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// LevelUpPayloadV1 is the typed payload for level up events
type LevelUpPayloadV1 struct {
	UserID   string `json:"user_id"`
	OldLevel int    `json:"old_level"`
	NewLevel int    `json:"new_level"`
}

// BootcampLevelCompletedPayloadV1 is the typed payload for bootcamp level completion events
type BootcampLevelCompletedPayloadV1 struct {
	UserID     string `json:"user_id"`
	BootcampID string `json:"bootcamp_id"`
	Level      int    `json:"level"`
	Progress   int    `json:"progress"`
}

// SubmissionCreatedPayloadV1 is the typed payload for submission events
type SubmissionCreatedPayloadV1 struct {
	SubmissionID string `json:"submission_id"`
	UserID       string `json:"user_id"`
	KataID       string `json:"kata_id"`
	Language     string `json:"language"`
	Status       string `json:"status"`
}

// Type-safe event constructors

// NewAchievementUnlockedEvent creates a new achievement unlocked event
func NewAchievementUnlockedEvent(userID, achievementID string, points int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AchievementUnlocked,
		Payload: AchievementUnlockedPayloadV1{
			UserID:        userID,
			AchievementID: achievementID,
			Points:        points,
			Timestamp:     time.Now().Unix(),
		},
	}
}

// NewRewardCollectedEvent creates a new reward collected event
func NewRewardCollectedEvent(userID, rewardID string, rewardType domain.RewardType) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RewardCollected,
		Payload: RewardCollectedPayloadV1{
			UserID:     userID,
			RewardID:   rewardID,
			RewardType: string(rewardType),
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewXPAwardedEvent creates a new XP awarded event
func NewXPAwardedEvent(userID string, amount, totalXP int64, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    XPAwarded,
		Payload: XPAwardedPayloadV1{
			UserID:    userID,
			Amount:    amount,
			TotalXP:   totalXP,
			Source:    source,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"source": source,
		},
	}
}

// NewLevelUpEvent creates a new level up event
func NewLevelUpEvent(userID string, oldLevel, newLevel int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LevelUp,
		Payload: LevelUpPayloadV1{
			UserID:   userID,
			OldLevel: oldLevel,
			NewLevel: newLevel,
		},
	}
}

// NewBootcampLevelCompletedEvent creates a new bootcamp level completed event
func NewBootcampLevelCompletedEvent(userID, bootcampID string, level, progress int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BootcampLevelCompleted,
		Payload: BootcampLevelCompletedPayloadV1{
			UserID:     userID,
			BootcampID: bootcampID,
			Level:      level,
			Progress:   progress,
		},
	}
}

// NewSubmissionCreatedEvent creates a new submission created event
func NewSubmissionCreatedEvent(sub domain.Submission) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SubmissionCreated,
		Payload: SubmissionCreatedPayloadV1{
			SubmissionID: sub.ID.String(),
			UserID:       sub.UserID,
			KataID:       sub.KataID.String(),
			Language:     sub.Language,
			Status:       string(sub.Status),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
