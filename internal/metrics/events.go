package metrics

import (
	"context"

	"github.com/osse101/Codinho_Go/internal/event"
	"github.com/osse101/Codinho_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.AchievementUnlocked,
		event.RewardCollected,
		event.XPAwarded,
		event.LevelUp,
		event.BootcampLevelCompleted,
		event.SubmissionCreated,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := record(evt); err != nil {
		// Malformed payloads are counted but never fail the publisher
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func record(evt event.Event) error {
	switch evt.Type {
	case event.AchievementUnlocked:
		p, err := event.DecodePayload[event.AchievementUnlockedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		AchievementsUnlocked.WithLabelValues(p.AchievementID).Inc()

	case event.RewardCollected:
		p, err := event.DecodePayload[event.RewardCollectedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		RewardsCollected.WithLabelValues(p.RewardID, p.RewardType).Inc()

	case event.XPAwarded:
		p, err := event.DecodePayload[event.XPAwardedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		XPAwarded.Add(float64(p.Amount))

	case event.LevelUp:
		p, err := event.DecodePayload[event.LevelUpPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		LevelUps.Add(float64(p.NewLevel - p.OldLevel))

	case event.BootcampLevelCompleted:
		p, err := event.DecodePayload[event.BootcampLevelCompletedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		BootcampLevelsCompleted.WithLabelValues(p.BootcampID).Inc()

	case event.SubmissionCreated:
		p, err := event.DecodePayload[event.SubmissionCreatedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		Submissions.WithLabelValues(p.Status, p.Language).Inc()
	}
	return nil
}
