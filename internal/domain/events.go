package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "gamification.level_up")
const (
	// EventTypeAchievementUnlocked is published when a locked achievement becomes unlocked
	EventTypeAchievementUnlocked = "gamification.achievement_unlocked"

	// EventTypeRewardCollected is published when a reward is collected
	EventTypeRewardCollected = "gamification.reward_collected"

	// EventTypeXPAwarded is published whenever XP is added to a ledger
	EventTypeXPAwarded = "gamification.xp_awarded"

	// EventTypeLevelUp is published when an XP award raises the derived level
	EventTypeLevelUp = "gamification.level_up"

	// EventTypeBootcampLevelCompleted is published when a bootcamp level is completed for the first time
	EventTypeBootcampLevelCompleted = "bootcamp.level_completed"

	// EventTypeSubmissionCreated is published when a kata solution is stored
	EventTypeSubmissionCreated = "submission.created"
)
