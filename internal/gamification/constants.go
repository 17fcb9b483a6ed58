package gamification

import "time"

// Persisted entry keys. Each key holds an independent structural dump.
const (
	KeyAchievements = "codinho_achievements"
	KeyRewards      = "codinho_rewards"
	KeyXP           = "codinho_xp"
)

// LoadAdvisory is returned by Load when persisted data could not be read and the
// default seed was used instead
const LoadAdvisory = "Could not load your gamification data. Default progress was restored; please try again later."

// Ledger cache defaults
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 30 * time.Minute
)

// Log messages
const (
	LogMsgLedgerLoaded        = "Gamification ledger loaded"
	LogMsgLedgerLoadFallback  = "Failed to load gamification data, using default seed"
	LogMsgSeedPersisted       = "Persisted default gamification entry"
	LogMsgAchievementUnlocked = "Achievement unlocked"
	LogMsgRewardCollected     = "Reward collected"
	LogMsgXPAwarded           = "Awarded XP"
	LogMsgPublishFailed       = "Failed to publish gamification event"
)
