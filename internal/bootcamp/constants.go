package bootcamp

import "time"

// KeyBootcamps is the persisted entry holding a user's bootcamp list
const KeyBootcamps = "codinho_bootcamps"

// LoadAdvisory is returned when persisted bootcamps could not be read
const LoadAdvisory = "Could not load your projects. Default projects were restored; please try again later."

// Progress bounds, in percent
const (
	MinProgress = 0
	MaxProgress = 100
)

// Tracker cache defaults
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 30 * time.Minute
)

// Log messages
const (
	LogMsgLoadFallback     = "Failed to load bootcamps, using default seed"
	LogMsgSeedPersisted    = "Persisted default bootcamps"
	LogMsgLevelCompleted   = "Bootcamp level completed"
	LogMsgBootcampUnlocked = "Bootcamp unlocked"
	LogMsgPublishFailed    = "Failed to publish bootcamp event"
)
