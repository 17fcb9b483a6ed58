package progression

// Level curve constants
const (
	// XPPerLevel is the per-level cost multiplier: advancing from level N costs XPPerLevel * N
	XPPerLevel int64 = 100

	// FirstLevel is the level of a user with zero XP
	FirstLevel = 1
)
