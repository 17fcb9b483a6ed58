package progression

import "github.com/osse101/Codinho_Go/internal/domain"

// RequiredXP returns the XP needed to advance from level to level+1.
// The cost grows linearly with the level, so cumulative XP grows quadratically.
func RequiredXP(level int) int64 {
	return XPPerLevel * int64(level)
}

// LevelFor determines the level reached with totalXP.
// Starting at FirstLevel it repeatedly pays the current level's cost while
// enough XP remains. Negative input is treated as zero.
func LevelFor(totalXP int64) int {
	level, _ := walk(totalXP)
	return level
}

// CumulativeXP returns the total XP at which level is first reached
func CumulativeXP(level int) int64 {
	cumulative := int64(0)
	for l := FirstLevel; l < level; l++ {
		cumulative += RequiredXP(l)
	}
	return cumulative
}

// Progress returns the level reached with totalXP and how far into it the user is
func Progress(totalXP int64) domain.LevelProgress {
	if totalXP < 0 {
		totalXP = 0
	}
	level, remainder := walk(totalXP)
	next := RequiredXP(level)
	return domain.LevelProgress{
		Level:          level,
		TotalXP:        totalXP,
		XPIntoLevel:    remainder,
		XPForNextLevel: next,
		XPToNextLevel:  next - remainder,
	}
}

// walk runs the subtract-and-increment loop and returns the level together with
// the XP left over inside that level. The threshold strictly increases, so the
// loop terminates for any finite input.
func walk(xp int64) (int, int64) {
	if xp < 0 {
		xp = 0
	}

	level := FirstLevel
	threshold := RequiredXP(level)
	for xp >= threshold {
		xp -= threshold
		level++
		threshold = RequiredXP(level)
	}
	return level, xp
}
