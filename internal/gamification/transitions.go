package gamification

import (
	"fmt"
	"time"

	"github.com/osse101/Codinho_Go/internal/domain"
	"github.com/osse101/Codinho_Go/internal/progression"
)

// Change describes the effect of a transition: which persisted entries became
// dirty and what happened, so the caller can persist and report it.
type Change struct {
	AchievementsDirty bool
	RewardsDirty      bool
	XPDirty           bool

	XPGained    int64
	OldLevel    int
	NewLevel    int
	Achievement *domain.Achievement
	Reward      *domain.Reward
}

// LeveledUp reports whether the transition raised the derived level
func (c Change) LeveledUp() bool {
	return c.NewLevel > c.OldLevel
}

// Changed reports whether anything needs to be persisted
func (c Change) Changed() bool {
	return c.AchievementsDirty || c.RewardsDirty || c.XPDirty
}

// ApplyXP adds points to the state's total XP and recomputes the level.
// The recomputed level only replaces the current one when it is higher.
// Zero points change nothing.
func ApplyXP(state domain.LedgerState, points int64) (domain.LedgerState, Change, error) {
	if points < 0 {
		return state, Change{}, fmt.Errorf("%w: %d", domain.ErrNegativeXP, points)
	}
	next, change := addXP(state.Clone(), points)
	return next, change, nil
}

// addXP applies a non-negative award to next, which the caller already owns
func addXP(next domain.LedgerState, points int64) (domain.LedgerState, Change) {
	change := Change{
		OldLevel: next.CurrentLevel,
		NewLevel: next.CurrentLevel,
	}
	if points == 0 {
		return next, change
	}

	next.TotalXP += points
	change.XPDirty = true
	change.XPGained = points

	if level := progression.LevelFor(next.TotalXP); level > next.CurrentLevel {
		next.CurrentLevel = level
		change.NewLevel = level
	}
	return next, change
}

// ApplyUnlock unlocks the achievement with the given id and awards its points.
// Unknown or already unlocked achievements leave the state untouched.
func ApplyUnlock(state domain.LedgerState, id string, now time.Time) (domain.LedgerState, Change) {
	idx := state.FindAchievement(id)
	if idx < 0 || state.Achievements[idx].IsUnlocked {
		return state, Change{OldLevel: state.CurrentLevel, NewLevel: state.CurrentLevel}
	}

	next := state.Clone()
	unlockedAt := now
	next.Achievements[idx].IsUnlocked = true
	next.Achievements[idx].UnlockedAt = &unlockedAt

	recent := next.Achievements[idx]
	next.RecentAchievement = &recent

	afterXP, change := addXP(next, max(recent.Points, 0))

	change.AchievementsDirty = true
	unlocked := recent
	change.Achievement = &unlocked
	return afterXP, change
}

// ApplyCollect collects the reward with the given id when the current level allows it.
// Unknown, already collected or level-gated rewards leave the state untouched.
func ApplyCollect(state domain.LedgerState, id string, now time.Time) (domain.LedgerState, Change) {
	noop := Change{OldLevel: state.CurrentLevel, NewLevel: state.CurrentLevel}

	idx := state.FindReward(id)
	if idx < 0 {
		return state, noop
	}
	reward := state.Rewards[idx]
	if reward.IsCollected || state.CurrentLevel < reward.RequiredLevel {
		return state, noop
	}

	next := state.Clone()
	collectedAt := now
	next.Rewards[idx].IsCollected = true
	next.Rewards[idx].CollectedAt = &collectedAt

	recent := next.Rewards[idx]
	next.RecentReward = &recent

	collected := recent
	return next, Change{
		RewardsDirty: true,
		OldLevel:     state.CurrentLevel,
		NewLevel:     state.CurrentLevel,
		Reward:       &collected,
	}
}

// ClearRecentAchievement empties the pending achievement notification
func ClearRecentAchievement(state domain.LedgerState) domain.LedgerState {
	next := state.Clone()
	next.RecentAchievement = nil
	return next
}

// ClearRecentReward empties the pending reward notification
func ClearRecentReward(state domain.LedgerState) domain.LedgerState {
	next := state.Clone()
	next.RecentReward = nil
	return next
}

// EligibleRewards lists uncollected rewards the current level already allows.
// Eligibility is computed on demand; nothing is pushed when a level is reached.
func EligibleRewards(state domain.LedgerState) []domain.Reward {
	eligible := make([]domain.Reward, 0, len(state.Rewards))
	for _, r := range state.Rewards {
		if !r.IsCollected && r.RequiredLevel <= state.CurrentLevel {
			eligible = append(eligible, r)
		}
	}
	return eligible
}
