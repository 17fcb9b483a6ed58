package domain

import "time"

// RewardType classifies what a reward unlocks in the app
type RewardType string

const (
	RewardTypeCharacter RewardType = "character"
	RewardTypeTheme     RewardType = "theme"
	RewardTypeSticker   RewardType = "sticker"
)

// Valid reports whether t is one of the known reward categories
func (t RewardType) Valid() bool {
	switch t {
	case RewardTypeCharacter, RewardTypeTheme, RewardTypeSticker:
		return true
	}
	return false
}

// Achievement is a one-way unlockable milestone that grants Points XP when unlocked
type Achievement struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Points      int64      `json:"points"`
	IsUnlocked  bool       `json:"isUnlocked"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty"`
}

// Reward is a one-way collectible gated by RequiredLevel. It grants no XP.
type Reward struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Type          RewardType `json:"type"`
	Icon          string     `json:"icon"`
	RequiredLevel int        `json:"requiredLevel"`
	IsCollected   bool       `json:"isCollected"`
	CollectedAt   *time.Time `json:"collectedAt,omitempty"`
}

// LedgerState is the full gamification state of one user session.
// CurrentLevel is derived from TotalXP and must only be written by XP transitions.
type LedgerState struct {
	TotalXP           int64         `json:"total_xp"`
	CurrentLevel      int           `json:"current_level"`
	Achievements      []Achievement `json:"achievements"`
	Rewards           []Reward      `json:"rewards"`
	RecentAchievement *Achievement  `json:"recently_unlocked_achievement"`
	RecentReward      *Reward       `json:"recently_collected_reward"`
}

// Clone returns a deep copy so transitions never share memory with their input
func (s LedgerState) Clone() LedgerState {
	cp := LedgerState{
		TotalXP:      s.TotalXP,
		CurrentLevel: s.CurrentLevel,
	}
	if s.Achievements != nil {
		cp.Achievements = make([]Achievement, len(s.Achievements))
		for i, a := range s.Achievements {
			cp.Achievements[i] = a.clone()
		}
	}
	if s.Rewards != nil {
		cp.Rewards = make([]Reward, len(s.Rewards))
		for i, r := range s.Rewards {
			cp.Rewards[i] = r.clone()
		}
	}
	if s.RecentAchievement != nil {
		a := s.RecentAchievement.clone()
		cp.RecentAchievement = &a
	}
	if s.RecentReward != nil {
		r := s.RecentReward.clone()
		cp.RecentReward = &r
	}
	return cp
}

// FindAchievement returns the index of the achievement with the given id, or -1
func (s LedgerState) FindAchievement(id string) int {
	for i := range s.Achievements {
		if s.Achievements[i].ID == id {
			return i
		}
	}
	return -1
}

// FindReward returns the index of the reward with the given id, or -1
func (s LedgerState) FindReward(id string) int {
	for i := range s.Rewards {
		if s.Rewards[i].ID == id {
			return i
		}
	}
	return -1
}

func (a Achievement) clone() Achievement {
	if a.UnlockedAt != nil {
		t := *a.UnlockedAt
		a.UnlockedAt = &t
	}
	return a
}

func (r Reward) clone() Reward {
	if r.CollectedAt != nil {
		t := *r.CollectedAt
		r.CollectedAt = &t
	}
	return r
}

// LevelProgress describes where a user stands inside the current level
type LevelProgress struct {
	Level          int   `json:"level"`
	TotalXP        int64 `json:"total_xp"`
	XPIntoLevel    int64 `json:"xp_into_level"`
	XPForNextLevel int64 `json:"xp_for_next_level"`
	XPToNextLevel  int64 `json:"xp_to_next_level"`
}

// LedgerView is the API representation of a ledger, with on-demand derived data
type LedgerView struct {
	LedgerState
	Progress        LevelProgress `json:"progress"`
	EligibleRewards []Reward      `json:"eligible_rewards"`
	Advisory        string        `json:"advisory,omitempty"`
}
