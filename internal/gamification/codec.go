package gamification

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/Codinho_Go/internal/domain"
)

// EncodeAchievements dumps the achievement list as a JSON array
func EncodeAchievements(achievements []domain.Achievement) ([]byte, error) {
	if achievements == nil {
		achievements = []domain.Achievement{}
	}
	return json.Marshal(achievements)
}

// EncodeRewards dumps the reward list as a JSON array
func EncodeRewards(rewards []domain.Reward) ([]byte, error) {
	if rewards == nil {
		rewards = []domain.Reward{}
	}
	return json.Marshal(rewards)
}

// EncodeXP renders the XP total as decimal text
func EncodeXP(xp int64) []byte {
	return []byte(strconv.FormatInt(xp, 10))
}

// DecodeAchievements parses a persisted achievement list.
// Entries with an empty or duplicated id, negative points, or an unlock flag that
// disagrees with the timestamp are rejected as corrupt.
func DecodeAchievements(data []byte) ([]domain.Achievement, error) {
	var achievements []domain.Achievement
	if err := json.Unmarshal(data, &achievements); err != nil {
		return nil, fmt.Errorf("%w: achievements: %v", domain.ErrCorruptEntry, err)
	}
	if achievements == nil {
		return nil, fmt.Errorf("%w: achievements: not a list", domain.ErrCorruptEntry)
	}

	seen := make(map[string]struct{}, len(achievements))
	for _, a := range achievements {
		if a.ID == "" {
			return nil, fmt.Errorf("%w: achievement without id", domain.ErrCorruptEntry)
		}
		if _, dup := seen[a.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate achievement %q", domain.ErrCorruptEntry, a.ID)
		}
		seen[a.ID] = struct{}{}
		if a.Points < 0 {
			return nil, fmt.Errorf("%w: achievement %q has negative points", domain.ErrCorruptEntry, a.ID)
		}
		if a.IsUnlocked != (a.UnlockedAt != nil) {
			return nil, fmt.Errorf("%w: achievement %q unlock timestamp mismatch", domain.ErrCorruptEntry, a.ID)
		}
	}
	return achievements, nil
}

// DecodeRewards parses a persisted reward list with the same checks as achievements
func DecodeRewards(data []byte) ([]domain.Reward, error) {
	var rewards []domain.Reward
	if err := json.Unmarshal(data, &rewards); err != nil {
		return nil, fmt.Errorf("%w: rewards: %v", domain.ErrCorruptEntry, err)
	}
	if rewards == nil {
		return nil, fmt.Errorf("%w: rewards: not a list", domain.ErrCorruptEntry)
	}

	seen := make(map[string]struct{}, len(rewards))
	for _, r := range rewards {
		if r.ID == "" {
			return nil, fmt.Errorf("%w: reward without id", domain.ErrCorruptEntry)
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate reward %q", domain.ErrCorruptEntry, r.ID)
		}
		seen[r.ID] = struct{}{}
		if !r.Type.Valid() {
			return nil, fmt.Errorf("%w: reward %q has unknown type %q", domain.ErrCorruptEntry, r.ID, r.Type)
		}
		if r.RequiredLevel < 1 {
			return nil, fmt.Errorf("%w: reward %q has invalid required level", domain.ErrCorruptEntry, r.ID)
		}
		if r.IsCollected != (r.CollectedAt != nil) {
			return nil, fmt.Errorf("%w: reward %q collection timestamp mismatch", domain.ErrCorruptEntry, r.ID)
		}
	}
	return rewards, nil
}

// DecodeXP parses a persisted XP total. Only non-negative base-10 integers are accepted.
func DecodeXP(data []byte) (int64, error) {
	xp, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: xp: %v", domain.ErrCorruptEntry, err)
	}
	if xp < 0 {
		return 0, fmt.Errorf("%w: xp is negative", domain.ErrCorruptEntry)
	}
	return xp, nil
}
