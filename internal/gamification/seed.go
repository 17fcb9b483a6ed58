package gamification

import (
	"github.com/osse101/Codinho_Go/internal/domain"
	"github.com/osse101/Codinho_Go/internal/progression"
)

// Achievement IDs of the default catalog
const (
	AchievementFirstStep        = "first_step"
	AchievementFirstStar        = "first_star"
	AchievementPerfectLevel     = "perfect_level"
	AchievementCalculatorMaster = "calculator_master"
	AchievementDedication       = "dedication"
)

// Reward IDs of the default catalog
const (
	RewardRobotFriend = "robot_friend"
	RewardSpaceTheme  = "space_theme"
	RewardStarSticker = "star_sticker"
)

// DefaultAchievements returns a fresh copy of the seed achievements, all locked
func DefaultAchievements() []domain.Achievement {
	return []domain.Achievement{
		{ID: AchievementFirstStep, Title: "First Step", Description: "Complete your first project", Icon: "🏆", Points: 50},
		{ID: AchievementFirstStar, Title: "Rising Star", Description: "Earn your first star", Icon: "⭐", Points: 30},
		{ID: AchievementPerfectLevel, Title: "Perfection", Description: "Earn 3 stars on a level", Icon: "🌟", Points: 100},
		{ID: AchievementCalculatorMaster, Title: "Calculator Master", Description: "Complete the calculator project", Icon: "🧮", Points: 150},
		{ID: AchievementDedication, Title: "Dedication", Description: "Use the app 3 days in a row", Icon: "🔥", Points: 80},
	}
}

// DefaultRewards returns a fresh copy of the seed rewards, all uncollected
func DefaultRewards() []domain.Reward {
	return []domain.Reward{
		{ID: RewardRobotFriend, Title: "Robot Friend", Description: "A new friend for Codinho", Type: domain.RewardTypeCharacter, Icon: "🤖", RequiredLevel: 2},
		{ID: RewardSpaceTheme, Title: "Space Theme", Description: "Give the app a space look", Type: domain.RewardTypeTheme, Icon: "🚀", RequiredLevel: 3},
		{ID: RewardStarSticker, Title: "Star Sticker", Description: "A shiny sticker for your collection", Type: domain.RewardTypeSticker, Icon: "✨", RequiredLevel: 1},
	}
}

// DefaultState is the ledger of a brand new user: zero XP, first level
func DefaultState() domain.LedgerState {
	return domain.LedgerState{
		TotalXP:      0,
		CurrentLevel: progression.FirstLevel,
		Achievements: DefaultAchievements(),
		Rewards:      DefaultRewards(),
	}
}
