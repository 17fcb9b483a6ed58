package bootcamp

import "github.com/osse101/Codinho_Go/internal/domain"

// Bootcamp IDs of the default catalog
const (
	BootcampCalculator = "calculator"
	BootcampAnimation  = "animation"
	BootcampGame       = "game"
)

const defaultLevels = 5

// DefaultBootcamps returns a fresh copy of the seed projects. Only the first is unlocked.
func DefaultBootcamps() []domain.Bootcamp {
	return []domain.Bootcamp{
		{
			ID:              BootcampCalculator,
			Title:           "Magic Calculator",
			Description:     "Build a calculator that does sums like magic!",
			Difficulty:      1,
			IsUnlocked:      true,
			Icon:            "🧮",
			Color:           "purple",
			Levels:          defaultLevels,
			CurrentLevel:    1,
			CompletedLevels: []int{},
		},
		{
			ID:              BootcampAnimation,
			Title:           "Animate a Character",
			Description:     "Make a character move across the screen with your commands!",
			Difficulty:      2,
			Icon:            "🎮",
			Color:           "orange",
			Levels:          defaultLevels,
			CurrentLevel:    1,
			CompletedLevels: []int{},
		},
		{
			ID:              BootcampGame,
			Title:           "Guessing Game",
			Description:     "Create a game where the computer tries to guess your number!",
			Difficulty:      3,
			Icon:            "🎲",
			Color:           "green",
			Levels:          defaultLevels,
			CurrentLevel:    1,
			CompletedLevels: []int{},
		},
	}
}
