package domain

// Bootcamp is a guided project split into levels
type Bootcamp struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Difficulty      int    `json:"difficulty"`
	IsUnlocked      bool   `json:"isUnlocked"`
	Icon            string `json:"icon"`
	Color           string `json:"color"`
	Progress        int    `json:"progress"` // percent, 0..100
	Levels          int    `json:"levels"`
	CurrentLevel    int    `json:"currentLevel"`
	CompletedLevels []int  `json:"completedLevels"`
}

// HasCompleted reports whether level is already in CompletedLevels
func (b Bootcamp) HasCompleted(level int) bool {
	for _, l := range b.CompletedLevels {
		if l == level {
			return true
		}
	}
	return false
}

func (b Bootcamp) clone() Bootcamp {
	if b.CompletedLevels != nil {
		levels := make([]int, len(b.CompletedLevels))
		copy(levels, b.CompletedLevels)
		b.CompletedLevels = levels
	}
	return b
}

// CloneBootcamps deep-copies a bootcamp list
func CloneBootcamps(in []Bootcamp) []Bootcamp {
	if in == nil {
		return nil
	}
	out := make([]Bootcamp, len(in))
	for i, b := range in {
		out[i] = b.clone()
	}
	return out
}

// BootcampList is the API representation of a user's bootcamps
type BootcampList struct {
	Bootcamps []Bootcamp `json:"bootcamps"`
	Advisory  string     `json:"advisory,omitempty"`
}
