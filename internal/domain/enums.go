package domain

import "strings"

// Difficulty labels target puzzle generation. The label is a
// caller-supplied tag mapped to a default clue budget; it is not a
// graded measure of solving technique.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a label to a Difficulty, defaulting to Medium.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	case "expert":
		return Expert
	default:
		return Medium
	}
}

// TargetClues returns the default clue budget for the label.
func (d Difficulty) TargetClues() int {
	switch d {
	case Easy:
		return 40
	case Medium:
		return 34
	case Hard:
		return 28
	default:
		return 24 // Expert
	}
}

// Technique is the coarse solving class a puzzle requires.
type Technique string

const (
	TechniqueSingles Technique = "singles" // naked singles alone suffice
	TechniqueSearch  Technique = "search"  // requires guessing/backtracking
)
