package game

import (
	"fmt"
	"strings"
)

// Difficulty names one of the canonical profiles.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Profile governs what counts as a valid code for a difficulty.
type Profile struct {
	CodeLength int
	DigitMin   int
	DigitMax   int
}

var profiles = map[Difficulty]Profile{
	DifficultyEasy:   {CodeLength: 4, DigitMin: 0, DigitMax: 7},
	DifficultyMedium: {CodeLength: 4, DigitMin: 0, DigitMax: 9},
	DifficultyHard:   {CodeLength: 5, DigitMin: 0, DigitMax: 9},
}

// Difficulties lists the canonical difficulties in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ProfileFor returns the profile for d.
func ProfileFor(d Difficulty) (Profile, error) {
	p, ok := profiles[d]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
	}
	return p, nil
}

// ParseDifficulty normalises a user-supplied difficulty name.
// An empty name selects easy.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DifficultyEasy, nil
	}
	d := Difficulty(s)
	if _, ok := profiles[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
	return d, nil
}

// ParseMode normalises a user-supplied mode name. An empty name selects single player.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeSinglePlayer:
		return ModeSinglePlayer, nil
	case ModeCollaborative:
		return ModeCollaborative, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// FormatHint is the human-readable rule for valid input under p.
func (p Profile) FormatHint() string {
	return fmt.Sprintf("Please enter exactly %d digits between %d and %d.", p.CodeLength, p.DigitMin, p.DigitMax)
}

// Check verifies already-parsed digits against p.
func (p Profile) Check(d Digits) error {
	if len(d) != p.CodeLength {
		return &ValidationError{Kind: ErrInvalidLength, Profile: p}
	}
	for _, x := range d {
		if x < p.DigitMin || x > p.DigitMax {
			return &ValidationError{Kind: ErrInvalidDigit, Profile: p}
		}
	}
	return nil
}
