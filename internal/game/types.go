// apps/go-server/internal/game/types.go
//
// Core type definitions for the Mastermind rule engine.
// Defines:
//   - Digits: an ordered code or guess.
//   - Feedback: the scored result of one guess.
//   - Guess / Game: per-session state owned by the engine's caller.
//   - Mode / Status / Outcome enums.

package game

import (
	"strconv"
	"strings"
	"time"
)

// MaxGuesses is the number of attempts a game allows before it is lost.
const MaxGuesses = 10

// Digits is an ordered sequence of single decimal digits (0–9).
type Digits []int

// String renders the digits as a fixed-width string, e.g. "1234".
func (d Digits) String() string {
	var b strings.Builder
	for _, x := range d {
		b.WriteString(strconv.Itoa(x))
	}
	return b.String()
}

// Equal reports whether d and o hold the same digits in the same order.
func (d Digits) Equal(o Digits) bool {
	if len(d) != len(o) {
		return false
	}
	for i := range d {
		if d[i] != o[i] {
			return false
		}
	}
	return true
}

// Mode selects single player or two-player collaborative play.
type Mode string

const (
	ModeSinglePlayer  Mode = "single_player"
	ModeCollaborative Mode = "collaborative"
)

// Status is the lifecycle state of a game: active → completed.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Outcome is what a successful SubmitGuess did to the game.
type Outcome string

const (
	OutcomeContinue Outcome = "continue"
	OutcomeWon      Outcome = "won"
	OutcomeLost     Outcome = "lost"
)

// Guess is one scored attempt. It is created by Game.SubmitGuess only.
type Guess struct {
	Input       Digits    // normalised guess digits
	SubmittedBy string    // acting user id
	Feedback    Feedback  // computed once at submission
	CreatedAt   time.Time // submission time (UTC)
}

// Game holds the state of a single play session.
//
// A Game exclusively owns its Guesses. Nothing here is persisted implicitly;
// callers commit the game after each operation.
type Game struct {
	ID            string
	Secret        Digits
	Difficulty    Difficulty
	Mode          Mode
	Status        Status
	Won           bool   // meaningful once Status is completed
	OwnerID       string // user who created the game
	PartnerID     string // collaborative mode only
	CurrentTurnID string // collaborative mode only
	Guesses       []Guess
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// GuessResult is returned by a successful SubmitGuess.
type GuessResult struct {
	Outcome      Outcome
	Guess        Guess
	AttemptsLeft int
}
