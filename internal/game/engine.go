// apps/go-server/internal/game/engine.go
//
// Game state machine for a single Mastermind session.
// Responsibilities:
//   - Create games around a caller-supplied secret (no code generation here).
//   - Validate, score and append guesses.
//   - Track state transitions: active → completed (won or lost).
//   - Arbitrate turns in collaborative mode.
//
// Notes:
//   - The engine performs no I/O and keeps no shared state. Callers must
//     serialise SubmitGuess/SwitchTurn per game (see store.KeyedMutex).
//   - Turn advancement is a separate, caller-invoked step.
package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// now is swapped in tests.
var now = func() time.Time { return time.Now().UTC() }

// New constructs an active game around secret.
// partnerID must be set for collaborative games and empty otherwise.
func New(secret Digits, d Difficulty, m Mode, ownerID, partnerID string) (*Game, error) {
	p, err := ProfileFor(d)
	if err != nil {
		return nil, err
	}
	if err := p.Check(secret); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSecret, err)
	}
	if ownerID == "" {
		return nil, ErrMissingOwner
	}

	switch m {
	case ModeSinglePlayer:
		if partnerID != "" {
			return nil, ErrUnexpectedPartner
		}
	case ModeCollaborative:
		if partnerID == "" {
			return nil, ErrPartnerRequired
		}
		if partnerID == ownerID {
			return nil, ErrSamePlayer
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, m)
	}

	t := now()
	g := &Game{
		ID:         uuid.NewString(),
		Secret:     append(Digits(nil), secret...),
		Difficulty: d,
		Mode:       m,
		Status:     StatusActive,
		OwnerID:    ownerID,
		PartnerID:  partnerID,
		Guesses:    []Guess{},
		CreatedAt:  t,
		UpdatedAt:  t,
	}
	if m == ModeCollaborative {
		g.CurrentTurnID = ownerID
	}
	return g, nil
}

// SubmitGuess validates and scores input for userID, mutating the game.
//
// Checks run in this order: completed, attempt cap, turn, input format.
// A failed call leaves the game unchanged.
//
// State transitions:
//   - exact match → completed, won (even on the final attempt).
//   - otherwise the MaxGuesses-th guess → completed, lost, feedback attached.
//   - otherwise → still active.
func (g *Game) SubmitGuess(input, userID string) (*GuessResult, error) {
	if g.Status == StatusCompleted {
		return nil, ErrGameCompleted
	}
	if len(g.Guesses) >= MaxGuesses {
		return nil, ErrMaxAttempts
	}
	if !g.IsTurnOf(userID) {
		return nil, ErrTurnViolation
	}
	p, err := ProfileFor(g.Difficulty)
	if err != nil {
		return nil, err
	}
	digits, err := Validate(input, p)
	if err != nil {
		return nil, err
	}

	guess := Guess{
		Input:       digits,
		SubmittedBy: userID,
		Feedback:    Score(g.Secret, digits),
		CreatedAt:   now(),
	}
	g.Guesses = append(g.Guesses, guess)
	g.UpdatedAt = guess.CreatedAt

	outcome := OutcomeContinue
	switch {
	case guess.Feedback.Exact == len(g.Secret):
		g.Status, g.Won = StatusCompleted, true
		outcome = OutcomeWon
	case len(g.Guesses) >= MaxGuesses:
		g.Status = StatusCompleted
		outcome = OutcomeLost
	}
	return &GuessResult{Outcome: outcome, Guess: guess, AttemptsLeft: g.AttemptsLeft()}, nil
}

// SwitchTurn hands the turn to the other player. No-op in single player mode.
func (g *Game) SwitchTurn() {
	if g.Mode != ModeCollaborative {
		return
	}
	if g.CurrentTurnID == g.OwnerID {
		g.CurrentTurnID = g.PartnerID
	} else {
		g.CurrentTurnID = g.OwnerID
	}
	g.UpdatedAt = now()
}

// IsTurnOf reports whether userID may guess now. Single player games never
// restrict turns.
func (g *Game) IsTurnOf(userID string) bool {
	if g.Mode != ModeCollaborative {
		return true
	}
	return g.CurrentTurnID == userID
}

// Participant reports whether userID plays in this game.
func (g *Game) Participant(userID string) bool {
	return userID != "" && (userID == g.OwnerID || userID == g.PartnerID)
}

// AttemptsLeft is the number of guesses still allowed.
func (g *Game) AttemptsLeft() int {
	return max(MaxGuesses-len(g.Guesses), 0)
}

// State is a coarse string for the current game state ("playing"/"won"/"lost").
func (g *Game) State() string {
	if g.Status == StatusCompleted {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// Clone returns a deep copy so callers never share guess slices.
func (g *Game) Clone() *Game {
	c := *g
	c.Secret = append(Digits(nil), g.Secret...)
	c.Guesses = make([]Guess, len(g.Guesses))
	for i, gs := range g.Guesses {
		gs.Input = append(Digits(nil), gs.Input...)
		c.Guesses[i] = gs
	}
	return &c
}
