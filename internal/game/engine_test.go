package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	alice = "alice"
	bob   = "bob"
)

func newSingle(t *testing.T) *Game {
	t.Helper()
	g, err := New(Digits{1, 2, 3, 4}, DifficultyEasy, ModeSinglePlayer, alice, "")
	require.NoError(t, err)
	return g
}

func newCollab(t *testing.T) *Game {
	t.Helper()
	g, err := New(Digits{1, 2, 3, 4}, DifficultyEasy, ModeCollaborative, alice, bob)
	require.NoError(t, err)
	return g
}

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("single player", func(t *testing.T) {
		g := newSingle(t)
		assert.NotEmpty(t, g.ID)
		assert.Equal(t, StatusActive, g.Status)
		assert.False(t, g.Won)
		assert.Empty(t, g.CurrentTurnID)
		assert.Empty(t, g.Guesses)
		assert.Equal(t, MaxGuesses, g.AttemptsLeft())
		assert.Equal(t, "playing", g.State())
	})

	t.Run("collaborative starts with owner", func(t *testing.T) {
		g := newCollab(t)
		assert.Equal(t, alice, g.CurrentTurnID)
		assert.True(t, g.IsTurnOf(alice))
		assert.False(t, g.IsTurnOf(bob))
	})

	t.Run("secret is copied", func(t *testing.T) {
		secret := Digits{1, 2, 3, 4}
		g, err := New(secret, DifficultyEasy, ModeSinglePlayer, alice, "")
		require.NoError(t, err)
		secret[0] = 7
		assert.Equal(t, Digits{1, 2, 3, 4}, g.Secret)
	})

	errTests := []struct {
		name       string
		secret     Digits
		difficulty Difficulty
		mode       Mode
		owner      string
		partner    string
		wantErr    error
	}{
		{"unknown difficulty", Digits{1, 2, 3, 4}, "insane", ModeSinglePlayer, alice, "", ErrUnknownDifficulty},
		{"secret too short", Digits{1, 2, 3}, DifficultyEasy, ModeSinglePlayer, alice, "", ErrInvalidSecret},
		{"secret out of range", Digits{1, 2, 3, 9}, DifficultyEasy, ModeSinglePlayer, alice, "", ErrInvalidSecret},
		{"hard secret needs five", Digits{1, 2, 3, 4}, DifficultyHard, ModeSinglePlayer, alice, "", ErrInvalidSecret},
		{"missing owner", Digits{1, 2, 3, 4}, DifficultyEasy, ModeSinglePlayer, "", "", ErrMissingOwner},
		{"single with partner", Digits{1, 2, 3, 4}, DifficultyEasy, ModeSinglePlayer, alice, bob, ErrUnexpectedPartner},
		{"collaborative without partner", Digits{1, 2, 3, 4}, DifficultyEasy, ModeCollaborative, alice, "", ErrPartnerRequired},
		{"partner is owner", Digits{1, 2, 3, 4}, DifficultyEasy, ModeCollaborative, alice, alice, ErrSamePlayer},
		{"unknown mode", Digits{1, 2, 3, 4}, DifficultyEasy, "versus", alice, "", ErrUnknownMode},
	}
	for _, tt := range errTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.secret, tt.difficulty, tt.mode, tt.owner, tt.partner)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubmitGuessWin(t *testing.T) {
	t.Parallel()
	g := newSingle(t)

	res, err := g.SubmitGuess("1234", alice)
	require.NoError(t, err)
	assert.Equal(t, OutcomeWon, res.Outcome)
	assert.Equal(t, Feedback{Exact: 4, ValueOnly: 4}, res.Guess.Feedback)
	assert.Equal(t, StatusCompleted, g.Status)
	assert.True(t, g.Won)
	assert.Equal(t, "won", g.State())
	require.Len(t, g.Guesses, 1)
	assert.Equal(t, alice, g.Guesses[0].SubmittedBy)
}

func TestSubmitGuessContinue(t *testing.T) {
	t.Parallel()
	g := newSingle(t)

	res, err := g.SubmitGuess("1,2,5,6", alice)
	require.NoError(t, err)
	assert.Equal(t, OutcomeContinue, res.Outcome)
	assert.Equal(t, Feedback{Exact: 2, ValueOnly: 2}, res.Guess.Feedback)
	assert.Equal(t, Digits{1, 2, 5, 6}, res.Guess.Input)
	assert.Equal(t, MaxGuesses-1, res.AttemptsLeft)
	assert.Equal(t, StatusActive, g.Status)
}

func TestSubmitGuessLossOnTenth(t *testing.T) {
	t.Parallel()
	g := newSingle(t)

	for i := 0; i < MaxGuesses-1; i++ {
		res, err := g.SubmitGuess("5555", alice)
		require.NoError(t, err)
		require.Equal(t, OutcomeContinue, res.Outcome)
	}

	res, err := g.SubmitGuess("1255", alice)
	require.NoError(t, err)
	assert.Equal(t, OutcomeLost, res.Outcome)
	assert.Equal(t, Feedback{Exact: 2, ValueOnly: 2}, res.Guess.Feedback, "final guess still gets feedback")
	assert.Equal(t, 0, res.AttemptsLeft)
	assert.Equal(t, StatusCompleted, g.Status)
	assert.False(t, g.Won)
	assert.Equal(t, "lost", g.State())
	assert.Len(t, g.Guesses, MaxGuesses)
}

func TestSubmitGuessWinOnTenth(t *testing.T) {
	t.Parallel()
	g := newSingle(t)

	for i := 0; i < MaxGuesses-1; i++ {
		_, err := g.SubmitGuess("5555", alice)
		require.NoError(t, err)
	}
	res, err := g.SubmitGuess("1234", alice)
	require.NoError(t, err)
	assert.Equal(t, OutcomeWon, res.Outcome)
	assert.True(t, g.Won)
}

func TestSubmitGuessNeverAllowsEleventh(t *testing.T) {
	t.Parallel()
	g := newSingle(t)
	// Stored games can carry a full guess list without being marked completed.
	for i := 0; i < MaxGuesses; i++ {
		g.Guesses = append(g.Guesses, Guess{Input: Digits{5, 5, 5, 5}, SubmittedBy: alice})
	}

	_, err := g.SubmitGuess("1234", alice)
	assert.ErrorIs(t, err, ErrMaxAttempts)
	assert.Len(t, g.Guesses, MaxGuesses)
	assert.Equal(t, StatusActive, g.Status)
}

func TestSubmitGuessFailuresLeaveGameUnchanged(t *testing.T) {
	t.Parallel()

	t.Run("completed", func(t *testing.T) {
		g := newSingle(t)
		_, err := g.SubmitGuess("1234", alice)
		require.NoError(t, err)
		before := g.Clone()

		_, err = g.SubmitGuess("1234", alice)
		assert.ErrorIs(t, err, ErrGameCompleted)
		assert.Equal(t, before, g)
	})

	t.Run("invalid input", func(t *testing.T) {
		g := newSingle(t)
		before := g.Clone()

		_, err := g.SubmitGuess("12345", alice)
		assert.ErrorIs(t, err, ErrInvalidLength)
		_, err = g.SubmitGuess("8888", alice)
		assert.ErrorIs(t, err, ErrInvalidDigit)
		assert.True(t, IsValidation(err))
		assert.Equal(t, before, g)
	})

	t.Run("turn violation", func(t *testing.T) {
		g := newCollab(t)
		before := g.Clone()

		_, err := g.SubmitGuess("5555", bob)
		assert.ErrorIs(t, err, ErrTurnViolation)
		assert.False(t, IsValidation(err))
		assert.Equal(t, before, g)
	})
}

func TestCollaborativeTurns(t *testing.T) {
	t.Parallel()
	g := newCollab(t)

	res, err := g.SubmitGuess("5555", alice)
	require.NoError(t, err)
	assert.Equal(t, OutcomeContinue, res.Outcome)
	assert.Equal(t, alice, g.CurrentTurnID, "SubmitGuess must not switch turns itself")

	g.SwitchTurn()
	assert.Equal(t, bob, g.CurrentTurnID)

	_, err = g.SubmitGuess("5555", alice)
	assert.ErrorIs(t, err, ErrTurnViolation)

	res, err = g.SubmitGuess("1234", bob)
	require.NoError(t, err)
	assert.Equal(t, OutcomeWon, res.Outcome)
	assert.Equal(t, bob, g.Guesses[len(g.Guesses)-1].SubmittedBy)

	g.SwitchTurn()
	assert.Equal(t, alice, g.CurrentTurnID)
}

func TestSwitchTurnSinglePlayerNoop(t *testing.T) {
	t.Parallel()
	g := newSingle(t)
	g.SwitchTurn()
	assert.Empty(t, g.CurrentTurnID)
	assert.True(t, g.IsTurnOf(alice))
}

func TestParticipantAndClone(t *testing.T) {
	t.Parallel()
	g := newCollab(t)
	assert.True(t, g.Participant(alice))
	assert.True(t, g.Participant(bob))
	assert.False(t, g.Participant("carol"))
	assert.False(t, g.Participant(""))

	_, err := g.SubmitGuess("5555", alice)
	require.NoError(t, err)

	c := g.Clone()
	c.Guesses[0].Input[0] = 1
	c.Secret[0] = 7
	assert.Equal(t, Digits{5, 5, 5, 5}, g.Guesses[0].Input)
	assert.Equal(t, Digits{1, 2, 3, 4}, g.Secret)
}
