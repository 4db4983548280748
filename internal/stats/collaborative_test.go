package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/mastermind/apps/go-server/internal/game"
)

// collab plays a collaborative game between owner and partner, taking turns
// with misses until winner (if any) submits the secret. An empty winner plays
// the game out to a loss.
func collab(t *testing.T, owner, partner, winner string) *game.Game {
	t.Helper()
	g, err := game.New(secrets[game.DifficultyEasy], game.DifficultyEasy, game.ModeCollaborative, owner, partner)
	require.NoError(t, err)
	for g.Status == game.StatusActive {
		input := "6666"
		if winner != "" && g.CurrentTurnID == winner {
			input = "1234"
		}
		res, err := g.SubmitGuess(input, g.CurrentTurnID)
		require.NoError(t, err)
		if res.Outcome == game.OutcomeContinue {
			g.SwitchTurn()
		}
	}
	return g
}

func TestCollaborativeTie(t *testing.T) {
	t.Parallel()
	games := []*game.Game{
		collab(t, alice, bob, alice),
		collab(t, alice, bob, bob),
		collab(t, alice, bob, ""),
	}

	c := Collaborative(games, alice, bob)
	assert.Equal(t, 3, c.TotalGames)
	assert.Equal(t, 2, c.TotalWins)
	assert.Equal(t, 1, c.FirstWins)
	assert.Equal(t, 1, c.SecondWins)
	assert.Equal(t, 1, c.ComputerWins)
	require.True(t, c.WinRate.OK())
	assert.Equal(t, 66.67, c.WinRate.Value)
	assert.InDelta(t, 66.7, c.WinRate.Value, 0.05)

	assert.True(t, c.Champion.Tied)
	assert.Equal(t, []string{alice, bob, Computer}, c.Champion.Parties)
	assert.Equal(t, "Tied between alice and bob and Computer!", c.Champion.String())

	named := c.Champion.Rename(map[string]string{alice: "test_user_1", bob: "test_user_2"})
	assert.Equal(t, "Tied between test_user_1 and test_user_2 and Computer!", named.String())
}

func TestCollaborativeNoGames(t *testing.T) {
	t.Parallel()
	c := Collaborative(nil, alice, bob)
	assert.Equal(t, 0, c.TotalGames)
	assert.Equal(t, 0, c.TotalWins)
	assert.Equal(t, 0, c.FirstWins)
	assert.Equal(t, 0, c.SecondWins)
	assert.Equal(t, 0, c.ComputerWins)
	assert.True(t, c.WinRate.NoData)
	assert.Equal(t, MsgNoGamesTogether, c.WinRate.String())
	assert.True(t, c.Champion.None())
	assert.Equal(t, MsgNoChampion, c.Champion.String())
}

func TestCollaborativeSingleChampion(t *testing.T) {
	t.Parallel()
	games := []*game.Game{
		collab(t, alice, bob, bob),
		collab(t, bob, alice, bob), // seats swapped
		collab(t, alice, bob, alice),
	}

	c := Collaborative(games, alice, bob)
	assert.Equal(t, 3, c.TotalGames)
	assert.Equal(t, 1, c.FirstWins)
	assert.Equal(t, 2, c.SecondWins)
	assert.Equal(t, 100.0, c.WinRate.Value)
	assert.False(t, c.Champion.Tied)
	assert.Equal(t, bob, c.Champion.String())
}

func TestCollaborativeComputerChampion(t *testing.T) {
	t.Parallel()
	games := []*game.Game{
		collab(t, alice, bob, ""),
		collab(t, alice, bob, ""),
		collab(t, alice, bob, alice),
	}

	c := Collaborative(games, alice, bob)
	assert.Equal(t, 2, c.ComputerWins)
	assert.Equal(t, 33.33, c.WinRate.Value)
	assert.Equal(t, Computer, c.Champion.String())
}

func TestCollaborativeFiltersGames(t *testing.T) {
	t.Parallel()
	active, err := game.New(secrets[game.DifficultyEasy], game.DifficultyEasy, game.ModeCollaborative, alice, bob)
	require.NoError(t, err)

	games := []*game.Game{
		collab(t, alice, bob, alice),
		collab(t, alice, carol, alice),
		wonIn(t, game.DifficultyEasy, 1),
		active,
	}

	c := Collaborative(games, alice, bob)
	assert.Equal(t, 1, c.TotalGames)
	assert.Equal(t, []string{alice}, c.Champion.Parties)

	between := CollaborativeGames(games, bob, alice)
	assert.Len(t, between, 2)
}
