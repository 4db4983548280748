// apps/go-server/internal/stats/stats.go
//
// Read-side statistics over a user's games.
// Every function is pure and safe on empty input: where a value cannot be
// computed the result is an explicit NoData Metric, never a numeric zero.

package stats

import (
	"math"
	"strconv"

	"github.com/robalobadob/mastermind/apps/go-server/internal/game"
)

const (
	MsgNoGamesCompleted = "No games completed!"
	MsgNoGamesWon       = "No games won!"
)

// Metric is a computed number or an explicit absence of data.
type Metric struct {
	Value   float64 `json:"value"`
	NoData  bool    `json:"noData,omitempty"`
	Message string  `json:"message,omitempty"`
}

func measured(v float64) Metric { return Metric{Value: v} }

func noData(msg string) Metric { return Metric{NoData: true, Message: msg} }

// OK reports whether the metric holds a value.
func (m Metric) OK() bool { return !m.NoData }

func (m Metric) String() string {
	if m.NoData {
		return m.Message
	}
	return strconv.FormatFloat(m.Value, 'f', -1, 64)
}

// Report is the per-user summary (compute_user_stats).
type Report struct {
	GamesCompleted int                                  `json:"gamesCompleted"`
	WinRate        Metric                               `json:"winRate"`
	AverageGuesses Metric                               `json:"averageGuesses"`
	BestWin        Metric                               `json:"bestWin"`
	ByDifficulty   map[game.Difficulty]DifficultyReport `json:"byDifficulty"`
}

// DifficultyReport holds the same metrics restricted to one difficulty.
type DifficultyReport struct {
	WinRate        Metric `json:"winRate"`
	AverageGuesses Metric `json:"averageGuesses"`
	BestWin        Metric `json:"bestWin"`
}

// Compute builds the full report for one user's games.
func Compute(games []*game.Game) Report {
	r := Report{
		GamesCompleted: GamesCompleted(games),
		WinRate:        WinRate(games, ""),
		AverageGuesses: AverageGuessesForWins(games, ""),
		BestWin:        BestWin(games, ""),
		ByDifficulty:   make(map[game.Difficulty]DifficultyReport, len(game.Difficulties())),
	}
	for _, d := range game.Difficulties() {
		r.ByDifficulty[d] = DifficultyReport{
			WinRate:        WinRate(games, d),
			AverageGuesses: AverageGuessesForWins(games, d),
			BestWin:        BestWin(games, d),
		}
	}
	return r
}

// GamesCompleted counts completed single player games.
func GamesCompleted(games []*game.Game) int {
	n := 0
	for _, g := range games {
		if g.Status == game.StatusCompleted && g.Mode == game.ModeSinglePlayer {
			n++
		}
	}
	return n
}

// WinRate is 100*wins/completed over completed games, optionally restricted
// to difficulty d ("" means all).
func WinRate(games []*game.Game, d game.Difficulty) Metric {
	completed, wins := 0, 0
	for _, g := range filter(games, d) {
		if g.Status != game.StatusCompleted {
			continue
		}
		completed++
		if g.Won {
			wins++
		}
	}
	if completed == 0 {
		return noData(MsgNoGamesCompleted)
	}
	return measured(round2(100 * float64(wins) / float64(completed)))
}

// AverageGuessesForWins is the mean guess count across won games.
func AverageGuessesForWins(games []*game.Game, d game.Difficulty) Metric {
	won := wonGames(games, d)
	if len(won) == 0 {
		return noData(MsgNoGamesWon)
	}
	total := 0
	for _, g := range won {
		total += len(g.Guesses)
	}
	return measured(round2(float64(total) / float64(len(won))))
}

// BestWin is the fewest guesses needed in any won game.
func BestWin(games []*game.Game, d game.Difficulty) Metric {
	won := wonGames(games, d)
	if len(won) == 0 {
		return noData(MsgNoGamesWon)
	}
	best := math.MaxInt
	for _, g := range won {
		best = min(best, len(g.Guesses))
	}
	return measured(float64(best))
}

func filter(games []*game.Game, d game.Difficulty) []*game.Game {
	if d == "" {
		return games
	}
	out := make([]*game.Game, 0, len(games))
	for _, g := range games {
		if g.Difficulty == d {
			out = append(out, g)
		}
	}
	return out
}

func wonGames(games []*game.Game, d game.Difficulty) []*game.Game {
	var out []*game.Game
	for _, g := range filter(games, d) {
		if g.Status == game.StatusCompleted && g.Won {
			out = append(out, g)
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
