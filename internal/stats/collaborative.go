package stats

import (
	"strings"

	"github.com/robalobadob/mastermind/apps/go-server/internal/game"
)

// Computer is the party credited with games nobody cracked.
const Computer = "Computer"

const (
	MsgNoChampion      = "No champion yet!"
	MsgNoGamesTogether = "No games played together!"
)

// Collaboration summarises the completed collaborative games between two users.
type Collaboration struct {
	First        string   `json:"first"`
	Second       string   `json:"second"`
	TotalGames   int      `json:"totalGames"`
	TotalWins    int      `json:"totalWins"`
	FirstWins    int      `json:"firstWins"`
	SecondWins   int      `json:"secondWins"`
	ComputerWins int      `json:"computerWins"`
	WinRate      Metric   `json:"winRate"`
	Champion     Champion `json:"champion"`
}

// Champion is the party with the most credited games.
// Parties lists the tied leaders when Tied is set; it is empty when nobody
// has a win yet.
type Champion struct {
	Parties []string `json:"parties"`
	Tied    bool     `json:"tied"`
}

// None reports whether no party has been credited with anything.
func (c Champion) None() bool { return len(c.Parties) == 0 }

func (c Champion) String() string {
	switch {
	case c.None():
		return MsgNoChampion
	case c.Tied:
		return "Tied between " + strings.Join(c.Parties, " and ") + "!"
	}
	return c.Parties[0]
}

// Rename maps user ids to display names, leaving Computer untouched.
func (c Champion) Rename(names map[string]string) Champion {
	out := Champion{Tied: c.Tied, Parties: make([]string, len(c.Parties))}
	for i, p := range c.Parties {
		if n, ok := names[p]; ok {
			p = n
		}
		out.Parties[i] = p
	}
	return out
}

// Collaborative tallies completed collaborative games played by exactly first
// and second, in either seat.
//
// A won game is credited to the submitter of its final guess; a lost game is
// credited to Computer. A won game whose final submitter is neither player is
// counted in TotalWins only.
func Collaborative(games []*game.Game, first, second string) Collaboration {
	c := Collaboration{First: first, Second: second}
	for _, g := range CollaborativeGames(games, first, second) {
		if g.Status != game.StatusCompleted {
			continue
		}
		c.TotalGames++
		if !g.Won {
			c.ComputerWins++
			continue
		}
		c.TotalWins++
		if len(g.Guesses) == 0 {
			continue
		}
		switch g.Guesses[len(g.Guesses)-1].SubmittedBy {
		case first:
			c.FirstWins++
		case second:
			c.SecondWins++
		}
	}

	if c.TotalGames == 0 {
		c.WinRate = noData(MsgNoGamesTogether)
	} else {
		c.WinRate = measured(round2(100 * float64(c.TotalWins) / float64(c.TotalGames)))
	}
	c.Champion = champion(
		tally{first, c.FirstWins},
		tally{second, c.SecondWins},
		tally{Computer, c.ComputerWins},
	)
	return c
}

// CollaborativeGames returns the collaborative games between first and second.
func CollaborativeGames(games []*game.Game, first, second string) []*game.Game {
	var out []*game.Game
	for _, g := range games {
		if between(g, first, second) {
			out = append(out, g)
		}
	}
	return out
}

func between(g *game.Game, a, b string) bool {
	if g.Mode != game.ModeCollaborative {
		return false
	}
	return (g.OwnerID == a && g.PartnerID == b) || (g.OwnerID == b && g.PartnerID == a)
}

type tally struct {
	party string
	wins  int
}

// champion keeps the order of its arguments for ties.
func champion(ts ...tally) Champion {
	best := 0
	for _, t := range ts {
		best = max(best, t.wins)
	}
	if best == 0 {
		return Champion{}
	}
	var c Champion
	for _, t := range ts {
		if t.wins == best {
			c.Parties = append(c.Parties, t.party)
		}
	}
	c.Tied = len(c.Parties) > 1
	return c
}
