package game

import "fmt"

// Feedback is the scored result of a guess.
//
// ValueOnly counts digit matches regardless of position and therefore
// includes the positions counted in Exact ("correct numbers" vs
// "correct locations").
type Feedback struct {
	Exact     int `json:"exact"`
	ValueOnly int `json:"valueOnly"`
}

// String renders feedback the way players see it,
// e.g. "2 correct numbers, 1 correct location".
func (f Feedback) String() string {
	return fmt.Sprintf("%d correct %s, %d correct %s",
		f.ValueOnly, plural(f.ValueOnly, "number"),
		f.Exact, plural(f.Exact, "location"))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// Score compares guess against secret. len(secret) == len(guess) is a
// precondition enforced by validating both against the same profile.
// Digits outside 0-9 never match anything.
//
// Pass 1 counts positional matches.
// Pass 2 sums, per digit, the lesser of the two frequencies, so repeated
// digits are never double counted.
func Score(secret, guess Digits) Feedback {
	var f Feedback
	var secretCounts, guessCounts [10]int

	for i := range secret {
		if !isDigit(secret[i]) {
			continue
		}
		if i < len(guess) && secret[i] == guess[i] {
			f.Exact++
		}
		secretCounts[secret[i]]++
	}
	for _, d := range guess {
		if isDigit(d) {
			guessCounts[d]++
		}
	}

	for d := range secretCounts {
		f.ValueOnly += min(secretCounts[d], guessCounts[d])
	}
	return f
}

func isDigit(d int) bool { return d >= 0 && d <= 9 }
