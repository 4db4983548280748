// apps/go-server/internal/codes/codes.go
//
// Secret code selection for new games. This lives outside the rule engine:
// game.New only ever receives an already-chosen secret.
//
//   - Random: uniform digits from crypto/rand.
//   - Daily:  deterministic per date and difficulty, HMAC(salt, date|difficulty),
//             so every player gets the same daily code.

package codes

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"math/big"
	"time"

	"github.com/robalobadob/mastermind/apps/go-server/internal/game"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Random draws a secret for difficulty d.
func Random(d game.Difficulty) (game.Digits, error) {
	p, err := game.ProfileFor(d)
	if err != nil {
		return nil, err
	}
	span := big.NewInt(int64(p.DigitMax - p.DigitMin + 1))
	out := make(game.Digits, p.CodeLength)
	for i := range out {
		n, err := rand.Int(rand.Reader, span)
		if err != nil {
			return nil, err
		}
		out[i] = p.DigitMin + int(n.Int64())
	}
	return out, nil
}

// Daily returns the shared code for date and difficulty d.
func Daily(date time.Time, salt string, d game.Difficulty) (game.Digits, error) {
	p, err := game.ProfileFor(d)
	if err != nil {
		return nil, err
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date) + "|" + string(d)))
	sum := h.Sum(nil)

	span := uint64(p.DigitMax - p.DigitMin + 1)
	out := make(game.Digits, p.CodeLength)
	for i := range out {
		// 4 bytes per digit keeps modulo bias negligible.
		n := binary.BigEndian.Uint32(sum[i*4 : i*4+4])
		out[i] = p.DigitMin + int(uint64(n)%span)
	}
	return out, nil
}
