package game

import (
	"fmt"
	"strings"
)

// Validate normalises input and checks it against p.
//
// Input may be a fixed-width digit string ("1234") or a delimited list
// ("1,2,3,4" or "1 2 3 4"); both forms yield the same Digits.
// Length is checked before digit range.
func Validate(input string, p Profile) (Digits, error) {
	toks := tokenize(input)
	if len(toks) != p.CodeLength {
		return nil, &ValidationError{Kind: ErrInvalidLength, Profile: p}
	}
	out := make(Digits, len(toks))
	for i, tok := range toks {
		d, ok := parseDigit(tok)
		if !ok || d < p.DigitMin || d > p.DigitMax {
			return nil, &ValidationError{Kind: ErrInvalidDigit, Profile: p}
		}
		out[i] = d
	}
	return out, nil
}

// ValidateFormat pre-validates a guess for difficulty d without touching any game.
func ValidateFormat(input string, d Difficulty) error {
	p, err := ProfileFor(d)
	if err != nil {
		return err
	}
	_, err = Validate(input, p)
	return err
}

// ParseDigits normalises input without applying a profile.
// Used for codes read back from storage.
func ParseDigits(input string) (Digits, error) {
	toks := tokenize(input)
	if len(toks) == 0 {
		return nil, ErrInvalidLength
	}
	out := make(Digits, len(toks))
	for i, tok := range toks {
		d, ok := parseDigit(tok)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDigit, tok)
		}
		out[i] = d
	}
	return out, nil
}

// tokenize splits input into one token per digit position.
func tokenize(input string) []string {
	s := strings.TrimSpace(input)
	switch {
	case s == "":
		return nil
	case strings.Contains(s, ","):
		parts := strings.Split(s, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	case strings.ContainsAny(s, " \t"):
		return strings.Fields(s)
	}
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func parseDigit(tok string) (int, bool) {
	if len(tok) != 1 || tok[0] < '0' || tok[0] > '9' {
		return 0, false
	}
	return int(tok[0] - '0'), true
}
