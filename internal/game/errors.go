package game

import "errors"

// Validation failures. These are user-correctable and safe to retry.
var (
	ErrInvalidLength = errors.New("invalid guess length")
	ErrInvalidDigit  = errors.New("invalid guess digit")
)

// State conflicts. Retrying without changing the game or acting user fails again.
var (
	ErrGameCompleted = errors.New("game is already completed")
	ErrMaxAttempts   = errors.New("maximum number of guesses reached")
	ErrTurnViolation = errors.New("not this player's turn")
)

// Construction failures returned by New.
var (
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownMode       = errors.New("unknown game mode")
	ErrInvalidSecret     = errors.New("invalid secret code")
	ErrMissingOwner      = errors.New("game owner is required")
	ErrPartnerRequired   = errors.New("collaborative game requires a partner")
	ErrUnexpectedPartner = errors.New("single player game cannot have a partner")
	ErrSamePlayer        = errors.New("partner must differ from owner")
)

// ValidationError describes a guess that does not fit a difficulty profile.
// Error returns the message shown to players; errors.Is matches Kind.
type ValidationError struct {
	Kind    error
	Profile Profile
}

func (e *ValidationError) Error() string {
	return "Invalid guess format. " + e.Profile.FormatHint()
}

func (e *ValidationError) Unwrap() error { return e.Kind }

// IsValidation reports whether err is a retryable input validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidLength) || errors.Is(err, ErrInvalidDigit)
}
