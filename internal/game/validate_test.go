package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFormat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		difficulty Difficulty
		input      string
		wantErr    error
	}{
		{DifficultyEasy, "1234", nil},
		{DifficultyEasy, "0000", nil},
		{DifficultyEasy, "7777", nil},
		{DifficultyEasy, "8888", ErrInvalidDigit},
		{DifficultyEasy, "123", ErrInvalidLength},
		{DifficultyEasy, "12345", ErrInvalidLength},
		{DifficultyEasy, "", ErrInvalidLength},
		{DifficultyEasy, "12a4", ErrInvalidDigit},
		{DifficultyEasy, "1,2,3,4", nil},
		{DifficultyEasy, " 1, 2 ,3,4 ", nil},
		{DifficultyEasy, "1 2 3 4", nil},
		{DifficultyEasy, "1,2,3,12", ErrInvalidDigit},
		{DifficultyEasy, "1,2,3", ErrInvalidLength},
		{DifficultyMedium, "1234", nil},
		{DifficultyMedium, "9999", nil},
		{DifficultyMedium, "123", ErrInvalidLength},
		{DifficultyMedium, "12345", ErrInvalidLength},
		{DifficultyHard, "12345", nil},
		{DifficultyHard, "99999", nil},
		{DifficultyHard, "1234", ErrInvalidLength},
		{DifficultyHard, "123456", ErrInvalidLength},
		{Difficulty("nightmare"), "1234", ErrUnknownDifficulty},
	}
	for _, tt := range tests {
		t.Run(string(tt.difficulty)+"/"+tt.input, func(t *testing.T) {
			err := ValidateFormat(tt.input, tt.difficulty)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateNormalisesRepresentations(t *testing.T) {
	t.Parallel()
	p, err := ProfileFor(DifficultyMedium)
	require.NoError(t, err)

	a, err := Validate("5801", p)
	require.NoError(t, err)
	b, err := Validate("5,8,0,1", p)
	require.NoError(t, err)

	assert.Equal(t, Digits{5, 8, 0, 1}, a)
	assert.Equal(t, a, b)
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		difficulty Difficulty
		want       string
	}{
		{DifficultyEasy, "4 digits between 0 and 7"},
		{DifficultyMedium, "4 digits between 0 and 9"},
		{DifficultyHard, "5 digits between 0 and 9"},
	}
	for _, tt := range tests {
		err := ValidateFormat("x", tt.difficulty)
		require.Error(t, err)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, err.Error(), "Invalid guess format")
		assert.Contains(t, err.Error(), tt.want)
		assert.True(t, IsValidation(err))
	}
}

func TestParseDigits(t *testing.T) {
	t.Parallel()
	d, err := ParseDigits("1,2,3,4")
	require.NoError(t, err)
	assert.Equal(t, Digits{1, 2, 3, 4}, d)
	assert.Equal(t, "1234", d.String())

	_, err = ParseDigits("")
	assert.ErrorIs(t, err, ErrInvalidLength)
	_, err = ParseDigits("1,x")
	assert.ErrorIs(t, err, ErrInvalidDigit)
}

func TestParseDifficultyAndMode(t *testing.T) {
	t.Parallel()
	d, err := ParseDifficulty("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyEasy, d)

	d, err = ParseDifficulty(" Hard ")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, d)

	_, err = ParseDifficulty("extreme")
	assert.ErrorIs(t, err, ErrUnknownDifficulty)

	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeSinglePlayer, m)

	m, err = ParseMode("collaborative")
	require.NoError(t, err)
	assert.Equal(t, ModeCollaborative, m)

	_, err = ParseMode("versus")
	assert.ErrorIs(t, err, ErrUnknownMode)
}
