package grades

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScores(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    [SubjectCount]int
		wantErr string
	}{
		{name: "valid", input: "90 80 70", want: [SubjectCount]int{90, 80, 70}},
		{name: "extra whitespace", input: "  90\t80   70 ", want: [SubjectCount]int{90, 80, 70}},
		{name: "negative and large", input: "-5 +7 1000", want: [SubjectCount]int{-5, 7, 1000}},
		{name: "too few", input: "10 20", wantErr: "You must enter exactly 3 scores."},
		{name: "too many", input: "1 2 3 4", wantErr: "You must enter exactly 3 scores."},
		{name: "empty", input: "", wantErr: "You must enter exactly 3 scores."},
		{name: "non-integer", input: "a b c", wantErr: "invalid integer literal: 'a'"},
		{name: "float", input: "90 80.5 70", wantErr: "invalid integer literal: '80.5'"},
		{name: "bad token wins over count", input: "10 x", wantErr: "invalid integer literal: 'x'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScores(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseScores_ErrorTypes(t *testing.T) {
	_, err := ParseScores("10 20")
	var countErr *ScoreCountError
	require.True(t, errors.As(err, &countErr))
	assert.Equal(t, 2, countErr.Got)
	assert.Equal(t, SubjectCount, countErr.Want)

	_, err = ParseScores("a b c")
	var scoreErr *InvalidScoreError
	require.True(t, errors.As(err, &scoreErr))
	assert.Equal(t, "a", scoreErr.Token)
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
}

func TestParseScores_Overflow(t *testing.T) {
	_, err := ParseScores("1 2 99999999999999999999999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.True(t, errors.Is(err, strconv.ErrRange))
}
