package grades

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidInput matches every malformed score line.
var ErrInvalidInput = errors.New("invalid score input")

// InvalidScoreError indicates a token that is not a base-10 integer.
type InvalidScoreError struct {
	Token string
	Err   error
}

func (e *InvalidScoreError) Error() string {
	return fmt.Sprintf("invalid integer literal: '%s'", e.Token)
}

func (e *InvalidScoreError) Unwrap() error { return e.Err }

func (e *InvalidScoreError) Is(target error) bool { return target == ErrInvalidInput }

// ScoreCountError indicates a line with the wrong number of scores.
type ScoreCountError struct {
	Got  int
	Want int
}

// Error is shown to the user verbatim, hence the sentence form.
func (e *ScoreCountError) Error() string {
	return fmt.Sprintf("You must enter exactly %d scores.", e.Want)
}

func (e *ScoreCountError) Is(target error) bool { return target == ErrInvalidInput }

// ParseScores parses a whitespace-separated line of exactly SubjectCount
// integers. Every token is parsed before the count is checked.
func ParseScores(line string) ([SubjectCount]int, error) {
	var out [SubjectCount]int

	fields := strings.Fields(line)
	scores := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return out, &InvalidScoreError{Token: f, Err: err}
		}
		scores = append(scores, v)
	}

	if len(scores) != SubjectCount {
		return out, &ScoreCountError{Got: len(scores), Want: SubjectCount}
	}

	copy(out[:], scores)
	return out, nil
}
