package level

import (
	"errors"
	"fmt"
)

// ErrUnsupportedDifficulty is matched by every UnsupportedDifficultyError.
var ErrUnsupportedDifficulty = errors.New("unsupported difficulty")

// UnsupportedDifficultyError reports a difficulty the factory cannot map to a
// level. Name is set when the value came from text, Value otherwise.
type UnsupportedDifficultyError struct {
	Value Difficulty
	Name  string

	parsed bool
}

func (e *UnsupportedDifficultyError) Error() string {
	if e.parsed {
		return fmt.Sprintf("unsupported difficulty %q", e.Name)
	}
	return fmt.Sprintf("unsupported difficulty %d", int(e.Value))
}

// Is makes errors.Is(err, ErrUnsupportedDifficulty) hold.
func (e *UnsupportedDifficultyError) Is(target error) bool {
	return target == ErrUnsupportedDifficulty
}
