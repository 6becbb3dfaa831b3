package level

import (
	"fmt"
	"strings"
)

// Difficulty selects which level a game starts.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
)

// Difficulties returns every supported difficulty in order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium}
}

// String returns the display name of d.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// ParseDifficulty converts a name such as "easy" or "Medium" to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	default:
		return 0, &UnsupportedDifficultyError{Name: s, parsed: true}
	}
}

// MarshalText encodes d as its lower-case name.
func (d Difficulty) MarshalText() ([]byte, error) {
	switch d {
	case Easy, Medium:
		return []byte(strings.ToLower(d.String())), nil
	default:
		return nil, &UnsupportedDifficultyError{Value: d}
	}
}

// UnmarshalText decodes a difficulty name.
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
