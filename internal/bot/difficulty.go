package bot

import (
	"fmt"
	"strings"
)

// Difficulty selects which scoring passes the computer runs.
type Difficulty uint8

const (
	Random Difficulty = iota
	Easy
	Normal
	Advanced
)

var difficultyNames = [...]string{"random", "easy", "normal", "advanced"}

func (d Difficulty) String() string {
	if int(d) < len(difficultyNames) {
		return difficultyNames[d]
	}
	return fmt.Sprintf("Difficulty(%d)", uint8(d))
}

func (d Difficulty) Valid() bool {
	return d <= Advanced
}

// ParseDifficulty accepts a tier name or its number 0-3.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range difficultyNames {
		if s == name || s == fmt.Sprint(i) {
			return Difficulty(i), nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid difficulty %d", uint8(d))
	}
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
