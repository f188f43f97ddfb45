package game

import (
	"fmt"
	"strings"
)

// Difficulty selects how the secret pool is built.
//
//   - easy:   filtered pool, one answer letter revealed up front.
//   - medium: filtered pool minus likely inflected forms (plurals, past tenses).
//   - hard:   filtered pool.
//   - chaos:  any word the validator accepts.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
	Chaos  Difficulty = "chaos"

	DefaultDifficulty = Medium
)

// Difficulties lists the presets in increasing order.
var Difficulties = []Difficulty{Easy, Medium, Hard, Chaos}

// ParseDifficulty accepts a preset name in any case. Blank means DefaultDifficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultDifficulty, nil
	}
	for _, d := range Difficulties {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, medium, hard or chaos)", s)
}

func (d Difficulty) String() string { return string(d) }
