// Package dice provides a small dice rolling system for standard dice
// notation. It covers plain constants and NdM rolls with an optional
// additive modifier, which is all the map generator asks for.
package dice

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
)

// RollResult contains the result of a dice roll evaluation
type RollResult struct {
	Total      int    // Final computed value
	Rolls      []int  // Individual die rolls (if applicable)
	Expression string // Original expression
}

// Roller handles dice rolling with a configurable random source
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a new Roller with the given random source
func NewRoller(rng *rand.Rand) *Roller {
	return &Roller{rng: rng}
}

// diceRe matches "NdM", "NdM+K" and "NdM-K"; N defaults to 1.
var diceRe = regexp.MustCompile(`^(\d*)d(\d+)([+-]\d+)?$`)

// Roll evaluates a dice expression and returns the result
// Supported syntax:
//   - Basic dice: "3d6" (roll 3 six-sided dice), "d20"
//   - Modifiers: "3d6+5", "2d8-2"
//   - Constants: "5", "10"
func (r *Roller) Roll(expression string) (*RollResult, error) {
	expr := strings.ToLower(strings.ReplaceAll(expression, " ", ""))
	if expr == "" {
		return nil, fmt.Errorf("empty expression")
	}

	result := &RollResult{Expression: expression}

	// Plain constant
	if n, err := strconv.Atoi(expr); err == nil {
		result.Total = n
		return result, nil
	}

	m := diceRe.FindStringSubmatch(expr)
	if m == nil {
		return nil, fmt.Errorf("invalid dice expression: %s", expression)
	}

	count := 1
	if m[1] != "" {
		var err error
		if count, err = strconv.Atoi(m[1]); err != nil || count < 1 {
			return nil, fmt.Errorf("invalid die count in expression: %s", expression)
		}
	}
	sides, err := strconv.Atoi(m[2])
	if err != nil || sides < 1 {
		return nil, fmt.Errorf("invalid die size in expression: %s", expression)
	}

	modifier := 0
	if m[3] != "" {
		// The sign is part of the capture, so Atoi handles both cases.
		if modifier, err = strconv.Atoi(m[3]); err != nil {
			return nil, fmt.Errorf("invalid modifier in expression: %s", expression)
		}
	}

	result.Rolls = make([]int, count)
	for i := range result.Rolls {
		result.Rolls[i] = r.rng.Intn(sides) + 1
		result.Total += result.Rolls[i]
	}
	result.Total += modifier

	return result, nil
}

// MustRoll evaluates an expression known to be valid at compile time and
// panics otherwise. Intended for literals like "2d3+2" in generator code.
func (r *Roller) MustRoll(expression string) int {
	result, err := r.Roll(expression)
	if err != nil {
		panic(fmt.Sprintf("dice: bad literal expression %q: %v", expression, err))
	}
	return result.Total
}
