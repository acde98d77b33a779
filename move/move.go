package move

import (
	"fmt"
	"strconv"
	"strings"
)

// Directions returns the eight directions in search order N,E,S,W,NE,SE,SW,NW.
func Directions() [8]Direction {
	return order
}

// Offset returns the unit (dRow, dCol) of d. None yields (0, 0).
func (d Direction) Offset() (dr, dc int) {
	if d > NW {
		return 0, 0
	}

	return offsets[d][0], offsets[d][1]
}

// String returns the compass name of d, or "" for None.
func (d Direction) String() string {
	if d > NW {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}

	return names[d]
}

// ParseDirection maps a compass name back to a Direction.
func ParseDirection(s string) (Direction, error) {
	for _, d := range order {
		if names[d] == s {
			return d, nil
		}
	}

	return None, fmt.Errorf("%w: direction %q", ErrInvalidToken, s)
}

// Encode converts a coordinate delta into a Move. The delta must be
// non-zero and lie on one of the eight rays: one component zero, or both
// components of equal magnitude. Steps is the length along that ray.
func Encode(dr, dc int) (Move, error) {
	adr, adc := abs(dr), abs(dc)
	// abs(math.MinInt) stays negative
	if adr < 0 || adc < 0 || (adr == 0 && adc == 0) || (adr != 0 && adc != 0 && adr != adc) {
		return Move{}, fmt.Errorf("%w: (%d,%d)", ErrInvalidDelta, dr, dc)
	}
	steps := adr
	if adc > steps {
		steps = adc
	}
	ur, uc := dr/steps, dc/steps
	for _, d := range order {
		if offsets[d][0] == ur && offsets[d][1] == uc {
			return Move{Dir: d, Steps: steps}, nil
		}
	}

	return Move{}, fmt.Errorf("%w: (%d,%d)", ErrInvalidDelta, dr, dc)
}

// Delta returns the coordinate delta covered by m. Steps below 1 count as 1.
func (m Move) Delta() (dr, dc int) {
	ur, uc := m.Dir.Offset()
	n := m.Steps
	if n < 1 {
		n = 1
	}

	return ur * n, uc * n
}

// IsEmpty reports whether m is an unused slot.
func (m Move) IsEmpty() bool {
	return m.Dir == None
}

// Token renders m as text: the compass name, prefixed by the step count
// when withMagnitude is set. Steps below 1 render as 1.
func (m Move) Token(withMagnitude bool) string {
	if !withMagnitude {
		return m.Dir.String()
	}
	n := m.Steps
	if n < 1 {
		n = 1
	}

	return strconv.Itoa(n) + m.Dir.String()
}

// String is Token(false).
func (m Move) String() string {
	return m.Token(false)
}

// ParseToken is the inverse of Token. An absent numeric prefix means 1 step.
func ParseToken(s string) (Move, error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	steps := 1
	if i > 0 {
		n, err := strconv.Atoi(s[:i])
		if err != nil || n < 1 {
			return Move{}, fmt.Errorf("%w: magnitude in %q", ErrInvalidToken, s)
		}
		steps = n
	}
	d, err := ParseDirection(strings.ToUpper(s[i:]))
	if err != nil {
		return Move{}, err
	}

	return Move{Dir: d, Steps: steps}, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
