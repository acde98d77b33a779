package move_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arrowmaze/move"
)

// TestDirections_Order pins the neighbor order; it decides which path DFS returns.
func TestDirections_Order(t *testing.T) {
	want := [8]move.Direction{move.N, move.E, move.S, move.W, move.NE, move.SE, move.SW, move.NW}
	assert.Equal(t, want, move.Directions())

	offsets := [8][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}, {-1, 1}, {1, 1}, {1, -1}, {-1, -1}}
	for i, d := range move.Directions() {
		dr, dc := d.Offset()
		assert.Equal(t, offsets[i], [2]int{dr, dc}, "direction %s", d)
	}
}

// TestEncode_RoundTrip checks that every unit offset encodes to its own tag
// and decodes back to the same delta.
func TestEncode_RoundTrip(t *testing.T) {
	for _, d := range move.Directions() {
		dr, dc := d.Offset()
		m, err := move.Encode(dr, dc)
		require.NoError(t, err)
		assert.Equal(t, d, m.Dir)
		assert.Equal(t, 1, m.Steps)

		gr, gc := m.Delta()
		assert.Equal(t, dr, gr)
		assert.Equal(t, dc, gc)
	}
}

// TestEncode_Magnitude covers multi-step deltas along rays.
func TestEncode_Magnitude(t *testing.T) {
	cases := []struct {
		dr, dc int
		want   move.Move
	}{
		{-3, 0, move.Move{Dir: move.N, Steps: 3}},
		{0, 2, move.Move{Dir: move.E, Steps: 2}},
		{4, -4, move.Move{Dir: move.SW, Steps: 4}},
		{-2, -2, move.Move{Dir: move.NW, Steps: 2}},
	}
	for _, tc := range cases {
		m, err := move.Encode(tc.dr, tc.dc)
		require.NoError(t, err)
		assert.Equal(t, tc.want, m)
		dr, dc := m.Delta()
		assert.Equal(t, [2]int{tc.dr, tc.dc}, [2]int{dr, dc})
	}
}

// TestEncode_Invalid rejects the zero delta, knight-like offsets and
// deltas whose magnitude does not fit in an int.
func TestEncode_Invalid(t *testing.T) {
	for _, d := range [][2]int{{0, 0}, {1, 2}, {-2, 3}, {math.MinInt, 0}, {0, math.MinInt}, {math.MinInt, math.MinInt}} {
		_, err := move.Encode(d[0], d[1])
		assert.ErrorIs(t, err, move.ErrInvalidDelta, "delta %v", d)
	}
}

// TestToken renders with and without the magnitude prefix.
func TestToken(t *testing.T) {
	m := move.Move{Dir: move.SE, Steps: 1}
	assert.Equal(t, "SE", m.Token(false))
	assert.Equal(t, "1SE", m.Token(true))
	assert.Equal(t, "SE", m.String())

	// untracked magnitude defaults to 1
	assert.Equal(t, "1N", move.Move{Dir: move.N}.Token(true))
	assert.True(t, move.Move{}.IsEmpty())
	assert.Equal(t, "", move.Move{}.Token(false))
}

// TestParseToken inverts Token and rejects junk.
func TestParseToken(t *testing.T) {
	for _, d := range move.Directions() {
		for _, steps := range []int{1, 3} {
			m := move.Move{Dir: d, Steps: steps}
			for _, withMag := range []bool{true, false} {
				if !withMag && steps != 1 {
					continue
				}
				got, err := move.ParseToken(m.Token(withMag))
				require.NoError(t, err)
				assert.Equal(t, m, got)
			}
		}
	}

	for _, bad := range []string{"", "X", "0N", "2", "NEE"} {
		_, err := move.ParseToken(bad)
		assert.ErrorIs(t, err, move.ErrInvalidToken, "token %q", bad)
	}
}
