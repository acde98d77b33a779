package arrowgrid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arrowmaze/arrowgrid"
)

// colors builds a grid from rows of 'R'/'B' letters, labels left empty.
func colors(t *testing.T, rows ...string) *arrowgrid.Grid {
	t.Helper()
	cells := make([][]arrowgrid.Cell, len(rows))
	for r, s := range rows {
		cells[r] = make([]arrowgrid.Cell, len(s))
		for c := 0; c < len(s); c++ {
			col, err := arrowgrid.ParseColor(s[c])
			require.NoError(t, err)
			cells[r][c] = arrowgrid.Cell{Color: col}
		}
	}
	g, err := arrowgrid.NewGrid(cells)
	require.NoError(t, err)

	return g
}

//----------------------------------------------------------------------------//
// NewGrid Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty, ragged and oversized inputs.
func TestNewGrid_Errors(t *testing.T) {
	big := make([][]arrowgrid.Cell, 101)
	for i := range big {
		big[i] = make([]arrowgrid.Cell, 1)
	}
	cases := []struct {
		name  string
		cells [][]arrowgrid.Cell
		opts  []arrowgrid.Option
		err   error
	}{
		{"EmptyRows", [][]arrowgrid.Cell{}, nil, arrowgrid.ErrInvalidDimensions},
		{"EmptyCols", [][]arrowgrid.Cell{{}}, nil, arrowgrid.ErrInvalidDimensions},
		{"NonRectangular", [][]arrowgrid.Cell{{{}, {}}, {{}}}, nil, arrowgrid.ErrNonRectangular},
		{"TooManyRows", big, nil, arrowgrid.ErrInvalidDimensions},
		{"CustomCap", [][]arrowgrid.Cell{{{}, {}, {}}}, []arrowgrid.Option{arrowgrid.WithMaxDimension(2)}, arrowgrid.ErrInvalidDimensions},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := arrowgrid.NewGrid(tc.cells, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestNewGrid_NoCap checks that WithMaxDimension(0) lifts the 100 limit.
func TestNewGrid_NoCap(t *testing.T) {
	cells := [][]arrowgrid.Cell{make([]arrowgrid.Cell, 150)}
	g, err := arrowgrid.NewGrid(cells, arrowgrid.WithMaxDimension(0))
	require.NoError(t, err)
	assert.Equal(t, 1, g.Rows())
	assert.Equal(t, 150, g.Cols())
}

// TestNewGrid_CopiesInput ensures later mutation of the input is not observed.
func TestNewGrid_CopiesInput(t *testing.T) {
	cells := [][]arrowgrid.Cell{{{Color: arrowgrid.Red}}}
	g, err := arrowgrid.NewGrid(cells)
	require.NoError(t, err)

	cells[0][0].Color = arrowgrid.Blue
	c, err := g.Cell(arrowgrid.Vertex{})
	require.NoError(t, err)
	assert.Equal(t, arrowgrid.Red, c.Color)
}

//----------------------------------------------------------------------------//
// Accessor Tests
//----------------------------------------------------------------------------//

// TestCell_Bounds checks Cell on a 2×3 grid for in- and out-of-range vertices.
func TestCell_Bounds(t *testing.T) {
	g := colors(t, "RBR", "BRB")

	assert.Equal(t, arrowgrid.Vertex{Row: 0, Col: 0}, g.Start())
	assert.Equal(t, arrowgrid.Vertex{Row: 1, Col: 2}, g.Target())

	c, err := g.Cell(arrowgrid.Vertex{Row: 1, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, arrowgrid.Red, c.Color)

	invalid := []arrowgrid.Vertex{{Row: -1}, {Col: -1}, {Row: 2}, {Col: 3}}
	for _, v := range invalid {
		_, err := g.Cell(v)
		assert.ErrorIs(t, err, arrowgrid.ErrOutOfBounds, "vertex %v", v)
		assert.False(t, g.InBounds(v), "vertex %v", v)
	}
}

// TestIndexVertex verifies the row-major mapping round-trips.
func TestIndexVertex(t *testing.T) {
	g := colors(t, "RBRB", "BRBR", "RBRB")
	for idx := 0; idx < g.Rows()*g.Cols(); idx++ {
		v := g.Vertex(idx)
		assert.Equal(t, idx, g.Index(v))
	}
	assert.Equal(t, 6, g.Index(arrowgrid.Vertex{Row: 1, Col: 2}))
}

//----------------------------------------------------------------------------//
// Adjacency Tests
//----------------------------------------------------------------------------//

// TestCanMove pins the color mismatch rule and that labels are ignored.
func TestCanMove(t *testing.T) {
	red := arrowgrid.Cell{Color: arrowgrid.Red, Label: "N"}
	blue := arrowgrid.Cell{Color: arrowgrid.Blue, Label: "S"}
	redOther := arrowgrid.Cell{Color: arrowgrid.Red, Label: "SW"}
	bullseye := arrowgrid.Cell{Label: arrowgrid.TerminalLabel}

	assert.True(t, arrowgrid.CanMove(red, blue))
	assert.True(t, arrowgrid.CanMove(blue, red))
	assert.False(t, arrowgrid.CanMove(red, redOther))
	assert.True(t, arrowgrid.CanMove(blue, bullseye))
}

// TestLegal checks the grid-level predicate including bounds.
func TestLegal(t *testing.T) {
	g := colors(t, "RR", "BR")
	assert.False(t, g.Legal(arrowgrid.Vertex{Row: 0, Col: 0}, arrowgrid.Vertex{Row: 0, Col: 1}))
	assert.True(t, g.Legal(arrowgrid.Vertex{Row: 0, Col: 0}, arrowgrid.Vertex{Row: 1, Col: 0}))
	assert.False(t, g.Legal(arrowgrid.Vertex{Row: 0, Col: 0}, arrowgrid.Vertex{Row: -1, Col: 0}))
}

// TestParseColor covers the accepted letters and a rejection.
func TestParseColor(t *testing.T) {
	c, err := arrowgrid.ParseColor('R')
	require.NoError(t, err)
	assert.Equal(t, "R", c.String())

	c, err = arrowgrid.ParseColor('B')
	require.NoError(t, err)
	assert.Equal(t, "B", c.String())

	_, err = arrowgrid.ParseColor('G')
	assert.ErrorIs(t, err, arrowgrid.ErrInvalidColor)
}

// TestCellString renders cells the way the input spells them.
func TestCellString(t *testing.T) {
	assert.Equal(t, "R-NE", arrowgrid.Cell{Color: arrowgrid.Red, Label: "NE"}.String())
	assert.Equal(t, "B", arrowgrid.Cell{Color: arrowgrid.Blue}.String())
	assert.Equal(t, "O", arrowgrid.Cell{Label: arrowgrid.TerminalLabel}.String())
}
