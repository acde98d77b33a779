package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/arrowmaze/arrowgrid"
)

var (
	compassLabels  = map[string]bool{"N": true, "E": true, "S": true, "W": true}
	diagonalLabels = map[string]bool{"NE": true, "SE": true, "SW": true, "NW": true}
)

// LoadFile opens name and parses it with Parse.
func LoadFile(name string, opts ...Option) (*arrowgrid.Grid, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("loader: opening input: %w", err)
	}
	defer f.Close()

	return Parse(f, opts...)
}

// Parse reads a maze description from r.
func Parse(r io.Reader, opts ...Option) (*arrowgrid.Grid, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	rows, err := scanInt(sc)
	if err != nil {
		return nil, err
	}
	cols, err := scanInt(sc)
	if err != nil {
		return nil, err
	}
	if err = arrowgrid.CheckDimensions(rows, cols, o.MaxDimension); err != nil {
		return nil, fmt.Errorf("%w: %d×%d", err, rows, cols)
	}

	// rows and cols come from the header; without a cap they may be huge,
	// so storage grows with the tokens actually read.
	cells := make([][]arrowgrid.Cell, 0, min(rows, arrowgrid.DefaultMaxDimension))
	for i := 0; i < rows; i++ {
		row := make([]arrowgrid.Cell, 0, min(cols, arrowgrid.DefaultMaxDimension))
		for j := 0; j < cols; j++ {
			if !sc.Scan() {
				if err = sc.Err(); err != nil {
					return nil, fmt.Errorf("loader: reading input: %w", err)
				}

				return nil, fmt.Errorf("%w: missing cell (%d, %d)", ErrTruncated, i, j)
			}
			last := i == rows-1 && j == cols-1
			cell, err := parseCell(sc.Text(), last, o.Grammar)
			if err != nil {
				return nil, &ParseError{Row: i, Col: j, Token: sc.Text(), Err: err}
			}
			row = append(row, cell)
		}
		cells = append(cells, row)
	}
	if sc.Scan() {
		return nil, fmt.Errorf("%w: %q", ErrTrailingData, sc.Text())
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: reading input: %w", err)
	}

	return arrowgrid.NewGrid(cells, arrowgrid.WithMaxDimension(o.MaxDimension))
}

func scanInt(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("loader: reading input: %w", err)
		}

		return 0, fmt.Errorf("%w: missing header", ErrInvalidDimensions)
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDimensions, sc.Text())
	}

	return n, nil
}

// parseCell decodes one "C-D" token, or the bull's-eye when last is set and
// the grammar requires it.
func parseCell(tok string, last bool, g Grammar) (arrowgrid.Cell, error) {
	if last && g.RequireTerminalMarker {
		if tok != string(arrowgrid.TerminalLabel) {
			return arrowgrid.Cell{}, ErrMissingTerminal
		}

		return arrowgrid.Cell{Label: arrowgrid.TerminalLabel}, nil
	}

	color, err := arrowgrid.ParseColor(tok[0])
	if err != nil {
		return arrowgrid.Cell{}, err
	}
	if len(tok) < 3 || tok[1] != '-' {
		return arrowgrid.Cell{}, ErrInvalidToken
	}
	label := tok[2:]
	if !compassLabels[label] && !(g.AllowDiagonalLabels && diagonalLabels[label]) {
		return arrowgrid.Cell{}, fmt.Errorf("%w %q", ErrInvalidDirection, label)
	}

	return arrowgrid.Cell{Color: color, Label: arrowgrid.Label(label)}, nil
}
