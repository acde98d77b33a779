// Package render draws a maze board and a solved path as an image.
//
// Each cell becomes one tile in its color (red, blue, or grey for the
// colorless bull's-eye). Cells on the path get a light inset, the target a
// green one. The board is drawn at CellSize pixels per cell and then
// upscaled by Scale with nearest-neighbour sampling so tiles stay crisp.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/katalvlaran/arrowmaze/arrowgrid"
)

// ErrGridNil is returned when Render gets a nil grid.
var ErrGridNil = errors.New("render: grid is nil")

var (
	red    = color.NRGBA{R: 0xc8, G: 0x28, B: 0x28, A: 0xff}
	blue   = color.NRGBA{R: 0x28, G: 0x46, B: 0xc8, A: 0xff}
	grey   = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	trail  = color.NRGBA{R: 0xf0, G: 0xe6, B: 0x8c, A: 0xff}
	finish = color.NRGBA{R: 0x32, G: 0xcd, B: 0x32, A: 0xff}
)

// Option configures Render.
type Option func(*Options)

// Options sets the geometry of the picture.
type Options struct {
	// CellSize is the tile edge in pixels before scaling; minimum 2.
	CellSize int
	// Scale is the integer upscaling factor; minimum 1.
	Scale int
}

// DefaultOptions returns 8px tiles upscaled 4 times.
func DefaultOptions() Options {
	return Options{CellSize: 8, Scale: 4}
}

// WithCellSize sets the tile edge in pixels.
func WithCellSize(px int) Option {
	return func(o *Options) {
		o.CellSize = px
	}
}

// WithScale sets the upscaling factor.
func WithScale(n int) Option {
	return func(o *Options) {
		o.Scale = n
	}
}

// Render paints g with the given path vertices highlighted. path may be nil.
func Render(g *arrowgrid.Grid, path []arrowgrid.Vertex, opts ...Option) (image.Image, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.CellSize < 2 {
		o.CellSize = 2
	}
	if o.Scale < 1 {
		o.Scale = 1
	}

	cs := o.CellSize
	dst := image.NewNRGBA(image.Rect(0, 0, g.Cols()*cs, g.Rows()*cs))
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell, err := g.Cell(arrowgrid.Vertex{Row: r, Col: c})
			if err != nil {
				return nil, err
			}
			fill(dst, tile(c, r, cs, 0), tileColor(cell.Color))
		}
	}

	inset := cs / 4
	for _, v := range path {
		if !g.InBounds(v) {
			return nil, fmt.Errorf("render: path vertex %v: %w", v, arrowgrid.ErrOutOfBounds)
		}
		col := color.Color(trail)
		if v == g.Target() {
			col = finish
		}
		fill(dst, tile(v.Col, v.Row, cs, inset), col)
	}

	if o.Scale == 1 {
		return dst, nil
	}
	up := image.NewNRGBA(image.Rect(0, 0, dst.Bounds().Dx()*o.Scale, dst.Bounds().Dy()*o.Scale))
	draw.NearestNeighbor.Scale(up, up.Bounds(), dst, dst.Bounds(), draw.Over, nil)

	return up, nil
}

// WritePNG encodes img as PNG into w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encoding png: %w", err)
	}

	return nil
}

func tile(col, row, size, inset int) image.Rectangle {
	x, y := col*size, row*size

	return image.Rect(x+inset, y+inset, x+size-inset, y+size-inset)
}

func fill(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func tileColor(c arrowgrid.Color) color.Color {
	switch c {
	case arrowgrid.Red:
		return red
	case arrowgrid.Blue:
		return blue
	}

	return grey
}
