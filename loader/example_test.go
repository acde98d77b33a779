package loader_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/arrowmaze/arrowgrid"
	"github.com/katalvlaran/arrowmaze/loader"
)

// ExampleParse reads an arrow-grammar board with a bull's-eye target.
func ExampleParse() {
	in := `2 2
R-E B-SW
B-NE O`
	g, err := loader.Parse(strings.NewReader(in), loader.WithGrammar(loader.ArrowGrammar))
	if err != nil {
		fmt.Println(err)
		return
	}
	for r := 0; r < g.Rows(); r++ {
		row := make([]string, 0, g.Cols())
		for c := 0; c < g.Cols(); c++ {
			cell, _ := g.Cell(arrowgrid.Vertex{Row: r, Col: c})
			row = append(row, cell.String())
		}
		fmt.Println(strings.Join(row, " "))
	}

	// Output:
	// R-E B-SW
	// B-NE O
}
