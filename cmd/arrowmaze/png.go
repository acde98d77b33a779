package main

import (
	"os"

	"github.com/katalvlaran/arrowmaze/arrowgrid"
	"github.com/katalvlaran/arrowmaze/dfs"
	"github.com/katalvlaran/arrowmaze/render"
)

func writePNG(name string, g *arrowgrid.Grid, res *dfs.Result) (err error) {
	img, err := render.Render(g, res.Vertices)
	if err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return render.WritePNG(f, img)
}
