package arrowgrid

// NewGrid constructs a Grid from a non-empty rectangular 2D slice of cells.
// The input is copied, so later changes to cells do not affect the grid.
// Returns ErrInvalidDimensions if the grid is empty or larger than the
// configured cap, ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func NewGrid(cells [][]Cell, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	rows, cols := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	if err := CheckDimensions(rows, cols, o.MaxDimension); err != nil {
		return nil, err
	}

	flat := make([]Cell, 0, rows*cols)
	for _, row := range cells {
		flat = append(flat, row...)
	}

	return &Grid{rows: rows, cols: cols, cells: flat}, nil
}

// CheckDimensions reports ErrInvalidDimensions unless 1 <= rows,cols <= limit.
// A limit <= 0 only enforces the lower bound.
func CheckDimensions(rows, cols, limit int) error {
	if rows < 1 || cols < 1 {
		return ErrInvalidDimensions
	}
	if limit > 0 && (rows > limit || cols > limit) {
		return ErrInvalidDimensions
	}

	return nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start is always the top-left cell (0,0).
func (g *Grid) Start() Vertex { return Vertex{} }

// Target is the bottom-right cell (rows-1, cols-1).
func (g *Grid) Target() Vertex { return Vertex{Row: g.rows - 1, Col: g.cols - 1} }

// InBounds reports whether v lies within [0,rows)×[0,cols).
// Complexity: O(1).
func (g *Grid) InBounds(v Vertex) bool {
	return v.Row >= 0 && v.Row < g.rows && v.Col >= 0 && v.Col < g.cols
}

// Cell returns the cell at v, or ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) Cell(v Vertex) (Cell, error) {
	if !g.InBounds(v) {
		return Cell{}, ErrOutOfBounds
	}

	return g.cells[g.Index(v)], nil
}

// Index maps v to its row-major index row*cols + col.
// The caller is responsible for bounds.
func (g *Grid) Index(v Vertex) int {
	return v.Row*g.cols + v.Col
}

// Vertex converts a row-major index back to a vertex.
func (g *Grid) Vertex(idx int) Vertex {
	return Vertex{Row: idx / g.cols, Col: idx % g.cols}
}

// CanMove is the adjacency rule: a step from one cell to a neighbor is legal
// iff their colors differ. Direction labels are ignored.
func CanMove(from, to Cell) bool {
	return from.Color != to.Color
}

// Legal reports whether the single step from -> to is allowed on g: both
// ends in bounds and CanMove holds for their cells.
func (g *Grid) Legal(from, to Vertex) bool {
	if !g.InBounds(from) || !g.InBounds(to) {
		return false
	}

	return CanMove(g.cells[g.Index(from)], g.cells[g.Index(to)])
}
