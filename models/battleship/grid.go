package battleship

import (
	"github.com/dolthub/swiss"

	cerr "github.com/saeidalz13/battleship-sim/internal/error"
)

// Grid cells hold the owning ship slot, or PositionStateEmpty.
const PositionStateEmpty int = -1

type Orientation byte

const (
	OrientationHorizontal Orientation = 'H'
	OrientationVertical   Orientation = 'V'
)

func ParseOrientation(o byte) (Orientation, error) {
	switch Orientation(o) {
	case OrientationHorizontal, OrientationVertical:
		return Orientation(o), nil
	default:
		return 0, cerr.ErrUnknownOrientation(o)
	}
}

// footprint grows rightwards for horizontal ships and upwards
// (decreasing row) for vertical ones.
func (o Orientation) footprint(start Coordinates, length int) []Coordinates {
	cells := make([]Coordinates, 0, length)
	for i := 0; i < length; i++ {
		if o == OrientationHorizontal {
			cells = append(cells, NewCoordinates(start.Row, start.Col+i))
		} else {
			cells = append(cells, NewCoordinates(start.Row-i, start.Col))
		}
	}
	return cells
}

// Coordinates are 1-indexed.
type Coordinates struct {
	Row int
	Col int
}

func NewCoordinates(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

// Grid is a dense rows x cols matrix, addressed internally from 0.
type Grid [][]int

// Creates a new grid with every position empty
func NewGrid(rows, cols int) Grid {
	grid := make(Grid, rows)
	for i := range grid {
		grid[i] = make([]int, cols)
		for j := range grid[i] {
			grid[i][j] = PositionStateEmpty
		}
	}
	return grid
}

func (g Grid) Rows() int {
	return len(g)
}

func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

func (g Grid) InBounds(c Coordinates) bool {
	return c.Row >= 1 && c.Row <= g.Rows() && c.Col >= 1 && c.Col <= g.Cols()
}

func (g Grid) At(c Coordinates) int {
	return g[c.Row-1][c.Col-1]
}

func (g Grid) set(c Coordinates, slot int) {
	g[c.Row-1][c.Col-1] = slot
}

// attackHistory is sparse: most cells of a board are never shot at.
type attackHistory struct {
	cells *swiss.Map[Coordinates, struct{}]
}

func newAttackHistory(sizeHint int) *attackHistory {
	return &attackHistory{cells: swiss.NewMap[Coordinates, struct{}](uint32(sizeHint))}
}

// mark reports whether c had already been attacked.
func (h *attackHistory) mark(c Coordinates) bool {
	if h.cells.Has(c) {
		return true
	}
	h.cells.Put(c, struct{}{})
	return false
}

func (h *attackHistory) count() int {
	return h.cells.Count()
}
