/*
Package labyrinth generates and queries perfect rectangular mazes.

A Labyrinth is a width x height grid of Cells stored in row-major order
(index = y*width + x). Each Cell carries a four bit wall mask (top, right,
bottom, left). Generated labyrinths are spanning trees over the grid: exactly
one path joins any two cells.

The package includes two randomized generators (a frontier growth algorithm and
Wilson's algorithm), wall-aware movement, and a block-glyph text renderer.
A Labyrinth is only mutated while it is being generated; afterwards it is safe
for concurrent readers.
*/
package labyrinth

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions = errors.New("labyrinth dimensions must be positive")
	ErrCellCountMismatch = errors.New("cell count does not match labyrinth dimensions")
	ErrInvalidDirection  = errors.New("invalid direction")
)

// Labyrinth is a rectangular grid of cells.
type Labyrinth struct {
	width  int
	height int
	cells  []Cell
}

// Create builds a width x height labyrinth where every cell equals initial.
func Create(width, height int, initial Cell) (*Labyrinth, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = initial
	}
	return &Labyrinth{width: width, height: height, cells: cells}, nil
}

// FromCells rebuilds a labyrinth from its exported wall masks.
func FromCells(width, height int, walls []int) (*Labyrinth, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}
	if len(walls) != width*height {
		return nil, fmt.Errorf("%w: got %d cells for %dx%d", ErrCellCountMismatch, len(walls), width, height)
	}

	cells := make([]Cell, len(walls))
	for i, w := range walls {
		cells[i] = NewCell(w)
	}
	return &Labyrinth{width: width, height: height, cells: cells}, nil
}

func validateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return nil
}

// Dimension returns width and height.
func (l *Labyrinth) Dimension() (int, int) {
	return l.width, l.height
}

// Width returns the number of columns.
func (l *Labyrinth) Width() int {
	return l.width
}

// Height returns the number of rows.
func (l *Labyrinth) Height() int {
	return l.height
}

// CellsData exports the wall masks in row-major order. The returned slice is a copy.
func (l *Labyrinth) CellsData() []int {
	data := make([]int, len(l.cells))
	for i, c := range l.cells {
		data[i] = c.Walls()
	}
	return data
}

// GetCell returns the cell at c. The boolean is false when c is outside the grid.
func (l *Labyrinth) GetCell(c Coord) (Cell, bool) {
	idx, ok := IndexByCoord(c, l.width, l.height)
	if !ok {
		return Cell{}, false
	}
	return l.cells[idx], true
}

// Go moves one step from `from` in direction d.
// It returns the destination cell, or false when `from` is outside the grid,
// a wall of the origin cell blocks the way, or the step leaves the grid.
// An unknown direction is a caller bug and yields ErrInvalidDirection.
func (l *Labyrinth) Go(d Direction, from Coord) (Cell, bool, error) {
	if !d.Valid() {
		return Cell{}, false, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}

	cell, ok := l.GetCell(from)
	if !ok || cell.HaveWall(d.Wall()) {
		return Cell{}, false, nil
	}

	next, ok := l.GetCell(from.step(d))
	return next, ok, nil
}

// String renders the labyrinth without a highlighted cell.
func (l *Labyrinth) String() string {
	return Render(l, nil)
}

// openWall removes the wall between two cells. Cells that are not direct
// neighbours are left untouched.
func (l *Labyrinth) openWall(idx1, idx2 int) {
	c1 := CoordByIndex(idx1, l.width)
	c2 := CoordByIndex(idx2, l.width)
	delta := Coord{X: c2.X - c1.X, Y: c2.Y - c1.Y}

	for _, d := range Directions {
		if directionDeltas[d] == delta {
			l.cells[idx1] = l.cells[idx1].without(d.Wall())
			l.cells[idx2] = l.cells[idx2].without(d.Opposite().Wall())
			return
		}
	}
}

// neighbours returns the in-bounds indexes adjacent to idx, in Up, Right, Down, Left order.
func (l *Labyrinth) neighbours(idx int) []int {
	c := CoordByIndex(idx, l.width)
	result := make([]int, 0, len(Directions))
	for _, d := range Directions {
		if n, ok := IndexByCoord(c.step(d), l.width, l.height); ok {
			result = append(result, n)
		}
	}
	return result
}
