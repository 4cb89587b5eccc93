package labyrinth

// Cell is one square of a labyrinth, described by the walls around it.
// A Cell is a value: copies are independent and the zero Cell has no walls.
type Cell struct {
	walls Walls
}

// NewCell builds a cell from a raw bitmask. Bits above WallAll are discarded.
func NewCell(raw int) Cell {
	return Cell{walls: masked(raw)}
}

// CreateCell builds a cell from four independent wall flags.
func CreateCell(top, right, bottom, left bool) Cell {
	walls := WallNone
	if top {
		walls |= WallTop
	}
	if right {
		walls |= WallRight
	}
	if bottom {
		walls |= WallBottom
	}
	if left {
		walls |= WallLeft
	}
	return Cell{walls: walls}
}

// Walls returns the raw 0-15 wall bitmask.
func (c Cell) Walls() int {
	return int(c.walls)
}

// HaveWall reports whether every wall in w is present.
func (c Cell) HaveWall(w Walls) bool {
	return c.walls&w == w
}

// IsEqual reports whether both cells have the same walls.
func (c Cell) IsEqual(other Cell) bool {
	return c.walls == other.walls
}

func (c Cell) without(w Walls) Cell {
	return Cell{walls: c.walls &^ w}
}
