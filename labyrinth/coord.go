package labyrinth

// Coord is a cell position. (0, 0) is the top left corner, X grows to the
// right and Y grows downwards.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CoordByIndex converts a row-major index into a coordinate.
func CoordByIndex(index, width int) Coord {
	y := index / width
	return Coord{X: index - width*y, Y: y}
}

// IndexByCoord converts a coordinate into a row-major index.
// The boolean is false when c lies outside a width x height grid.
func IndexByCoord(c Coord, width, height int) (int, bool) {
	if c.X < 0 || c.X >= width || c.Y < 0 || c.Y >= height {
		return 0, false
	}
	return width*c.Y + c.X, true
}

// step returns the coordinate one cell away in direction d.
func (c Coord) step(d Direction) Coord {
	delta := directionDeltas[d]
	return Coord{X: c.X + delta.X, Y: c.Y + delta.Y}
}
