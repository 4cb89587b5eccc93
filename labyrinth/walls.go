package labyrinth

// Walls is a set of cell boundaries. Only the low four bits are meaningful.
type Walls uint8

const (
	WallNone   Walls = 0
	WallTop    Walls = 1 << 0
	WallRight  Walls = 1 << 1
	WallBottom Walls = 1 << 2
	WallLeft   Walls = 1 << 3
	WallAll          = WallTop | WallRight | WallBottom | WallLeft
)

// masked drops every bit outside WallAll.
func masked(raw int) Walls {
	return Walls(raw) & WallAll
}
