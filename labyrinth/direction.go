package labyrinth

import (
	"fmt"
	"strings"
)

// Direction is a movement direction. The numeric values are part of the
// wire format and must not change.
type Direction int

const (
	Up    Direction = 1
	Right Direction = 2
	Down  Direction = 3
	Left  Direction = 4
)

// Directions lists every direction in clockwise order starting from Up.
var Directions = []Direction{Up, Right, Down, Left}

var (
	directionDeltas = map[Direction]Coord{
		Up:    {X: 0, Y: -1},
		Right: {X: 1, Y: 0},
		Down:  {X: 0, Y: 1},
		Left:  {X: -1, Y: 0},
	}

	// directionWalls maps a direction to the wall of the origin cell that blocks it.
	directionWalls = map[Direction]Walls{
		Up:    WallTop,
		Right: WallRight,
		Down:  WallBottom,
		Left:  WallLeft,
	}

	directionNames = map[Direction]string{
		Up:    "up",
		Right: "right",
		Down:  "down",
		Left:  "left",
	}
)

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	_, ok := directionDeltas[d]
	return ok
}

// Wall returns the wall that blocks movement in direction d.
func (d Direction) Wall() Walls {
	return directionWalls[d]
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	}
	return d
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection accepts either a direction name ("up") or its wire code ("1").
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d, name := range directionNames {
		if s == name || s == fmt.Sprint(int(d)) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}
