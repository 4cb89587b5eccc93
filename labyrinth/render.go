package labyrinth

import "strings"

const (
	glyphFull       = "\u2588"
	glyphLowerHalf  = "\u2584"
	glyphUpperHalf  = "\u2580"
	glyphLeftHalf   = "\u258c"
	glyphRightHalf  = "\u2590"
	glyphDashH      = "\u2504"
	glyphDashV      = "\u2506"
	glyphHighlight  = "**"
	glyphBlankInner = "  "
)

// Render draws l with block glyphs. Each row produces a top boundary line and
// a body line; the last row also gets a bottom boundary line. When highlight
// is not nil, that cell's interior is drawn as "**".
//
// Boundaries where only one of two neighbouring cells has a wall are drawn as
// a half block on that cell's side.
func Render(l *Labyrinth, highlight *Coord) string {
	var out strings.Builder

	for y := 0; y < l.height; y++ {
		var top, body, bottom strings.Builder

		for x := 0; x < l.width; x++ {
			here := Coord{X: x, Y: y}
			cell, _ := l.GetCell(here)
			up, hasUp := l.GetCell(here.step(Up))
			left, hasLeft := l.GetCell(here.step(Left))
			_, hasRight := l.GetCell(here.step(Right))
			_, hasDown := l.GetCell(here.step(Down))

			width := 3
			if !hasRight {
				width = 4
			}

			top.WriteString(topBoundary(cell, up, hasUp, hasLeft, hasRight, width))
			body.WriteString(leftBoundary(cell, left, hasLeft))

			if highlight != nil && *highlight == here {
				body.WriteString(glyphHighlight)
			} else {
				body.WriteString(glyphBlankInner)
			}
			if !hasRight {
				body.WriteString(glyphFull)
			}

			if !hasDown {
				bottom.WriteString(strings.Repeat(glyphUpperHalf, width))
			}
		}

		out.WriteString(top.String())
		out.WriteByte('\n')
		out.WriteString(body.String())
		out.WriteByte('\n')
		if bottom.Len() > 0 {
			out.WriteString(bottom.String())
			out.WriteByte('\n')
		}
	}

	return out.String()
}

func topBoundary(cell, up Cell, hasUp, hasLeft, hasRight bool, width int) string {
	switch {
	case !hasUp:
		return strings.Repeat(glyphLowerHalf, width)
	case cell.HaveWall(WallTop) && up.HaveWall(WallBottom):
		return strings.Repeat(glyphFull, width)
	case !cell.HaveWall(WallTop) && up.HaveWall(WallBottom):
		return strings.Repeat(glyphUpperHalf, width)
	case cell.HaveWall(WallTop) && !up.HaveWall(WallBottom):
		return strings.Repeat(glyphLowerHalf, width)
	case !hasLeft:
		return glyphFull + glyphDashH + glyphDashH
	case !hasRight:
		return glyphDashH + glyphDashH + glyphDashH + glyphFull
	default:
		return strings.Repeat(glyphDashH, width)
	}
}

func leftBoundary(cell, left Cell, hasLeft bool) string {
	switch {
	case !hasLeft:
		return glyphFull
	case cell.HaveWall(WallLeft) && left.HaveWall(WallRight):
		return glyphFull
	case !cell.HaveWall(WallLeft) && left.HaveWall(WallRight):
		return glyphLeftHalf
	case cell.HaveWall(WallLeft) && !left.HaveWall(WallRight):
		return glyphRightHalf
	default:
		return glyphDashV
	}
}
