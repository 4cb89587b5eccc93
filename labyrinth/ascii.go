package labyrinth

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownStyle = errors.New("unknown render style")

// Style selects a text renderer.
type Style string

const (
	StyleBlocks Style = "blocks"
	StyleASCII  Style = "ascii"
)

// ParseStyle resolves a style name. An empty name selects StyleBlocks.
func ParseStyle(name string) (Style, error) {
	switch s := Style(strings.ToLower(strings.TrimSpace(name))); s {
	case "":
		return StyleBlocks, nil
	case StyleBlocks, StyleASCII:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
}

// Render draws l in style s.
func (s Style) Render(l *Labyrinth, highlight *Coord) string {
	if s == StyleASCII {
		return RenderASCII(l, highlight)
	}
	return Render(l, highlight)
}

// RenderASCII draws l with plain "+---+" ASCII art for terminals without
// block glyphs. A highlighted cell is marked with "*". Only the walls of the
// cell on the left or above a boundary are consulted.
func RenderASCII(l *Labyrinth, highlight *Coord) string {
	var out strings.Builder

	// Top boundary
	out.WriteString("+")
	for x := 0; x < l.width; x++ {
		cell, _ := l.GetCell(Coord{X: x, Y: 0})
		out.WriteString(asciiHorizontal(cell.HaveWall(WallTop)))
	}
	out.WriteString("\n")

	for y := 0; y < l.height; y++ {
		first, _ := l.GetCell(Coord{X: 0, Y: y})
		if first.HaveWall(WallLeft) {
			out.WriteString("|")
		} else {
			out.WriteString(" ")
		}

		for x := 0; x < l.width; x++ {
			cell, _ := l.GetCell(Coord{X: x, Y: y})
			if highlight != nil && *highlight == (Coord{X: x, Y: y}) {
				out.WriteString(" * ")
			} else {
				out.WriteString("   ")
			}

			if cell.HaveWall(WallRight) {
				out.WriteString("|")
			} else {
				out.WriteString(" ")
			}
		}
		out.WriteString("\n")

		out.WriteString("+")
		for x := 0; x < l.width; x++ {
			cell, _ := l.GetCell(Coord{X: x, Y: y})
			out.WriteString(asciiHorizontal(cell.HaveWall(WallBottom)))
		}
		out.WriteString("\n")
	}

	return out.String()
}

func asciiHorizontal(wall bool) string {
	if wall {
		return "---+"
	}
	return "   +"
}
