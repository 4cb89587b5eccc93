// Package dmn holds the values exchanged between the API and the services.
package dmn

import "github.com/beka-birhanu/labyrinth-api/labyrinth"

// GenerateRequest describes a labyrinth to generate. Zero values fall back to
// the service defaults.
type GenerateRequest struct {
	Width     int
	Height    int
	Seed      *int64           // Reproducible generation when set.
	Algorithm string           // Generator name, empty for the default.
	Highlight *labyrinth.Coord // Cell marked in the text rendering.
	Style     string           // Text renderer name, empty for block glyphs.
}

// Snapshot is a generated labyrinth in wire form.
type Snapshot struct {
	ID        int64
	Width     int
	Height    int
	Cells     []int // Row-major wall masks, index = y*Width + x.
	Algorithm labyrinth.Algorithm
	Text      string
}
