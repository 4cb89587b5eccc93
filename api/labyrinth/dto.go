// Package labyrinthapi exposes labyrinth generation over HTTP.
package labyrinthapi

// LabyrinthQuery holds the optional query parameters of a generation request.
type LabyrinthQuery struct {
	Width     int    `form:"width" binding:"omitempty,min=1"`
	Height    int    `form:"height" binding:"omitempty,min=1"`
	Seed      *int64 `form:"seed"`
	Algorithm string `form:"algorithm"`
	Style     string `form:"style"`
	X         *int   `form:"x"`
	Y         *int   `form:"y"`
}

// LabyrinthResponse is the wire form of a generated labyrinth.
type LabyrinthResponse struct {
	ID        int64  `json:"id"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Cells     []int  `json:"cells"`
	Algorithm string `json:"algorithm"`
	Test      string `json:"test"`
	Status    string `json:"status"`
}
