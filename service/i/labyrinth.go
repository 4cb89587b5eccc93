package i

import (
	"context"

	dmn "github.com/beka-birhanu/labyrinth-api/domain"
)

// LabyrinthGenerator produces labyrinth snapshots.
type LabyrinthGenerator interface {
	// Generate builds a new perfect labyrinth according to the request.
	Generate(ctx context.Context, req dmn.GenerateRequest) (*dmn.Snapshot, error)
}
