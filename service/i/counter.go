package i

import "context"

// Counter hands out increasing labyrinth ids.
type Counter interface {
	// Next returns the next id. Ids start at 1.
	Next(ctx context.Context) (int64, error)
}
