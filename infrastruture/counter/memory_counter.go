package counter

import (
	"context"
	"sync/atomic"

	"github.com/beka-birhanu/labyrinth-api/service/i"
)

// MemoryCounter numbers labyrinths within a single process.
type MemoryCounter struct {
	last atomic.Int64
}

// NewMemoryCounter creates a counter whose first id is 1.
func NewMemoryCounter() i.Counter {
	return &MemoryCounter{}
}

// Next implements i.Counter.
func (mc *MemoryCounter) Next(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return mc.last.Add(1), nil
}
