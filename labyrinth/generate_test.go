package labyrinth

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroSource always picks the first element.
type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

// countingSource records how many numbers were drawn.
type countingSource struct {
	RandSource
	calls int
}

func (s *countingSource) Intn(n int) int {
	s.calls++
	return s.RandSource.Intn(n)
}

// openings counts neighbouring pairs with the shared wall removed on both sides.
func openings(t *testing.T, lab *Labyrinth) int {
	t.Helper()
	count := 0
	for idx := range lab.cells {
		here := CoordByIndex(idx, lab.width)
		cell, _ := lab.GetCell(here)
		for _, d := range []Direction{Right, Down} {
			other, ok := lab.GetCell(here.step(d))
			if !ok {
				require.True(t, cell.HaveWall(d.Wall()), "outer wall missing at %+v", here)
				continue
			}
			require.Equal(t, cell.HaveWall(d.Wall()), other.HaveWall(d.Opposite().Wall()),
				"walls disagree between %+v and its %s neighbour", here, d)
			if !cell.HaveWall(d.Wall()) {
				count++
			}
		}
		if here.X == 0 {
			require.True(t, cell.HaveWall(WallLeft), "outer wall missing at %+v", here)
		}
		if here.Y == 0 {
			require.True(t, cell.HaveWall(WallTop), "outer wall missing at %+v", here)
		}
	}
	return count
}

// reachable walks the labyrinth with Go from (0, 0) and counts visited cells.
func reachable(t *testing.T, lab *Labyrinth) int {
	t.Helper()
	seen := map[Coord]bool{{0, 0}: true}
	queue := []Coord{{0, 0}}
	for len(queue) > 0 {
		here := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			_, ok, err := lab.Go(d, here)
			require.NoError(t, err)
			next := here.step(d)
			if ok && !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return len(seen)
}

func assertPerfect(t *testing.T, lab *Labyrinth) {
	t.Helper()
	total := lab.width * lab.height
	require.Len(t, lab.cells, total)
	assert.Equal(t, total-1, openings(t, lab), "a spanning tree has one edge less than cells")
	assert.Equal(t, total, reachable(t, lab), "every cell must be reachable")
}

func TestGenerate(t *testing.T) {
	t.Run("produces perfect labyrinths", func(t *testing.T) {
		sizes := [][2]int{{1, 1}, {2, 1}, {1, 2}, {1, 7}, {7, 1}, {3, 3}, {5, 5}, {10, 7}, {20, 20}}
		for seed, size := range sizes {
			lab, err := Generate(size[0], size[1], rand.New(rand.NewSource(int64(seed))))
			require.NoError(t, err)
			assertPerfect(t, lab)
		}
	})

	t.Run("single cell keeps every wall", func(t *testing.T) {
		src := &countingSource{RandSource: zeroSource{}}
		lab, err := Generate(1, 1, src)
		require.NoError(t, err)
		assert.Equal(t, []int{15}, lab.CellsData())
		assert.Equal(t, 1, src.calls, "only the root is drawn")
	})

	t.Run("two cells share one opening", func(t *testing.T) {
		for seed := int64(0); seed < 4; seed++ {
			lab, err := Generate(2, 1, rand.New(rand.NewSource(seed)))
			require.NoError(t, err)
			assert.Equal(t, []int{13, 7}, lab.CellsData())
		}
	})

	t.Run("one draw per attached cell", func(t *testing.T) {
		src := &countingSource{RandSource: rand.New(rand.NewSource(3))}
		_, err := Generate(6, 4, src)
		require.NoError(t, err)
		assert.Equal(t, 24, src.calls)
	})

	t.Run("fixed source gives a known layout", func(t *testing.T) {
		lab, err := Generate(2, 2, zeroSource{})
		require.NoError(t, err)
		if diff := cmp.Diff([]int{9, 3, 14, 14}, lab.CellsData()); diff != "" {
			t.Errorf("unexpected cells (-want +got):\n%s", diff)
		}
	})

	t.Run("same seed reproduces the same labyrinth", func(t *testing.T) {
		first, err := Generate(5, 5, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		second, err := Generate(5, 5, rand.New(rand.NewSource(42)))
		require.NoError(t, err)

		assertPerfect(t, first)
		if diff := cmp.Diff(first.CellsData(), second.CellsData()); diff != "" {
			t.Errorf("generation is not reproducible (-first +second):\n%s", diff)
		}

		fixed, err := Generate(5, 5, zeroSource{})
		require.NoError(t, err)
		assertPerfect(t, fixed)
	})

	t.Run("nil source falls back to the default", func(t *testing.T) {
		lab, err := Generate(4, 3, nil)
		require.NoError(t, err)
		assertPerfect(t, lab)
	})
}

func TestOpenWall(t *testing.T) {
	lab := mustCreate(t, 3, 3, NewCell(int(WallAll)))

	lab.openWall(4, 3)
	assert.Equal(t, int(WallAll&^WallLeft), lab.cells[4].Walls())
	assert.Equal(t, int(WallAll&^WallRight), lab.cells[3].Walls())

	lab.openWall(4, 1)
	assert.Equal(t, int(WallRight|WallBottom), lab.cells[4].Walls())
	assert.Equal(t, int(WallAll&^WallBottom), lab.cells[1].Walls())

	before := lab.CellsData()
	lab.openWall(0, 8)
	lab.openWall(2, 3)
	assert.Equal(t, before, lab.CellsData(), "non-adjacent cells are ignored")
}
