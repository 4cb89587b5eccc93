package labyrinth

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateWilson(t *testing.T) {
	t.Run("produces perfect labyrinths", func(t *testing.T) {
		sizes := [][2]int{{1, 1}, {2, 1}, {1, 2}, {1, 6}, {4, 4}, {5, 5}, {9, 6}, {15, 15}}
		for seed, size := range sizes {
			lab, err := GenerateWilson(size[0], size[1], rand.New(rand.NewSource(int64(seed+100))))
			require.NoError(t, err)
			assertPerfect(t, lab)
		}
	})

	t.Run("two cells share one opening", func(t *testing.T) {
		lab, err := GenerateWilson(2, 1, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assert.Equal(t, []int{13, 7}, lab.CellsData())
	})

	t.Run("same seed reproduces the same labyrinth", func(t *testing.T) {
		first, err := GenerateWilson(6, 6, rand.New(rand.NewSource(9)))
		require.NoError(t, err)
		second, err := GenerateWilson(6, 6, rand.New(rand.NewSource(9)))
		require.NoError(t, err)
		assert.Equal(t, first.CellsData(), second.CellsData())
	})

	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		_, err := GenerateWilson(0, 3, nil)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})
}

func TestAlgorithm(t *testing.T) {
	for input, want := range map[string]Algorithm{"": Frontier, "frontier": Frontier, " Wilson ": Wilson} {
		a, err := ParseAlgorithm(input)
		require.NoError(t, err)
		assert.Equal(t, want, a)
	}

	_, err := ParseAlgorithm("kruskal")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	_, err = Algorithm("kruskal").Generate(3, 3, nil)
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	for _, a := range []Algorithm{Frontier, Wilson} {
		lab, err := a.Generate(4, 5, rand.New(rand.NewSource(5)))
		require.NoError(t, err)
		assertPerfect(t, lab)
	}
}
