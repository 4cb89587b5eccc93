package labyrinth

import "math/rand"

// RandSource supplies uniform random integers in [0, n). *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

type globalSource struct{}

func (globalSource) Intn(n int) int {
	return rand.Intn(n)
}

// DefaultSource returns a RandSource backed by the process-wide math/rand
// generator. It is safe for concurrent use.
func DefaultSource() RandSource {
	return globalSource{}
}

// candidate is a possible growth step: target can join the tree through source.
type candidate struct {
	target int
	source int
}

// frontierGenerator holds the state of one Generate call.
type frontierGenerator struct {
	lab        *Labyrinth
	rnd        RandSource
	free       []bool
	candidates []candidate
}

// Generate builds a perfect labyrinth by randomized spanning tree growth.
//
// Starting from a random root, it repeatedly picks a random candidate edge
// between the tree and a free cell, attaches that cell and opens the wall
// between the two. Every candidate pointing at the attached cell is discarded,
// which costs O(k) in the current candidate count. Several candidates may
// share one target; this raises that target's chance of being picked next
// and is part of the algorithm.
func Generate(width, height int, rnd RandSource) (*Labyrinth, error) {
	lab, err := Create(width, height, NewCell(int(WallAll)))
	if err != nil {
		return nil, err
	}
	if rnd == nil {
		rnd = DefaultSource()
	}

	g := &frontierGenerator{
		lab:  lab,
		rnd:  rnd,
		free: make([]bool, len(lab.cells)),
	}
	for i := range g.free {
		g.free[i] = true
	}

	root := rnd.Intn(len(g.free))
	g.free[root] = false
	g.addFreeNeighbours(root)

	for len(g.candidates) > 0 {
		picked := g.candidates[rnd.Intn(len(g.candidates))]
		g.dropCandidates(picked.target)
		g.free[picked.target] = false
		g.addFreeNeighbours(picked.target)
		lab.openWall(picked.target, picked.source)
	}

	return lab, nil
}

// addFreeNeighbours queues every free neighbour of idx as a candidate reachable from idx.
func (g *frontierGenerator) addFreeNeighbours(idx int) {
	for _, n := range g.lab.neighbours(idx) {
		if g.free[n] {
			g.candidates = append(g.candidates, candidate{target: n, source: idx})
		}
	}
}

// dropCandidates removes all candidates with the given target, keeping the order of the rest.
func (g *frontierGenerator) dropCandidates(target int) {
	kept := g.candidates[:0]
	for _, c := range g.candidates {
		if c.target != target {
			kept = append(kept, c)
		}
	}
	g.candidates = kept
}
