package labyrinth

// GenerateWilson builds a perfect labyrinth with Wilson's algorithm: random
// walks from unvisited cells until they hit the tree, keeping only the last
// exit taken from each cell so loops are erased.
//
// Unlike Generate, the walk only ends with probability one, so rnd must be a
// genuinely random source; a constant fake source can walk forever.
func GenerateWilson(width, height int, rnd RandSource) (*Labyrinth, error) {
	lab, err := Create(width, height, NewCell(int(WallAll)))
	if err != nil {
		return nil, err
	}
	if rnd == nil {
		rnd = DefaultSource()
	}

	visited := make([]bool, len(lab.cells))
	visited[rnd.Intn(len(visited))] = true
	visitedCount := 1

	for visitedCount < len(visited) {
		for cell, next := range lab.randomWalk(visited, rnd) {
			lab.openWall(cell, next)
			visited[cell] = true
			visitedCount++
		}
	}

	return lab, nil
}

// randomWalk walks from a random unvisited cell until it steps onto a visited
// one. It returns the last exit taken from every cell on the walk.
func (l *Labyrinth) randomWalk(visited []bool, rnd RandSource) map[int]int {
	exits := make(map[int]int)
	cell := randomUnvisited(visited, rnd)

	for {
		neighbours := l.neighbours(cell)
		next := neighbours[rnd.Intn(len(neighbours))]
		exits[cell] = next
		if visited[next] {
			return exits
		}
		cell = next
	}
}

func randomUnvisited(visited []bool, rnd RandSource) int {
	unvisited := make([]int, 0, len(visited))
	for idx, v := range visited {
		if !v {
			unvisited = append(unvisited, idx)
		}
	}
	return unvisited[rnd.Intn(len(unvisited))]
}
