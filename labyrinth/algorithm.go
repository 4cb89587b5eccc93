package labyrinth

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownAlgorithm = errors.New("unknown generation algorithm")

// Algorithm names a labyrinth generator.
type Algorithm string

const (
	Frontier Algorithm = "frontier"
	Wilson   Algorithm = "wilson"

	DefaultAlgorithm = Frontier
)

// ParseAlgorithm resolves an algorithm name. An empty name selects DefaultAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(name))); a {
	case "":
		return DefaultAlgorithm, nil
	case Frontier, Wilson:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Generate runs the named generator.
func (a Algorithm) Generate(width, height int, rnd RandSource) (*Labyrinth, error) {
	switch a {
	case Frontier:
		return Generate(width, height, rnd)
	case Wilson:
		return GenerateWilson(width, height, rnd)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
	}
}
