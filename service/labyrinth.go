package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	dmn "github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/beka-birhanu/labyrinth-api/labyrinth"
	"github.com/beka-birhanu/labyrinth-api/service/i"
)

const (
	defaultWidth        = 5
	defaultHeight       = 5
	defaultMaxDimension = 50
)

var (
	ErrDimensionTooLarge  = errors.New("labyrinth dimension too large")
	ErrCounterUnavailable = errors.New("labyrinth id counter unavailable")
	ErrMissingDependency  = errors.New("missing dependency")
)

// Options configures a LabyrinthService. Zero values select the defaults.
type Options struct {
	Width        int              // Width used when a request leaves it unset.
	Height       int              // Height used when a request leaves it unset.
	MaxDimension int              // Upper bound for both width and height.
	Algorithm    string           // Generator used when a request leaves it unset.
	Highlight    *labyrinth.Coord // Highlighted cell, (0, 0) when nil.
}

// LabyrinthService generates labyrinths and numbers them.
type LabyrinthService struct {
	counter   i.Counter
	logger    i.Logger
	algorithm labyrinth.Algorithm
	opts      *Options
}

// NewLabyrinthService creates a LabyrinthService backed by the given id counter.
func NewLabyrinthService(counter i.Counter, logger i.Logger, opts *Options) (i.LabyrinthGenerator, error) {
	if counter == nil || logger == nil {
		return nil, fmt.Errorf("%w: counter and logger are required", ErrMissingDependency)
	}

	if opts == nil {
		opts = &Options{}
	}

	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}

	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}

	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}

	if opts.Highlight == nil {
		opts.Highlight = &labyrinth.Coord{X: 0, Y: 0}
	}

	algorithm, err := labyrinth.ParseAlgorithm(opts.Algorithm)
	if err != nil {
		return nil, err
	}

	return &LabyrinthService{
		counter:   counter,
		logger:    logger,
		algorithm: algorithm,
		opts:      opts,
	}, nil
}

// Generate implements i.LabyrinthGenerator.
func (s *LabyrinthService) Generate(ctx context.Context, req dmn.GenerateRequest) (*dmn.Snapshot, error) {
	width, height := req.Width, req.Height
	if width == 0 {
		width = s.opts.Width
	}
	if height == 0 {
		height = s.opts.Height
	}

	if max(width, height) > s.opts.MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrDimensionTooLarge, width, height, s.opts.MaxDimension)
	}

	algorithm := s.algorithm
	if req.Algorithm != "" {
		var err error
		if algorithm, err = labyrinth.ParseAlgorithm(req.Algorithm); err != nil {
			return nil, err
		}
	}

	style, err := labyrinth.ParseStyle(req.Style)
	if err != nil {
		return nil, err
	}

	rnd := labyrinth.DefaultSource()
	if req.Seed != nil {
		rnd = rand.New(rand.NewSource(*req.Seed))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lab, err := algorithm.Generate(width, height, rnd)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Rejected labyrinth request: %s", err))
		return nil, err
	}

	id, err := s.counter.Next(ctx)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to obtain labyrinth id: %s", err))
		return nil, fmt.Errorf("%w: %w", ErrCounterUnavailable, err)
	}

	highlight := s.opts.Highlight
	if req.Highlight != nil {
		highlight = req.Highlight
	}

	s.logger.Info(fmt.Sprintf("Generated labyrinth: ID=%d Size=%dx%d Algorithm=%s", id, width, height, algorithm))
	return &dmn.Snapshot{
		ID:        id,
		Width:     width,
		Height:    height,
		Cells:     lab.CellsData(),
		Algorithm: algorithm,
		Text:      style.Render(lab, highlight),
	}, nil
}
