package labyrinthapi

import (
	"context"
	"errors"
	"net/http"

	dmn "github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/beka-birhanu/labyrinth-api/labyrinth"
	"github.com/beka-birhanu/labyrinth-api/service"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/gin-gonic/gin"
)

const statusSuccess = "success"

var errPartialHighlight = errors.New("x and y must be given together")

// LabyrinthController serves generated labyrinths.
type LabyrinthController struct {
	generator i.LabyrinthGenerator
}

// NewLabyrinthController initializes a LabyrinthController.
func NewLabyrinthController(g i.LabyrinthGenerator) *LabyrinthController {
	return &LabyrinthController{
		generator: g,
	}
}

// RegisterVersioned registers the versioned routes.
func (lc *LabyrinthController) RegisterVersioned(route *gin.RouterGroup) {
	lab := route.Group("/labyrinth")
	{
		lab.GET("", lc.labyrinth)
		lab.GET("/render", lc.render)
	}
	route.GET("/test", lc.test)
}

// RegisterRoot registers the routes of the first server version.
func (lc *LabyrinthController) RegisterRoot(route *gin.RouterGroup) {
	route.GET("/get-labyrinth", lc.labyrinth)
	route.GET("/test", lc.test)
}

// labyrinth generates a labyrinth and returns it as JSON.
func (lc *LabyrinthController) labyrinth(ctx *gin.Context) {
	snap, ok := lc.generate(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, &LabyrinthResponse{
		ID:        snap.ID,
		Width:     snap.Width,
		Height:    snap.Height,
		Cells:     snap.Cells,
		Algorithm: string(snap.Algorithm),
		Test:      snap.Text,
		Status:    statusSuccess,
	})
}

// render generates a labyrinth and returns only its text rendering.
func (lc *LabyrinthController) render(ctx *gin.Context) {
	snap, ok := lc.generate(ctx)
	if !ok {
		return
	}
	ctx.String(http.StatusOK, snap.Text)
}

// test is a liveness probe.
func (lc *LabyrinthController) test(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"test": "this is test"})
}

// generate binds the query, runs the generator and writes error responses.
// It reports false when a response has already been written.
func (lc *LabyrinthController) generate(ctx *gin.Context) (*dmn.Snapshot, bool) {
	var query LabyrinthQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	req := dmn.GenerateRequest{
		Width:     query.Width,
		Height:    query.Height,
		Seed:      query.Seed,
		Algorithm: query.Algorithm,
		Style:     query.Style,
	}

	switch {
	case query.X != nil && query.Y != nil:
		req.Highlight = &labyrinth.Coord{X: *query.X, Y: *query.Y}
	case query.X != nil || query.Y != nil:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errPartialHighlight.Error()})
		return nil, false
	}

	snap, err := lc.generator.Generate(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return nil, false
	}
	return snap, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, labyrinth.ErrInvalidDimensions),
		errors.Is(err, labyrinth.ErrUnknownAlgorithm),
		errors.Is(err, labyrinth.ErrUnknownStyle),
		errors.Is(err, service.ErrDimensionTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
