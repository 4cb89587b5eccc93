package labyrinthapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beka-birhanu/labyrinth-api/api"
	api_i "github.com/beka-birhanu/labyrinth-api/api/i"
	dmn "github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/beka-birhanu/labyrinth-api/infrastruture/counter"
	logger "github.com/beka-birhanu/labyrinth-api/infrastruture/log"
	"github.com/beka-birhanu/labyrinth-api/labyrinth"
	"github.com/beka-birhanu/labyrinth-api/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenGenerator struct{ err error }

func (b brokenGenerator) Generate(context.Context, dmn.GenerateRequest) (*dmn.Snapshot, error) {
	return nil, b.err
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l, err := logger.New("TEST", "", io.Discard)
	require.NoError(t, err)
	svc, err := service.NewLabyrinthService(counter.NewMemoryCounter(), l, &service.Options{MaxDimension: 30})
	require.NoError(t, err)

	return api.NewRouter(api.Config{
		BaseURL:     "/api",
		Controllers: []api_i.Controller{NewLabyrinthController(svc)},
	}).Handler()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) LabyrinthResponse {
	t.Helper()
	var resp LabyrinthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestLabyrinthController(t *testing.T) {
	t.Run("legacy route serves the default labyrinth", func(t *testing.T) {
		h := newTestHandler(t)
		w := get(t, h, "/get-labyrinth")
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode(t, w)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, 5, resp.Width)
		assert.Equal(t, 5, resp.Height)
		assert.Len(t, resp.Cells, 25)
		assert.Equal(t, "success", resp.Status)
		assert.Equal(t, "frontier", resp.Algorithm)
		assert.Contains(t, resp.Test, "**")

		for _, c := range resp.Cells {
			assert.True(t, c >= 0 && c <= 15)
		}

		second := decode(t, get(t, h, "/get-labyrinth"))
		assert.Equal(t, int64(2), second.ID)
	})

	t.Run("versioned route honours the query", func(t *testing.T) {
		h := newTestHandler(t)
		first := decode(t, get(t, h, "/api/v1/labyrinth?width=6&height=4&seed=12&algorithm=wilson&x=5&y=3"))
		second := decode(t, get(t, h, "/api/v1/labyrinth?width=6&height=4&seed=12&algorithm=wilson&x=5&y=3"))

		assert.Equal(t, 6, first.Width)
		assert.Equal(t, 4, first.Height)
		assert.Equal(t, "wilson", first.Algorithm)
		assert.Equal(t, first.Cells, second.Cells)

		lab, err := labyrinth.FromCells(6, 4, first.Cells)
		require.NoError(t, err)
		assert.Equal(t, labyrinth.Render(lab, &labyrinth.Coord{X: 5, Y: 3}), first.Test)
	})

	t.Run("render returns plain text", func(t *testing.T) {
		h := newTestHandler(t)
		w := get(t, h, "/api/v1/labyrinth/render?width=3&height=2&seed=4")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
		assert.Contains(t, w.Body.String(), "**")

		ascii := get(t, h, "/api/v1/labyrinth/render?width=3&height=2&seed=4&style=ascii")
		require.Equal(t, http.StatusOK, ascii.Code)
		assert.Contains(t, ascii.Body.String(), "+---+")
	})

	t.Run("bad requests", func(t *testing.T) {
		h := newTestHandler(t)
		for _, target := range []string{
			"/api/v1/labyrinth?width=abc",
			"/api/v1/labyrinth?width=-2",
			"/api/v1/labyrinth?width=31",
			"/api/v1/labyrinth?algorithm=kruskal",
			"/api/v1/labyrinth?x=1",
			"/api/v1/labyrinth/render?style=svg",
		} {
			w := get(t, h, target)
			assert.Equal(t, http.StatusBadRequest, w.Code, target)
			assert.Contains(t, w.Body.String(), "error", target)
		}
	})

	t.Run("liveness probe", func(t *testing.T) {
		h := newTestHandler(t)
		for _, target := range []string{"/test", "/api/v1/test"} {
			w := get(t, h, target)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"test":"this is test"}`, w.Body.String())
		}
	})
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(labyrinth.ErrInvalidDimensions))
	assert.Equal(t, http.StatusBadRequest, statusFor(service.ErrDimensionTooLarge))
	assert.Equal(t, http.StatusServiceUnavailable, statusFor(context.DeadlineExceeded))
	assert.Equal(t, http.StatusInternalServerError, statusFor(service.ErrCounterUnavailable))

	gin.SetMode(gin.TestMode)
	h := api.NewRouter(api.Config{
		BaseURL:     "/api",
		Controllers: []api_i.Controller{NewLabyrinthController(brokenGenerator{err: errors.New("boom")})},
	}).Handler()
	assert.Equal(t, http.StatusInternalServerError, get(t, h, "/get-labyrinth").Code)
}
