package api

import (
	"net/http"

	"github.com/beka-birhanu/labyrinth-api/api/i"
	"github.com/gin-gonic/gin"
)

// Router manages the HTTP server and its dependencies.
type Router struct {
	addr        string
	baseURL     string
	staticDir   string
	controllers []i.Controller
	middlewares []gin.HandlerFunc
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for versioned API routes
	StaticDir   string // Directory with the browser UI, served at / when set
	Controllers []i.Controller
	Middlewares []gin.HandlerFunc
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		staticDir:   config.StaticDir,
		controllers: config.Controllers,
		middlewares: config.Middlewares,
	}
}

// Handler builds the gin engine with every route registered.
//
// Routes are grouped as:
// - Versioned routes under baseURL + "/v1".
// - Root routes kept for clients of the first server version.
// - Static files from staticDir for any other path, when configured.
func (r *Router) Handler() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(r.middlewares...)

	versioned := router.Group(r.baseURL + "/v1")
	{
		for _, c := range r.controllers {
			c.RegisterVersioned(versioned)
		}
	}

	root := router.Group("/")
	{
		for _, c := range r.controllers {
			c.RegisterRoot(root)
		}
	}

	if r.staticDir != "" {
		router.NoRoute(gin.WrapH(http.FileServer(http.Dir(r.staticDir))))
	}

	return router
}

// Run starts the HTTP server.
func (r *Router) Run() error {
	return r.Handler().Run(r.addr)
}
