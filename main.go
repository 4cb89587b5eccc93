package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/labyrinth-api/api"
	api_i "github.com/beka-birhanu/labyrinth-api/api/i"
	labyrinthapi "github.com/beka-birhanu/labyrinth-api/api/labyrinth"
	"github.com/beka-birhanu/labyrinth-api/api/middleware"
	"github.com/beka-birhanu/labyrinth-api/config"
	"github.com/beka-birhanu/labyrinth-api/infrastruture/counter"
	logger "github.com/beka-birhanu/labyrinth-api/infrastruture/log"
	"github.com/beka-birhanu/labyrinth-api/service"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Global variables for dependencies
var (
	redisClient         *redis.Client
	idCounter           i.Counter
	labyrinthService    i.LabyrinthGenerator
	labyrinthController api_i.Controller
	router              *api.Router
	appLogger           *logger.Logger
	httpLogger          *logger.Logger
)

func newLogger(prefix, color string) *logger.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	return l
}

func initCounter(ctx context.Context) {
	var err error
	if config.Envs.RedisAddr == "" {
		idCounter = counter.NewMemoryCounter()
		appLogger.Info("In-process labyrinth counter initialized")
		return
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
		DB:       config.Envs.RedisDB,
	})
	if err = redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}

	idCounter, err = counter.NewRedisCounter(redisClient, config.Envs.CounterKey)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating redis counter: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Redis labyrinth counter initialized")
}

func initLabyrinthService() {
	var err error
	labyrinthService, err = service.NewLabyrinthService(idCounter, newLogger("LABYRINTH", config.ColorCyan), &service.Options{
		Width:        config.Envs.LabyrinthWidth,
		Height:       config.Envs.LabyrinthHeight,
		MaxDimension: config.Envs.LabyrinthMaxDim,
		Algorithm:    config.Envs.LabyrinthAlgorithm,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating labyrinth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Labyrinth service initialized")
}

func initLabyrinthController() {
	labyrinthController = labyrinthapi.NewLabyrinthController(labyrinthService)
	appLogger.Info("Labyrinth controller initialized")
}

func initRouter() {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		StaticDir:   config.Envs.StaticDir,
		Controllers: []api_i.Controller{labyrinthController},
		Middlewares: []gin.HandlerFunc{middleware.RequestID(httpLogger)},
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	appLogger = newLogger("APP", config.ColorGreen)
	httpLogger = newLogger("HTTP", config.ColorBlue)

	initCounter(ctx)
	if redisClient != nil {
		defer redisClient.Close()
	}

	initLabyrinthService()
	initLabyrinthController()
	initRouter()

	appLogger.Info(fmt.Sprintf("Labyrinth server starting on %s:%d", config.Envs.HostIP, config.Envs.RESTPort))
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
