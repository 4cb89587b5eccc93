package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP             string // Host IP for the server
	RESTPort           int    // Port for the REST API
	GinMode            string // Mode for the Gin framework (e.g., release, debug, test)
	StaticDir          string // Directory with the browser UI, empty to disable
	LabyrinthWidth     int    // Width of labyrinths when a request does not set one
	LabyrinthHeight    int    // Height of labyrinths when a request does not set one
	LabyrinthMaxDim    int    // Largest accepted width or height
	LabyrinthAlgorithm string // Generator used when a request does not name one
	RedisAddr          string // Redis address for the id counter, empty for an in-process counter
	RedisPassword      string // Password for Redis
	RedisDB            int    // Redis database number
	CounterKey         string // Redis key holding the last labyrinth id
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:             getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:           getEnvAsIntWithDefault("REST_PORT", 5000),
		GinMode:            getEnvWithDefault("GIN_MODE", "release"),
		StaticDir:          getEnvWithDefault("STATIC_DIR", ""),
		LabyrinthWidth:     getEnvAsIntWithDefault("LABYRINTH_WIDTH", 5),
		LabyrinthHeight:    getEnvAsIntWithDefault("LABYRINTH_HEIGHT", 5),
		LabyrinthMaxDim:    getEnvAsIntWithDefault("LABYRINTH_MAX_DIMENSION", 50),
		LabyrinthAlgorithm: getEnvWithDefault("LABYRINTH_ALGORITHM", "frontier"),
		RedisAddr:          getEnvWithDefault("REDIS_ADDR", ""),
		RedisPassword:      getEnvWithDefault("REDIS_PASSWORD", ""),
		RedisDB:            getEnvAsIntWithDefault("REDIS_DB", 0),
		CounterKey:         getEnvWithDefault("COUNTER_KEY", "labyrinth:counter"),
	}
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer,
// returns the default when it is not set, and logs a fatal error if it cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
