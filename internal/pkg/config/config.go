package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
)

// InitConfig loads configPath into the environment when running locally and
// then builds the config from environment variables
func InitConfig(configPath string) *models.Config {
	if GetEnv("APP_ENV", "local") == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "driver-service")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 2)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	// Routing config
	configs.Routing.FuelCostPerKm = GetEnvAsFloat("ROUTING_FUEL_COST_PER_KM", 0.8)
	configs.Routing.BaselineFactor = GetEnvAsFloat("ROUTING_BASELINE_FACTOR", 1.3)
	configs.Routing.MinutesPerKm = GetEnvAsFloat("ROUTING_MINUTES_PER_KM", 2)
	configs.Routing.ActiveRouteTTLHours = GetEnvAsInt("ROUTING_ACTIVE_ROUTE_TTL_HOURS", 0)

	// Trips config
	configs.Trips.SearchRadiusKm = GetEnvAsFloat("TRIPS_SEARCH_RADIUS_KM", 25)
	configs.Trips.GeohashPrecision = uint(GetEnvAsInt("TRIPS_GEOHASH_PRECISION", 4))
	configs.Trips.FeedLimit = GetEnvAsInt("TRIPS_FEED_LIMIT", 50)

	// Store config
	configs.Store.UseMemory = GetEnvAsBool("USE_MEMORY_STORE", false)

	return configs
}

// GetEnv returns the variable or defaultValue when unset or empty
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
