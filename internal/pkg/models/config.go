package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Logger   LoggerConfig
	Routing  RoutingConfig
	Trips    TripsConfig
	Store    StoreConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout int // seconds
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// LoggerConfig contains log level and output settings
type LoggerConfig struct {
	Level    string
	FilePath string
}

// RoutingConfig tunes route metric estimation
type RoutingConfig struct {
	FuelCostPerKm       float64 // currency units per km
	BaselineFactor      float64 // unoptimized distance multiplier
	MinutesPerKm        float64
	ActiveRouteTTLHours int // 0 keeps active routes until cleared
}

// TripsConfig tunes the open trips feed
type TripsConfig struct {
	SearchRadiusKm   float64
	GeohashPrecision uint // longest prefix the feed prefilter may use
	FeedLimit        int  // 0 leaves the feed uncapped
}

// StoreConfig selects the trip store backend
type StoreConfig struct {
	UseMemory bool
}
