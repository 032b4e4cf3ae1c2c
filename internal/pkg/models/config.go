package models

// Config represents application configuration
type Config struct {
	App    AppConfig
	Server ServerConfig
	Redis  RedisConfig
	NSQ    NSQConfig
	Cache  CacheConfig
	Logger LoggerConfig
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
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ producer configuration; an empty address
// disables event publication
type NSQConfig struct {
	Address string
}

// CacheConfig contains list-cache configuration
type CacheConfig struct {
	TTLSeconds int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level string
}
