package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Gateway  GatewayConfig
	Checkout CheckoutConfig
	Review   ReviewConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode + "&prepare_threshold=0"
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// GatewayConfig holds mobile-money gateway configuration
type GatewayConfig struct {
	BaseURL string
	// Client credentials for the OAuth token endpoint.
	ClientID     string
	ClientSecret string
	// TokenExpiryMargin is how long before expiry a cached token is refreshed.
	TokenExpiryMargin time.Duration
	// SimulatedDelay is how long the simulated gateway waits before
	// confirming a charge. Only used when Simulate is true.
	Simulate       bool
	SimulatedDelay time.Duration
}

// CheckoutConfig holds the public checkout link configuration
type CheckoutConfig struct {
	// BaseURL is the public origin checkout links are built on,
	// e.g. https://pay.payeasy.co.mz
	BaseURL string
}

// ReviewConfig holds product review configuration
type ReviewConfig struct {
	// AutoApproveDelay is how long a product stays pending before the
	// review job approves it.
	AutoApproveDelay time.Duration
	// SweepInterval is how often the background jobs poll.
	SweepInterval time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "payeasy"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", "change-this-in-production"),
			AccessExpiry:  getEnvAsDuration("JWT_ACCESS_EXPIRY", 15*time.Minute),
			RefreshExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		Gateway: GatewayConfig{
			BaseURL:           getEnv("GATEWAY_BASE_URL", "https://sandbox.gateway.payeasy.co.mz"),
			ClientID:          getEnv("GATEWAY_CLIENT_ID", ""),
			ClientSecret:      getEnv("GATEWAY_CLIENT_SECRET", ""),
			TokenExpiryMargin: getEnvAsDuration("GATEWAY_TOKEN_EXPIRY_MARGIN", 30*time.Second),
			Simulate:          getEnvAsBool("GATEWAY_SIMULATE", true),
			SimulatedDelay:    getEnvAsDuration("GATEWAY_SIMULATED_DELAY", 5*time.Second),
		},
		Checkout: CheckoutConfig{
			BaseURL: getEnv("CHECKOUT_BASE_URL", "https://pay.payeasy.co.mz"),
		},
		Review: ReviewConfig{
			AutoApproveDelay: getEnvAsDuration("REVIEW_AUTO_APPROVE_DELAY", 2*time.Minute),
			SweepInterval:    getEnvAsDuration("REVIEW_SWEEP_INTERVAL", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
