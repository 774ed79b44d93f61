// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mmynk/loofinder/internal/models"
)

// Session snapshot backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Session  SessionConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Location LocationConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port int
}

// SessionConfig selects where the logged-in identity is persisted.
type SessionConfig struct {
	Backend string
	DBPath  string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AuthConfig holds token signing configuration
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// LocationConfig describes the device location source. A nil Position means
// the location is unavailable, as if permission had been denied.
type LocationConfig struct {
	Position *models.Coordinate
	Timeout  time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvAsInt("PORT", 8080),
		},
		Session: SessionConfig{
			Backend: strings.ToLower(getEnv("SESSION_BACKEND", BackendSQLite)),
			DBPath:  getEnv("DB_PATH", "./data/session.db"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),
			TokenTTL:  getEnvAsDuration("TOKEN_TTL", 24*time.Hour),
		},
		Location: LocationConfig{
			Timeout: getEnvAsDuration("LOCATION_TIMEOUT", 5*time.Second),
		},
	}

	switch cfg.Session.Backend {
	case BackendSQLite, BackendRedis, BackendMemory:
	default:
		return nil, fmt.Errorf("unknown SESSION_BACKEND %q", cfg.Session.Backend)
	}

	pos, err := devicePosition()
	if err != nil {
		return nil, err
	}
	cfg.Location.Position = pos

	return cfg, nil
}

// Addr returns the listen address
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func devicePosition() (*models.Coordinate, error) {
	lat, lng := os.Getenv("USER_LAT"), os.Getenv("USER_LNG")
	if lat == "" && lng == "" {
		return nil, nil
	}
	if lat == "" || lng == "" {
		return nil, fmt.Errorf("USER_LAT and USER_LNG must be set together")
	}

	latVal, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid USER_LAT: %w", err)
	}
	lngVal, err := strconv.ParseFloat(lng, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid USER_LNG: %w", err)
	}

	pos := models.Coordinate{Lat: latVal, Lng: lngVal}
	if !pos.Valid() {
		return nil, fmt.Errorf("device position %v out of range", pos)
	}
	return &pos, nil
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

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
