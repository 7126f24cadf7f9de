package config

import (
	"errors"  // Validation errors
	"fmt"     // DSN formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // Duration suffix handling
	"time"    // Durations

	"github.com/joho/godotenv"   // For loading .env files
	"github.com/sirupsen/logrus" // Logging of ignored values
)

// Config holds the application configuration
type Config struct {
	AppPort           string        // Application port
	DBUser            string        // Database user
	DBPassword        string        // Database password
	DBHost            string        // Database host
	DBPort            string        // Database port
	DBName            string        // Database name
	DBMaxOpenConns    int           // Pool size
	DBMaxIdleConns    int           // Idle connections kept
	DBConnMaxLifetime time.Duration // Connection recycle interval
	JWTSecret         string        // JWT secret key
	JWTExpiresIn      time.Duration // Session token lifetime
	RedisAddr         string        // Redis server address, empty disables caching
	RedisPass         string        // Redis password
	RedisDB           int           // Redis database number
	RequestTimeout    time.Duration // Per-request deadline
	CookieSecure      bool          // Secure flag on the session cookie
	IsProd            bool          // Is production environment
	LogLevel          string        // Logrus level name
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	isProd := os.Getenv("IS_PROD") == "true"
	return &Config{
		AppPort:           getEnv("APP_PORT", "8080"),                              // Application port
		DBUser:            os.Getenv("DB_USER"),                                    // Database user
		DBPassword:        os.Getenv("DB_PASSWORD"),                                // Database password
		DBHost:            getEnv("DB_HOST", "127.0.0.1"),                          // Database host
		DBPort:            getEnv("DB_PORT", "3306"),                               // Database port
		DBName:            os.Getenv("DB_NAME"),                                    // Database name
		DBMaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),                         // Pool size
		DBMaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),                          // Idle connections
		DBConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),      // Connection lifetime
		JWTSecret:         os.Getenv("JWT_SECRET"),                                 // JWT secret key
		JWTExpiresIn:      getDuration("JWT_EXPIRES_IN", 7*24*time.Hour),           // Token lifetime
		RedisAddr:         os.Getenv("REDIS_ADDR"),                                 // Redis server address
		RedisPass:         os.Getenv("REDIS_PASS"),                                 // Redis password
		RedisDB:           getInt("REDIS_DB", 0),                                   // Redis database number
		RequestTimeout:    getDuration("REQUEST_TIMEOUT", 5*time.Second),           // Request deadline
		CookieSecure:      getBool("COOKIE_SECURE", isProd),                        // Secure cookies in production
		IsProd:            isProd,                                                  // Is production environment
		LogLevel:          getEnv("LOG_LEVEL", "info"),                             // Log level
	}
}

// DSN builds the MySQL data source name
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// Validate rejects configurations the server must not start with
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		if c.IsProd {
			return errors.New("JWT_SECRET must be set in production")
		}
		logrus.Warn("JWT_SECRET not set, using an insecure development secret")
		c.JWTSecret = "dev-secret-change-me"
	}
	if c.DBName == "" {
		return errors.New("DB_NAME must be set")
	}
	return nil
}

// ParseDuration accepts Go durations and a day suffix such as "7d"
func ParseDuration(s string) (time.Duration, error) {
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, fmt.Errorf("invalid day duration %q: %w", s, err)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	return time.ParseDuration(s)
}

// getEnv returns the variable or a fallback when unset
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "value": v}).Warn("Invalid integer, using default")
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := ParseDuration(v)
	if err != nil || d <= 0 {
		logrus.WithFields(logrus.Fields{"key": key, "value": v}).Warn("Invalid duration, using default")
		return fallback
	}
	return d
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
