package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMongo = "mongo"
	StoreMySQL = "mysql"
)

type Config struct {
	AppPort     string
	StoreDriver string

	MongoURI             string
	MongoDBName          string
	MongoTasksCollection string
	MongoUsersCollection string

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	DbParams   string

	DbMaxOpenConns    int
	DbMaxIdleConns    int
	DbConnMaxLifetime time.Duration

	LogFile  string
	LogLevel string

	TrustedProxies  []string
	ShutdownTimeout time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:              getEnv("APP_PORT", "8080"),
		StoreDriver:          strings.ToLower(getEnv("STORE_DRIVER", StoreMongo)),
		MongoURI:             getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:          getEnv("MONGO_DB_NAME", "task_manager"),
		MongoTasksCollection: getEnv("MONGO_TASKS_COLLECTION", "tasks"),
		MongoUsersCollection: getEnv("MONGO_USERS_COLLECTION", "users"),
		DbHost:               getEnv("MYSQL_HOST", "db"),
		DbPort:               getEnv("MYSQL_PORT", "3306"),
		DbUser:               getEnv("MYSQL_USER", "task_manager"),
		DbPassword:           getEnv("MYSQL_PASSWORD", "task_manager"),
		DbName:               getEnv("MYSQL_DATABASE", "task_manager"),
		DbParams:             getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		DbMaxOpenConns:       getInt("MYSQL_MAX_OPEN_CONNS", 10),
		DbMaxIdleConns:       getInt("MYSQL_MAX_IDLE_CONNS", 5),
		DbConnMaxLifetime:    getDuration("MYSQL_CONN_MAX_LIFETIME", 5*time.Minute),
		LogFile:              os.Getenv("LOG_FILE"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		TrustedProxies:       parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
		ShutdownTimeout:      getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// Validate reports settings the application cannot start with.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreMongo, StoreMySQL:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
