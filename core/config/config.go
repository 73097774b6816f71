package config

import (
	"community-events-api/core/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads .env (when present) and binds environment variables with defaults.
func Load() {
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, reading from environment")
	}

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "7070")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", true)

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_NAME", "community_events")
	viper.SetDefault("MIGRATIONS_DIR", "migrations")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
}

func Get(key string) string {
	return viper.GetString(key)
}

// GetSafe returns the value for key or aborts startup when it is missing.
func GetSafe(key string) string {
	value := viper.GetString(key)
	if value == "" {
		logger.Fatal("Missing required config key", "key", key)
	}
	return value
}

func GetInt(key string) int {
	return viper.GetInt(key)
}

func GetBool(key string) bool {
	return viper.GetBool(key)
}
