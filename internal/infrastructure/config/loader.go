package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override, e.g. AP_DATABASE_HOST
const EnvPrefix = "AP"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
	"../../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// envBindings are the keys that can be overridden from the environment.
// Nested keys map to AP_<SECTION>_<KEY>, e.g. database.sslMode -> AP_DATABASE_SSLMODE.
var envBindings = []string{
	"server.host",
	"server.port",
	"database.driver",
	"database.host",
	"database.port",
	"database.username",
	"database.password",
	"database.database",
	"database.path",
	"database.sslMode",
	"database.maxOpenConns",
	"database.maxIdleConns",
	"database.retryAttempts",
	"logger.level",
	"logger.format",
	"ingestion.requestTimeoutMs",
	"ingestion.seedDefaultUsers",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// a missing .env is normal outside local development
	_ = loadDotEnvFile()

	return LoadConfigFor(getEnvironment(), ConfigPaths...)
}

// LoadConfigFor loads the named environment's YAML file from the given paths
// and applies environment overrides
func LoadConfigFor(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envBindings {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Environment = env

	return &config, nil
}

func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("could not load %s: %w", path, err)
		}
		return nil
	}
	return errors.New("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", "15s")
	v.SetDefault("server.writeTimeout", "15s")
	v.SetDefault("server.idleTimeout", "60s")
	v.SetDefault("server.readHeaderTimeout", "10s")
	v.SetDefault("server.shutdownTimeout", "10s")
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "alerts.db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", "30m")
	v.SetDefault("database.connMaxIdleTime", "15m")
	v.SetDefault("database.queryTimeout", "5s")
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", "1s")
	v.SetDefault("database.logLevel", "warn")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("ingestion.requestTimeoutMs", 5000)
	v.SetDefault("ingestion.seedDefaultUsers", true)
	v.SetDefault("ingestion.historyLimit", 10)
}

// getEnvironment determines the environment from AP_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}
