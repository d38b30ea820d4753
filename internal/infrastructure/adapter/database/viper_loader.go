package database

import (
	"fmt"

	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/config"
)

// CreateConfigFromAppConfig adapts the application configuration to database configuration
func CreateConfigFromAppConfig(conf *config.Config) *Config {
	src := conf.Database
	dbConf := DefaultConfig(src.Driver)

	dbConf.Host = src.Host
	dbConf.Username = src.Username
	dbConf.Password = src.Password
	dbConf.Database = src.Database
	dbConf.Path = src.Path

	if p := ParsePort(src.Port); p > 0 {
		dbConf.Port = p
	}
	if src.SSLMode != "" {
		dbConf.SSLMode = src.SSLMode
	}
	if src.MaxOpenConns > 0 {
		dbConf.MaxOpenConns = src.MaxOpenConns
	}
	if src.MaxIdleConns > 0 {
		dbConf.MaxIdleConns = src.MaxIdleConns
	}
	if src.ConnMaxLifetime > 0 {
		dbConf.ConnMaxLifetime = src.ConnMaxLifetime
	}
	if src.ConnMaxIdleTime > 0 {
		dbConf.ConnMaxIdleTime = src.ConnMaxIdleTime
	}
	if src.QueryTimeout > 0 {
		dbConf.QueryTimeout = src.QueryTimeout
	}
	if src.RetryAttempts >= 0 {
		dbConf.RetryAttempts = src.RetryAttempts
	}
	if src.RetryDelay > 0 {
		dbConf.RetryDelay = src.RetryDelay
	}
	if src.LogLevel != "" {
		dbConf.LogLevel = src.LogLevel
	}

	return dbConf
}

// ParsePort converts a port string to an int, 0 when unset or invalid
func ParsePort(port string) int {
	var p int
	_, err := fmt.Sscanf(port, "%d", &p)
	if err != nil || p <= 0 || p > 65535 {
		return 0
	}
	return p
}
