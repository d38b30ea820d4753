package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/config"
)

func validPostgres() *Config {
	c := DefaultConfig(DriverPostgres)
	c.Host = "localhost"
	c.Username = "alerts"
	c.Password = "secret"
	c.Database = "alerts"
	return c
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"Valid postgres", func(c *Config) {}, ""},
		{"Valid sqlite", func(c *Config) { c.Driver = DriverSQLite; c.Path = "alerts.db"; c.Host = "" }, ""},
		{"Sqlite without path", func(c *Config) { c.Driver = DriverSQLite }, "sqlite path is required"},
		{"Unknown driver", func(c *Config) { c.Driver = "mysql" }, "unsupported database driver: mysql"},
		{"Missing host", func(c *Config) { c.Host = "" }, "database host is required"},
		{"Bad port", func(c *Config) { c.Port = 70000 }, "invalid port number: 70000"},
		{"Bad ssl mode", func(c *Config) { c.SSLMode = "always" }, "invalid SSL mode: always"},
		{"Zero pool", func(c *Config) { c.MaxOpenConns = 0 }, "max open connections must be positive, got: 0"},
		{"Zero query timeout", func(c *Config) { c.QueryTimeout = 0 }, "query timeout must be positive"},
		{"Bad log level", func(c *Config) { c.LogLevel = "trace" }, "invalid log level: trace"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := validPostgres()
			tc.mutate(c)

			err := c.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	assert.Equal(t,
		"host=localhost port=5432 user=alerts password=secret dbname=alerts sslmode=disable",
		validPostgres().DSN())

	c := DefaultConfig(DriverSQLite)
	c.Path = "file:alerts?mode=memory&cache=shared"
	assert.Equal(t, c.Path, c.DSN())
	assert.NotContains(t, validPostgres().Redacted(), "password")
}

func TestCreateConfigFromAppConfig(t *testing.T) {
	app := &config.Config{
		Database: config.DatabaseConfig{
			Driver:        DriverPostgres,
			Host:          "db",
			Port:          "6543",
			Username:      "u",
			Password:      "p",
			Database:      "d",
			MaxOpenConns:  7,
			RetryAttempts: 2,
			RetryDelay:    3 * time.Second,
			LogLevel:      "error",
		},
	}

	c := CreateConfigFromAppConfig(app)

	assert.Equal(t, 6543, c.Port)
	assert.Equal(t, 7, c.MaxOpenConns)
	assert.Equal(t, 2, c.RetryAttempts)
	assert.Equal(t, 3*time.Second, c.RetryDelay)
	assert.Equal(t, "error", c.LogLevel)
	assert.Equal(t, "disable", c.SSLMode)
	assert.NoError(t, c.Validate())
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Equal(t, 0, ParsePort(""))
	assert.Equal(t, 0, ParsePort("abc"))
	assert.Equal(t, 0, ParsePort("99999"))
}
