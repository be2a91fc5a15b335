package database

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/rllL1/portfolio/config"
)

// GetConnectionPoolSettings returns connection pool settings based on environment.
// The hosted database pooler caps connections per project, so production stays small.
func GetConnectionPoolSettings() (maxOpen, maxIdle int, maxLifetime time.Duration) {
	environment := os.Getenv("ENVIRONMENT")

	if environment == "test" || os.Getenv("INTEGRATION_TESTS") == "true" {
		return 5, 2, 2 * time.Minute
	}

	return 15, 5, 20 * time.Minute
}

// GetDSN returns the connection string, preferring DATABASE_URL when set
func GetDSN(cfg *config.DatabaseConfig) string {
	if cfg.URL != "" {
		return cfg.URL
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:     "/" + cfg.DBName,
		RawQuery: url.Values{"sslmode": []string{cfg.SSLMode}}.Encode(),
	}
	return u.String()
}

// GetListenerDSN returns the DSN for LISTEN connections.
// Transaction poolers (port 6543) drop LISTEN registrations, so the session port is used instead.
func GetListenerDSN(cfg *config.DatabaseConfig) string {
	dsn := GetDSN(cfg)
	u, err := url.Parse(dsn)
	if err != nil || u.Port() != "6543" {
		return dsn
	}
	u.Host = fmt.Sprintf("%s:5432", u.Hostname())
	return u.String()
}

// MaskDSN hides the password for logging
func MaskDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}

// Open connects with driverName (plain or traced postgres), pings and applies pool settings
func Open(driverName, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	maxOpen, maxIdle, maxLifetime := GetConnectionPoolSettings()
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(maxLifetime)
	db.SetConnMaxIdleTime(maxLifetime / 2)

	return db, nil
}
