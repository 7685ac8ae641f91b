package config

import (
	"context"
	"database/sql"

	appconfig "github.com/crucial707/postboard/internal/config"
	"github.com/crucial707/postboard/internal/db"
)

// Opener connects to the postboard database.
type Opener func(ctx context.Context) (*sql.DB, error)

// OpenDB connects with the same environment (and .env file) as the web server.
func OpenDB(ctx context.Context) (*sql.DB, error) {
	cfg := appconfig.Load()
	cfg.DBMaxOpenConns = 2
	cfg.DBMaxIdleConns = 1
	return db.Connect(ctx, cfg)
}

// DatabaseURL returns the migrator URL for the configured database.
func DatabaseURL() string {
	return appconfig.Load().DatabaseURL()
}
