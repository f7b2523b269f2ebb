package factory

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ideaforge/ideaforge/server/internal/config"
	"github.com/ideaforge/ideaforge/server/internal/storage"
	"github.com/ideaforge/ideaforge/server/internal/storage/postgres"
	"github.com/ideaforge/ideaforge/server/internal/storage/sqlite"
)

// NewStorage builds the storage backend selected by configuration.
func NewStorage(cfg *config.Config, log zerolog.Logger) (storage.Storage, error) {
	switch cfg.DBDriver {
	case "sqlite":
		log.Info().Str("path", cfg.SQLitePath).Msg("using sqlite storage")
		return sqlite.NewSqliteStorage(cfg.SQLitePath)
	case "postgres":
		log.Info().Msg("using postgres storage")
		return postgres.NewPostgresStorage(cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("unsupported db driver: %s", cfg.DBDriver)
	}
}
