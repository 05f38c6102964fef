package store

import (
	"database/sql"

	"github.com/narmatov/boardsync/internal/logger"
	"github.com/narmatov/boardsync/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
