package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-currency-converter/internal/config"
	"github.com/MKhiriev/go-currency-converter/internal/logger"
)

// MemoryDSN selects the in-memory store instead of a SQLite file.
const MemoryDSN = ":memory:"

// ClientStorages groups all client-side stores into a single value that can
// be passed to the service layer.
type ClientStorages struct {
	// Session holds the persisted token and username.
	Session KeyValueStore

	db *DB
}

// NewClientStorages initialises the client storage layer. For a file DSN it
//  1. opens (creating if needed) the SQLite database at cfg.DB.DSN,
//  2. runs pending schema migrations via [DB.Migrate],
//  3. wires a SQLite-backed [KeyValueStore].
//
// [MemoryDSN] skips the database entirely.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("dsn", cfg.DB.DSN).Msg("creating new storages...")

	if cfg.DB.DSN == MemoryDSN {
		return &ClientStorages{Session: NewMemoryKeyValueStore()}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Session: NewSQLiteKeyValueStore(db, log),
		db:      db,
	}, nil
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
