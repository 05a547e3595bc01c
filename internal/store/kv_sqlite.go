package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-currency-converter/internal/logger"
)

type sqliteKeyValueStore struct {
	*DB
	logger *logger.Logger
}

// NewSQLiteKeyValueStore returns a [KeyValueStore] over the kv_store table.
// The schema must already be migrated.
func NewSQLiteKeyValueStore(db *DB, log *logger.Logger) KeyValueStore {
	return &sqliteKeyValueStore{DB: db, logger: log}
}

func (s *sqliteKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetValueQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqliteKeyValueStore.Get").
			Str("key", key).
			Msg("failed to query value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteKeyValueStore) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetValueQuery(key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteKeyValueStore.Set").
			Str("key", key).
			Msg("failed to upsert value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKeyValueStore) Remove(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRemoveValueQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteKeyValueStore.Remove").
			Str("key", key).
			Msg("failed to delete value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
