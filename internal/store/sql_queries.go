// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "kv_store"
	kvNameColumn  = "name"
	kvValueColumn = "value"
)

// sqlite uses "?" placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetValueQuery(key string) (string, []any, error) {
	return builder.
		Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvNameColumn: key}).
		ToSql()
}

func buildSetValueQuery(key, value string) (string, []any, error) {
	return builder.
		Insert(kvTable).
		Columns(kvNameColumn, kvValueColumn).
		Values(key, value).
		Suffix("ON CONFLICT(" + kvNameColumn + ") DO UPDATE SET " + kvValueColumn + " = excluded." + kvValueColumn).
		ToSql()
}

func buildRemoveValueQuery(key string) (string, []any, error) {
	return builder.
		Delete(kvTable).
		Where(sq.Eq{kvNameColumn: key}).
		ToSql()
}
