// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildGetValueQuery(t *testing.T) {
	query, args, err := buildGetValueQuery("token")
	require.NoError(t, err)

	assert.Equal(t, "SELECT value FROM kv_store WHERE name = ?", query)
	assert.Equal(t, []any{"token"}, args)
}

// Test_buildSetValueQuery checks the sqlite upsert form.
func Test_buildSetValueQuery(t *testing.T) {
	query, args, err := buildSetValueQuery("username", "alice")
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO kv_store (name,value) VALUES (?,?) ON CONFLICT(name) DO UPDATE SET value = excluded.value",
		query)
	assert.Equal(t, []any{"username", "alice"}, args)
}

func Test_buildRemoveValueQuery(t *testing.T) {
	query, args, err := buildRemoveValueQuery("token")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM kv_store WHERE name = ?", query)
	assert.Equal(t, []any{"token"}, args)
}
