package store

import "errors"

// Sentinel errors returned by the key-value stores. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by Get when no value is stored under the key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
