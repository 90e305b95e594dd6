package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestStorageError(t *testing.T) {
	cause := errors.New("connection reset")
	err := newStorageError("count", ErrExecutingQuery, cause, nil)

	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, cause)
	assert.False(t, err.Retryable)
	assert.Equal(t, "storage count: error executing sql query: connection reset", err.Error())

	var sErr *StorageError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &sErr))
	assert.Equal(t, "count", sErr.Op)
}

func TestStorageError_WithoutCause(t *testing.T) {
	err := newStorageError("insert", ErrProductNotSaved, nil, NewPostgresErrorClassifier())

	assert.ErrorIs(t, err, ErrProductNotSaved)
	assert.False(t, err.Retryable)
	assert.Equal(t, "storage insert: product was not saved", err.Error())
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "check violation", err: pgError(pgerrcode.CheckViolation), want: NonRetryable},
		{name: "undefined table", err: pgError(pgerrcode.UndefinedTable), want: NonRetryable},
		{name: "wrapped retryable", err: fmt.Errorf("ctx: %w", pgError(pgerrcode.ConnectionException)), want: Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("boom")))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}
