package store

import (
	"errors"
	"fmt"
)

// ErrStorage matches every *StorageError via errors.Is.
var ErrStorage = errors.New("storage failure")

// Sentinel errors wrapped by *StorageError. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrProductNotSaved is returned when an INSERT completes without error
	// but no row was persisted.
	ErrProductNotSaved = errors.New("product was not saved")

	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan product row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan product rows")

	// ErrPingingDB is returned when the database does not answer a ping.
	ErrPingingDB = errors.New("failed to ping database")

	// ErrUnsupportedDriver is returned for drivers other than postgres and sqlite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrUnsupportedEngine is returned for engines other than sql and orm.
	ErrUnsupportedEngine = errors.New("unsupported storage engine")
)

// StorageError describes a failed call to the storage collaborator.
// Retryable is informational; the service never retries.
type StorageError struct {
	Op        string
	Err       error
	Retryable bool
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// newStorageError wraps cause into sentinel and classifies it.
func newStorageError(op string, sentinel, cause error, classifier ErrorClassificator) *StorageError {
	err := sentinel
	if cause != nil {
		err = fmt.Errorf("%w: %w", sentinel, cause)
	}

	retryable := false
	if classifier != nil {
		retryable = classifier.Classify(cause) == Retryable
	}

	return &StorageError{Op: op, Err: err, Retryable: retryable}
}
