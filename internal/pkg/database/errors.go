package database

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/metrics"
	"github.com/google/uuid"
)

// ErrStorage marks any failure of the backing store.
var ErrStorage = errors.New("storage unavailable")

// StorageError is a storage failure tagged with the operation that hit it
// and a reference id that is also written to the log.
type StorageError struct {
	Op  string
	Ref string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s failed (ref %s): %v", e.Op, e.Ref, e.Err)
}

func (e *StorageError) Unwrap() []error {
	return []error{ErrStorage, e.Err}
}

// Caption is the heading shown with the error.
func (e *StorageError) Caption() string {
	return "Database error"
}

// NewStorageError tags err as a failure of op, logs it under a fresh
// reference id and counts it.
func NewStorageError(op string, err error) *StorageError {
	ref := uuid.NewString()
	slog.Error("storage operation failed", "operation", op, "ref", ref, "error", err)
	metrics.StorageFailures.WithLabelValues(op).Inc()
	return &StorageError{Op: op, Ref: ref, Err: err}
}
