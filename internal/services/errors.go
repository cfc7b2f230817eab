// internal/services/errors.go
package services

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Error taxonomy shared by all services. Handlers translate these into
// HTTP statuses: ErrNotFound -> 404, ErrConflict -> 409, ValidationError
// -> 400, anything else -> 500.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

// ValidationError marks malformed or missing input detected before any
// write reaches the store.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func notFound(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

func conflict(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrConflict)
}

// isDuplicateKey recognizes unique-constraint violations from the store.
// GORM translates them when TranslateError is on; raw pq errors from the
// postgres driver carry SQLSTATE 23505.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
