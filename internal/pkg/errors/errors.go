package errors

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalid      = errors.New("invalid")
	ErrConflict     = errors.New("conflict")
)

// DatabaseError wraps a storage-layer failure so raw driver messages never
// reach the client unless the debug flag is set.
type DatabaseError struct {
	Err error
}

func (e *DatabaseError) Error() string {
	return "database error: " + e.Err.Error()
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

func Database(err error) error {
	if err == nil {
		return nil
	}
	return &DatabaseError{Err: err}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

func IsDatabase(err error) bool {
	var dbErr *DatabaseError
	return errors.As(err, &dbErr)
}
