package store

import (
	"errors"
	"fmt"
)

// ErrBookNotFound signals that a book id has no metadata record.
var ErrBookNotFound = errors.New("book not found")

// QueryError wraps a store or transport failure. The underlying message is
// preserved and surfaces verbatim in the 500 response body.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
