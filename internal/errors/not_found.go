// Package errors defines the domain error types the CLI inspects.
package errors

import (
	"errors"
	"fmt"
)

// NotFoundError reports that a removal target did not match any book
// in the catalog. The catalog is left unchanged when this is returned.
type NotFoundError struct {
	Title  string
	Author string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("book %q by %q not found in catalog", e.Title, e.Author)
}

// NewNotFoundError creates a NotFoundError for the given book identity.
func NewNotFoundError(title, author string) *NotFoundError {
	return &NotFoundError{Title: title, Author: author}
}

// IsNotFoundError reports whether err is a NotFoundError (even when wrapped).
func IsNotFoundError(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
