package store

import "errors"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when an insert or update would claim an
// email address that another account already owns.
var ErrDuplicateEmail = errors.New("email already exists")
