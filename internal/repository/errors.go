package repository

import "errors"

// ErrNotFound is returned when a lookup by id matches nothing, regardless of the store driver.
var ErrNotFound = errors.New("record not found")
