package repositories

import "errors"

// ErrNotFound is returned by every repository when a well-formed id
// references no stored record. Callers translate it to a 404; it is
// never raised for missing optional fields.
var ErrNotFound = errors.New("record not found")
