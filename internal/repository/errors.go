// Package repository wraps all database access behind interfaces so the
// service layer can be exercised without a live MySQL connection. Lookup
// methods return (nil, nil) when no row matches; callers that treat absence
// as a failure translate that into ErrNotFound.
package repository

import "errors"

// ErrNotFound is returned when an update targets a row that does not exist,
// so handlers can answer 404 instead of silently doing nothing.
var ErrNotFound = errors.New("record not found")
