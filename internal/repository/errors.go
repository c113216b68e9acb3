// Package repository implements *sql.DB-backed access to the service's
// four tables. Sentinel errors defined here let handlers map failure
// modes to HTTP statuses without inspecting driver errors themselves.
package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a lookup matches no row. Handlers
// translate this into an HTTP 404 (or, for credentials, a 401).
var ErrNotFound = errors.New("not found")

// isDuplicate reports whether err is a MySQL duplicate-key violation
// (error 1062). Intake treats it as "another request inserted this row
// first" and re-selects instead of failing.
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
