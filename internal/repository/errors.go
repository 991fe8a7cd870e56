// Package repository contains data access logic separated from HTTP
// handlers.  This file defines error values reused across multiple
// repositories so higher layers can distinguish failure scenarios.
// Ownership misses deliberately surface as the entity's not-found
// sentinel rather than a forbidden error, so scoped queries never leak
// whether another user's resource exists.
package repository

import "errors"

// ErrConflict is returned when a delete or update cannot proceed
// because of conflicting state, such as removing a catalog fixture that
// still has installations referencing it.  Handlers should translate
// this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")
