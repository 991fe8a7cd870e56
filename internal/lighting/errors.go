// Package lighting implements the illuminance and recommendation core:
// required-lux derivation per room type, fixture aggregation into
// achieved lux, the fixture efficiency score and the budget-tiered
// recommendation ranking.  Everything in this package is a pure,
// synchronous computation over caller-supplied values; persistence and
// transport live elsewhere.
package lighting

import "fmt"

// ValidationError reports a field that failed room validation.  It is
// returned by Validate and must be surfaced to the caller; handlers
// translate it into an HTTP 400 response naming the offending field.
type ValidationError struct {
	Field   string // name of the offending field
	Message string // human readable description
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
