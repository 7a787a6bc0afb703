// internal/dashboard/errors.go
package dashboard

import (
	"errors"
	"fmt"
)

// ErrScopesDenied means the warehouse answered the scope request but the
// session lacks at least one required read scope. This renders as the
// access-denied screen, not as a transient failure.
var ErrScopesDenied = errors.New("required warehouse scopes not granted")

// AuthError wraps a failure to complete the scope request itself, as
// opposed to a denial.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authorization request failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// QueryError wraps a failed warehouse query with the label of the query
// that failed, so one failing query out of a concurrent pair stays
// attributable.
type QueryError struct {
	Label string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s query failed: %v", e.Label, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
