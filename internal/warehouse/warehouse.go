// internal/warehouse/warehouse.go
// Package warehouse provides the dashboard's two upstream capabilities: an
// authorization check for warehouse read scopes and a query runner for the
// fixed analytical SQL texts. The rest of the application only sees the
// Querier and Authorizer interfaces; the SQL client below is one
// implementation.
package warehouse

import (
	"context"
	"strconv"
	"strings"
)

// Row is a single result record keyed by column name. Values are whatever
// the driver produced; use the accessors to read them numerically.
type Row map[string]any

// QueryResult holds the rows returned by one query.
type QueryResult struct {
	Results []Row
}

// ScopeGrant reports whether the session holds every requested read scope.
type ScopeGrant struct {
	HasRequiredScopes bool
}

// Querier runs one fixed SQL text against the warehouse.
type Querier interface {
	Query(ctx context.Context, sqlText string) (*QueryResult, error)
}

// Authorizer verifies the session can read the named warehouse scopes.
type Authorizer interface {
	RequestScopes(ctx context.Context, scopes []string) (ScopeGrant, error)
}

// Float reads a numeric column, coalescing NULL or missing values to 0.
// Sums accumulate through this accessor, so a NULL contributes nothing.
func (r Row) Float(key string) float64 {
	v, ok := asFloat(r[key])
	if !ok {
		return 0
	}
	return v
}

// NullFloat reads a numeric column, preserving NULL as nil. Pre-divided
// percentages come through here so a fired division guard stays absent
// instead of collapsing to zero.
func (r Row) NullFloat(key string) *float64 {
	v, ok := asFloat(r[key])
	if !ok {
		return nil
	}
	return &v
}

// Int reads an integer column, coalescing NULL or missing values to 0.
func (r Row) Int(key string) int {
	v, ok := asFloat(r[key])
	if !ok {
		return 0
	}
	return int(v)
}

// String reads a text column, coalescing NULL to the empty string.
func (r Row) String(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

// asFloat converts the driver value types we see in practice. The MySQL text
// protocol hands numerics back as []byte, so string forms parse too.
func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int64:
		return float64(x), true
	case int:
		return float64(x), true
	case []byte:
		return parseFloat(string(x))
	case string:
		return parseFloat(x)
	default:
		return 0, false
	}
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
