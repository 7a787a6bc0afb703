// internal/warehouse/client.go
package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/mwiater/revlens/internal/logging"
)

var scopeNamePattern = regexp.MustCompile(`^[A-Za-z0-9_.]+$`)

// Client implements Querier and Authorizer against a MySQL-protocol
// warehouse through database/sql.
type Client struct {
	db      *sql.DB
	timeout time.Duration
}

// Open connects to the warehouse. DSNs in mariadb:// or mysql:// URL form
// are rewritten to the driver's native format; native DSNs pass through.
func Open(dsn string, timeout time.Duration) (*Client, error) {
	mysqlDSN, err := toMySQLDSN(dsn)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("mysql", mysqlDSN)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)
	return &Client{db: db, timeout: timeout}, nil
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	return c.db.Close()
}

// RequestScopes pings the warehouse and probes each scope (a readable
// table) with a zero-row select. A permission error on any probe resolves
// to a denied grant rather than a failure; connectivity errors propagate.
func (c *Client) RequestScopes(ctx context.Context, scopes []string) (ScopeGrant, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.db.PingContext(ctx); err != nil {
		return ScopeGrant{}, fmt.Errorf("warehouse unreachable: %w", err)
	}

	for _, scope := range scopes {
		if !scopeNamePattern.MatchString(scope) {
			return ScopeGrant{}, fmt.Errorf("invalid scope name %q", scope)
		}
		probe := fmt.Sprintf("SELECT 1 FROM %s WHERE 1 = 0", scope)
		if _, err := c.db.ExecContext(ctx, probe); err != nil {
			logging.LogEvent("scope probe failed for %s: %v", scope, err)
			return ScopeGrant{HasRequiredScopes: false}, nil
		}
	}
	return ScopeGrant{HasRequiredScopes: true}, nil
}

// Query runs one fixed SQL text and materializes every row. Column values
// arrive as whatever the driver produced; []byte is normalized to string.
func (c *Client) Query(ctx context.Context, sqlText string) (*QueryResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	started := time.Now()
	rows, err := c.db.QueryContext(ctx, sqlText)
	if err != nil {
		logging.LogQuery(queryLabel(sqlText), time.Since(started), 0, err)
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &QueryResult{}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(Row, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		result.Results = append(result.Results, row)
	}
	if err := rows.Err(); err != nil {
		logging.LogQuery(queryLabel(sqlText), time.Since(started), 0, err)
		return nil, err
	}

	logging.LogQuery(queryLabel(sqlText), time.Since(started), len(result.Results), nil)
	return result, nil
}

// queryLabel extracts the label comment from the head of a fixed query text.
func queryLabel(sqlText string) string {
	for _, line := range strings.Split(sqlText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if label, ok := strings.CutPrefix(line, "-- revlens:"); ok {
			return strings.TrimSpace(label)
		}
		break
	}
	return "adhoc"
}

func toMySQLDSN(dsn string) (string, error) {
	if strings.HasPrefix(dsn, "mariadb://") || strings.HasPrefix(dsn, "mysql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", fmt.Errorf("parse dsn: %w", err)
		}
		user := ""
		pass := ""
		if u.User != nil {
			user = u.User.Username()
			pw, _ := u.User.Password()
			pass = pw
		}
		host := u.Host
		db := strings.TrimPrefix(u.Path, "/")
		if user == "" || host == "" || db == "" {
			return "", fmt.Errorf("dsn missing user, host, or database")
		}
		return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&interpolateParams=true",
			user, pass, host, db), nil
	}
	return dsn, nil
}
