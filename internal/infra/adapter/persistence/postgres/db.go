// Package postgres provides PostgreSQL implementations of the repository
// interfaces. Repositories depend on the DB executor interface rather than
// *sql.DB directly so they run equally over the raw pool and the circuit
// breaker wrapper.
package postgres

import (
	"context"
	"database/sql"
)

// DB is the minimal query executor contract the repositories need.
// Both *sql.DB and *circuitbreaker.DBCircuitBreaker satisfy it.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
