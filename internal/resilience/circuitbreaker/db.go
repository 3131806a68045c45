package circuitbreaker

import (
	"context"
	"database/sql"
)

// DBCircuitBreaker wraps a database connection with circuit breaker
// protection. It satisfies the repositories' executor interface, so it can be
// handed to them in place of the raw *sql.DB.
type DBCircuitBreaker struct {
	cb   *CircuitBreaker
	pool *sql.DB
}

// NewDBCircuitBreaker creates a database circuit breaker with DBConfig.
func NewDBCircuitBreaker(pool *sql.DB) *DBCircuitBreaker {
	return &DBCircuitBreaker{
		cb:   New(DBConfig()),
		pool: pool,
	}
}

// QueryContext executes a query with circuit breaker protection.
// If the circuit is open it fails immediately without hitting the database.
func (dcb *DBCircuitBreaker) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	result, err := dcb.cb.Execute(func() (interface{}, error) {
		return dcb.pool.QueryContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.(*sql.Rows), nil
}

// ExecContext executes a statement with circuit breaker protection.
func (dcb *DBCircuitBreaker) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	result, err := dcb.cb.Execute(func() (interface{}, error) {
		return dcb.pool.ExecContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.(sql.Result), nil
}

// QueryRowContext executes a single-row query. sql.Row defers its error to
// Scan, so the breaker cannot observe failures here; the call passes through.
func (dcb *DBCircuitBreaker) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return dcb.pool.QueryRowContext(ctx, query, args...)
}

// State returns the current state of the circuit breaker.
func (dcb *DBCircuitBreaker) State() string {
	return dcb.cb.State().String()
}

// DB returns the underlying connection pool for operations that do not need
// protection, such as health checks.
func (dcb *DBCircuitBreaker) DB() *sql.DB {
	return dcb.pool
}
