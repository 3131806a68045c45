// Package httperr centralizes the mapping from errors raised anywhere in the
// request path to HTTP status codes and response bodies. Handlers hand every
// error here instead of translating status codes themselves.
package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"news-api/internal/domain/entity"
	"news-api/internal/handler/http/respond"
	"news-api/internal/observability/logging"
)

// Canonical user-facing messages. Internal detail never reaches the client.
const (
	MsgBadRequest   = "Bad request"
	MsgNotFound     = "Not found"
	MsgInternal     = "Internal server error"
	MsgPathNotFound = "Path not found"
)

// PostgreSQL SQLSTATE codes the store surfaces for input and integrity
// failures.
const (
	pgInvalidTextRepresentation = "22P02" // malformed input for a column type
	pgNotNullViolation          = "23502" // required column missing
	pgForeignKeyViolation       = "23503" // referenced row absent
	pgUniqueViolation           = "23505" // duplicate unique key
)

// Classify maps an error to an HTTP status code and a safe message.
//
// Order of matching:
//  1. Domain sentinels wrapped through the use case layer
//     (entity.ErrNotFound, entity.ErrInvalidInput).
//  2. Store failure codes: malformed input and not-null violations are bad
//     requests, foreign-key violations mean the referenced entity is absent,
//     and duplicate unique keys are reported as bad requests rather than
//     conflicts.
//  3. Everything else is an internal error with a generic message.
func Classify(err error) (int, string) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound, MsgNotFound
	case errors.Is(err, entity.ErrInvalidInput):
		return http.StatusBadRequest, MsgBadRequest
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgInvalidTextRepresentation, pgNotNullViolation, pgUniqueViolation:
			return http.StatusBadRequest, MsgBadRequest
		case pgForeignKeyViolation:
			return http.StatusNotFound, MsgNotFound
		}
	}

	return http.StatusInternalServerError, MsgInternal
}

// Write classifies err and writes the {"msg": ...} response. Unclassified
// errors are logged with full detail, correlated to the request, before the
// generic body goes out.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	code, msg := Classify(err)
	if code == http.StatusInternalServerError {
		logging.FromContext(r.Context()).Error("internal server error",
			slog.Any("error", err))
	}
	respond.Msg(w, code, msg)
}
