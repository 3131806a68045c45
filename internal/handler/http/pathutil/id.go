// Package pathutil provides helpers for parsing URL path segments.
package pathutil

import (
	"errors"
	"strconv"
)

// ErrInvalidID is returned when a path segment is not a well-formed ID.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses a path segment as a positive int64 identifier.
// Non-numeric or non-positive values return ErrInvalidID.
func ParseID(segment string) (int64, error) {
	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
