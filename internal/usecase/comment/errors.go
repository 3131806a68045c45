// Package comment provides use cases for managing comments: per-article
// listing, creation, vote updates and deletion.
package comment

import (
	"fmt"

	"news-api/internal/domain/entity"
)

// Sentinel errors for comment use case operations. Each wraps a domain
// sentinel so the HTTP error classifier can match on the category.
var (
	// ErrCommentNotFound indicates that the requested comment was not found.
	ErrCommentNotFound = fmt.Errorf("comment not found: %w", entity.ErrNotFound)

	// ErrInvalidCommentID indicates that the provided comment ID is invalid.
	ErrInvalidCommentID = fmt.Errorf("invalid comment ID: %w", entity.ErrInvalidInput)
)
