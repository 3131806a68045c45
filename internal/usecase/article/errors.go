// Package article provides use cases for managing articles: listing with
// sorting/filtering/pagination, retrieval with comment counts, creation,
// vote updates and deletion.
package article

import (
	"fmt"

	"news-api/internal/domain/entity"
)

// Sentinel errors for article use case operations. Each wraps a domain
// sentinel so the HTTP error classifier can match on the category.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = fmt.Errorf("article not found: %w", entity.ErrNotFound)

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be positive integers.
	ErrInvalidArticleID = fmt.Errorf("invalid article ID: %w", entity.ErrInvalidInput)

	// ErrInvalidSortKey indicates a sort_by value outside the allow-list.
	ErrInvalidSortKey = fmt.Errorf("invalid sort_by query: %w", entity.ErrInvalidInput)

	// ErrInvalidOrder indicates an order value other than asc or desc.
	ErrInvalidOrder = fmt.Errorf("invalid order query: %w", entity.ErrInvalidInput)
)
