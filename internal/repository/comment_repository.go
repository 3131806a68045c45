package repository

import (
	"context"

	"news-api/internal/domain/entity"
)

type CommentRepository interface {
	// ListByArticle retrieves comments for an article, newest first.
	// The caller is responsible for verifying the article exists; an
	// article without comments yields an empty slice, not an error.
	ListByArticle(ctx context.Context, articleID int64, limit, offset int) ([]*entity.Comment, error)
	// Get retrieves a comment by ID. Returns (nil, nil) if not found.
	Get(ctx context.Context, id int64) (*entity.Comment, error)
	// Create inserts a comment and returns the stored row.
	Create(ctx context.Context, comment *entity.Comment) (*entity.Comment, error)
	// UpdateVotes applies a vote delta in a single statement, unclamped.
	// Returns (nil, nil) if the comment is not found.
	UpdateVotes(ctx context.Context, id int64, delta int) (*entity.Comment, error)
	// Delete removes a comment. Returns entity.ErrNotFound when no row
	// matched, so a second delete of the same ID fails.
	Delete(ctx context.Context, id int64) error
}
