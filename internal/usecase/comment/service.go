package comment

import (
	"context"
	"errors"
	"fmt"

	"news-api/internal/common/pagination"
	"news-api/internal/domain/entity"
	"news-api/internal/repository"
)

// CreateInput represents the input parameters for creating a new comment.
type CreateInput struct {
	ArticleID int64
	Author    string
	Body      string
}

// Service provides comment management use cases.
type Service struct {
	Repo repository.CommentRepository
}

// ListByArticle retrieves a page of comments for an article, newest first.
// The handler is responsible for verifying the article exists; an existing
// article with no comments yields an empty slice.
func (s *Service) ListByArticle(ctx context.Context, articleID int64, page, limit int) ([]*entity.Comment, error) {
	if page < 1 {
		page = 1
	}
	comments, err := s.Repo.ListByArticle(ctx, articleID, limit,
		pagination.CalculateOffset(page, limit))
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// Get retrieves a single comment by its ID.
// Returns ErrInvalidCommentID if the ID is not positive.
// Returns ErrCommentNotFound if the comment does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Comment, error) {
	if id <= 0 {
		return nil, ErrInvalidCommentID
	}

	comment, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	return comment, nil
}

// Create validates the input and inserts a new comment. An unknown author or
// article surfaces as the store's foreign-key error, classified upstream.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Comment, error) {
	if in.Body == "" {
		return nil, &entity.ValidationError{Field: "body", Message: "is required"}
	}
	if in.Author == "" {
		return nil, &entity.ValidationError{Field: "username", Message: "is required"}
	}

	created, err := s.Repo.Create(ctx, &entity.Comment{
		Body:      in.Body,
		Author:    in.Author,
		ArticleID: in.ArticleID,
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return created, nil
}

// UpdateVotes applies a vote delta to a comment. Comment votes are unclamped.
// Returns ErrInvalidCommentID if the ID is not positive.
// Returns ErrCommentNotFound if the comment does not exist.
func (s *Service) UpdateVotes(ctx context.Context, id int64, delta int) (*entity.Comment, error) {
	if id <= 0 {
		return nil, ErrInvalidCommentID
	}

	comment, err := s.Repo.UpdateVotes(ctx, id, delta)
	if err != nil {
		return nil, fmt.Errorf("update comment votes: %w", err)
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	return comment, nil
}

// Delete removes a comment by its ID. Deleting a missing comment returns
// ErrCommentNotFound, so deletion is not idempotent.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidCommentID
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
