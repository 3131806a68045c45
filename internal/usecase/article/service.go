package article

import (
	"context"
	"fmt"
	"strings"

	"news-api/internal/common/pagination"
	"news-api/internal/domain/entity"
	"news-api/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Author   string
	Title    string
	Body     string
	Topic    string
	ImageURL string // optional, store default applies when empty
}

// ListInput represents the raw list parameters before validation.
// Zero values select the defaults: created_at descending.
type ListInput struct {
	SortBy string
	Order  string
	Topic  string
	Page   int
	Limit  int
}

// ListResult pairs a page of articles with the total count of rows matching
// the topic filter, ignoring pagination.
type ListResult struct {
	Articles   []repository.ArticleWithCount
	TotalCount int64
}

// Service provides article management use cases.
// It owns input validation and delegates persistence to the repository.
type Service struct {
	Repo repository.ArticleRepository
}

// Get retrieves a single article by its ID with its comment count.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*repository.ArticleWithCount, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// List retrieves articles sorted, filtered and paginated per the input.
// sort_by is restricted to the repository allow-list and order to asc/desc;
// anything else is rejected as invalid input. A topic with no matching
// articles yields an empty result, not an error.
func (s *Service) List(ctx context.Context, in ListInput) (*ListResult, error) {
	sortBy := in.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	column, ok := repository.ArticleSortColumn(sortBy)
	if !ok {
		return nil, ErrInvalidSortKey
	}

	order := strings.ToLower(in.Order)
	if order == "" {
		order = "desc"
	}
	if order != "asc" && order != "desc" {
		return nil, ErrInvalidOrder
	}

	total, err := s.Repo.Count(ctx, in.Topic)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	page := in.Page
	if page < 1 {
		page = 1
	}

	articles, err := s.Repo.List(ctx, repository.ArticleListQuery{
		SortColumn: column,
		Order:      strings.ToUpper(order),
		Topic:      in.Topic,
		Limit:      in.Limit,
		Offset:     pagination.CalculateOffset(page, in.Limit),
	})
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return &ListResult{Articles: articles, TotalCount: total}, nil
}

// Create validates the input and inserts a new article. Referential failures
// (unknown author or topic) surface as store errors classified upstream.
func (s *Service) Create(ctx context.Context, in CreateInput) (*repository.ArticleWithCount, error) {
	if in.Author == "" {
		return nil, &entity.ValidationError{Field: "author", Message: "is required"}
	}
	if in.Title == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "is required"}
	}
	if in.Body == "" {
		return nil, &entity.ValidationError{Field: "body", Message: "is required"}
	}
	if in.Topic == "" {
		return nil, &entity.ValidationError{Field: "topic", Message: "is required"}
	}

	created, err := s.Repo.Create(ctx, &entity.Article{
		Author:   in.Author,
		Title:    in.Title,
		Body:     in.Body,
		Topic:    in.Topic,
		ImageURL: in.ImageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	// A fresh article has no comments by definition.
	return &repository.ArticleWithCount{Article: created, CommentCount: 0}, nil
}

// UpdateVotes applies a vote delta to an article. The repository performs the
// update atomically and clamps the result at zero.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) UpdateVotes(ctx context.Context, id int64, delta int) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	article, err := s.Repo.UpdateVotes(ctx, id, delta)
	if err != nil {
		return nil, fmt.Errorf("update article votes: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// Delete removes an article by its ID. Deleting an absent article is not an
// error; associated comments are removed by the store's cascade.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
