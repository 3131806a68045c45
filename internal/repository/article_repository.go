// Package repository defines the persistence interfaces the use case layer
// depends on, together with the value types that cross the boundary.
package repository

import (
	"context"

	"news-api/internal/domain/entity"
)

// ArticleWithCount pairs an article with its derived comment count.
// The count is computed at read time and never stored.
type ArticleWithCount struct {
	Article      *entity.Article
	CommentCount int64
}

// ArticleListQuery carries a fully validated list request down to the store.
// SortColumn and Order must come from the allow-list below; the query builder
// rejects anything else as a second line of defense.
type ArticleListQuery struct {
	SortColumn string // SQL column or the comment_count aggregate alias
	Order      string // "ASC" or "DESC"
	Topic      string // exact-match filter, empty means no filter
	Limit      int
	Offset     int
}

// articleSortColumns is the allow-list of sortable keys mapped to the
// column (or aggregate alias) used in ORDER BY.
var articleSortColumns = map[string]string{
	"author":          "articles.author",
	"title":           "articles.title",
	"article_id":      "articles.article_id",
	"topic":           "articles.topic",
	"created_at":      "articles.created_at",
	"votes":           "articles.votes",
	"article_img_url": "articles.article_img_url",
	"comment_count":   "comment_count",
}

// ArticleSortColumn resolves a sort_by key against the allow-list.
func ArticleSortColumn(key string) (string, bool) {
	col, ok := articleSortColumns[key]
	return col, ok
}

type ArticleRepository interface {
	// Get retrieves an article by ID with its comment count.
	// Returns (nil, nil) if the article is not found.
	Get(ctx context.Context, id int64) (*ArticleWithCount, error)
	// List retrieves articles matching the query, each with its comment count.
	List(ctx context.Context, q ArticleListQuery) ([]ArticleWithCount, error)
	// Count returns the number of articles matching the topic filter
	// (all articles when topic is empty), ignoring pagination.
	Count(ctx context.Context, topic string) (int64, error)
	// Create inserts an article and returns the stored row with
	// store-assigned ID, created_at and default votes/image URL.
	Create(ctx context.Context, article *entity.Article) (*entity.Article, error)
	// UpdateVotes applies a vote delta in a single statement, clamped at zero.
	// Returns (nil, nil) if the article is not found.
	UpdateVotes(ctx context.Context, id int64, delta int) (*entity.Article, error)
	// Delete removes an article; comments go with it via the store's
	// cascade. Deleting a missing article is not an error.
	Delete(ctx context.Context, id int64) error
}
