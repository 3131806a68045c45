package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"news-api/internal/domain/entity"
	"news-api/internal/repository"
)

type ArticleRepo struct {
	db           DB
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(db DB) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

func scanArticleWithCount(s interface {
	Scan(dest ...interface{}) error
}) (repository.ArticleWithCount, error) {
	var article entity.Article
	var count int64
	err := s.Scan(&article.ID, &article.Author, &article.Title, &article.Body,
		&article.Topic, &article.CreatedAt, &article.Votes, &article.ImageURL, &count)
	if err != nil {
		return repository.ArticleWithCount{}, err
	}
	return repository.ArticleWithCount{Article: &article, CommentCount: count}, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*repository.ArticleWithCount, error) {
	query := "SELECT" + articleColumns + `
FROM articles
LEFT JOIN comments ON comments.article_id = articles.article_id
WHERE articles.article_id = $1
GROUP BY articles.article_id`

	row := repo.db.QueryRowContext(ctx, query, id)
	result, err := scanArticleWithCount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &result, nil
}

func (repo *ArticleRepo) List(ctx context.Context, q repository.ArticleListQuery) ([]repository.ArticleWithCount, error) {
	query, args, err := repo.queryBuilder.BuildListQuery(q)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]repository.ArticleWithCount, 0, q.Limit)
	for rows.Next() {
		result, err := scanArticleWithCount(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, result)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) Count(ctx context.Context, topic string) (int64, error) {
	query, args := repo.queryBuilder.BuildCountQuery(topic)
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) (*entity.Article, error) {
	const returning = `
RETURNING article_id, author, title, body, topic, created_at, votes, article_img_url`

	var row *sql.Row
	if article.ImageURL == "" {
		// Omit the image column so the store default applies.
		row = repo.db.QueryRowContext(ctx, `
INSERT INTO articles (author, title, body, topic)
VALUES ($1, $2, $3, $4)`+returning,
			article.Author, article.Title, article.Body, article.Topic)
	} else {
		row = repo.db.QueryRowContext(ctx, `
INSERT INTO articles (author, title, body, topic, article_img_url)
VALUES ($1, $2, $3, $4, $5)`+returning,
			article.Author, article.Title, article.Body, article.Topic, article.ImageURL)
	}

	var created entity.Article
	err := row.Scan(&created.ID, &created.Author, &created.Title, &created.Body,
		&created.Topic, &created.CreatedAt, &created.Votes, &created.ImageURL)
	if err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	return &created, nil
}

// UpdateVotes applies the delta server-side in one statement so concurrent
// updates cannot interleave a read-modify-write. The floor at zero is part of
// the same statement.
func (repo *ArticleRepo) UpdateVotes(ctx context.Context, id int64, delta int) (*entity.Article, error) {
	const query = `
UPDATE articles
SET votes = GREATEST(votes + $1, 0)
WHERE article_id = $2
RETURNING article_id, author, title, body, topic, created_at, votes, article_img_url`

	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, delta, id).
		Scan(&article.ID, &article.Author, &article.Title, &article.Body,
			&article.Topic, &article.CreatedAt, &article.Votes, &article.ImageURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("UpdateVotes: %w", err)
	}
	return &article, nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM articles WHERE article_id = $1`
	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}
