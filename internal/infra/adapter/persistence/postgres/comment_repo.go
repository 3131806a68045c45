package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"news-api/internal/domain/entity"
	"news-api/internal/repository"
)

type CommentRepo struct {
	db DB
}

func NewCommentRepo(db DB) repository.CommentRepository {
	return &CommentRepo{db: db}
}

func (repo *CommentRepo) ListByArticle(ctx context.Context, articleID int64, limit, offset int) ([]*entity.Comment, error) {
	const query = `
SELECT comment_id, body, author, article_id, votes, created_at
FROM comments
WHERE article_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := repo.db.QueryContext(ctx, query, articleID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListByArticle: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]*entity.Comment, 0, limit)
	for rows.Next() {
		var comment entity.Comment
		if err := rows.Scan(&comment.ID, &comment.Body, &comment.Author,
			&comment.ArticleID, &comment.Votes, &comment.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListByArticle: Scan: %w", err)
		}
		comments = append(comments, &comment)
	}
	return comments, rows.Err()
}

func (repo *CommentRepo) Get(ctx context.Context, id int64) (*entity.Comment, error) {
	const query = `
SELECT comment_id, body, author, article_id, votes, created_at
FROM comments
WHERE comment_id = $1
LIMIT 1`

	var comment entity.Comment
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&comment.ID, &comment.Body, &comment.Author,
			&comment.ArticleID, &comment.Votes, &comment.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &comment, nil
}

func (repo *CommentRepo) Create(ctx context.Context, comment *entity.Comment) (*entity.Comment, error) {
	const query = `
INSERT INTO comments (body, author, article_id)
VALUES ($1, $2, $3)
RETURNING comment_id, body, author, article_id, votes, created_at`

	var created entity.Comment
	err := repo.db.QueryRowContext(ctx, query,
		comment.Body, comment.Author, comment.ArticleID).
		Scan(&created.ID, &created.Body, &created.Author,
			&created.ArticleID, &created.Votes, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	return &created, nil
}

// UpdateVotes applies the delta server-side in one statement. Comment votes
// are unclamped and may go negative.
func (repo *CommentRepo) UpdateVotes(ctx context.Context, id int64, delta int) (*entity.Comment, error) {
	const query = `
UPDATE comments
SET votes = votes + $1
WHERE comment_id = $2
RETURNING comment_id, body, author, article_id, votes, created_at`

	var comment entity.Comment
	err := repo.db.QueryRowContext(ctx, query, delta, id).
		Scan(&comment.ID, &comment.Body, &comment.Author,
			&comment.ArticleID, &comment.Votes, &comment.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("UpdateVotes: %w", err)
	}
	return &comment, nil
}

func (repo *CommentRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM comments WHERE comment_id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: comment %d: %w", id, entity.ErrNotFound)
	}
	return nil
}
