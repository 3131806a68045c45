package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"news-api/internal/domain/entity"
	pg "news-api/internal/infra/adapter/persistence/postgres"
)

func comRow(c *entity.Comment) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"comment_id", "body", "author", "article_id", "votes", "created_at",
	}).AddRow(c.ID, c.Body, c.Author, c.ArticleID, c.Votes, c.CreatedAt)
}

func TestCommentRepo_ListByArticle(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)
	want := &entity.Comment{
		ID: 5, Body: "great read", Author: "tickle122",
		ArticleID: 1, Votes: 3, CreatedAt: now,
	}

	mock.ExpectQuery("FROM comments").
		WithArgs(int64(1), 10, 0).
		WillReturnRows(comRow(want))

	repo := pg.NewCommentRepo(db)
	got, err := repo.ListByArticle(context.Background(), 1, 10, 0)
	if err != nil || len(got) != 1 {
		t.Fatalf("ListByArticle err=%v len=%d", err, len(got))
	}
	if diff := cmp.Diff(want, got[0]); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCommentRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO comments (body, author, article_id)")).
		WithArgs("nice", "grumpy19", int64(2)).
		WillReturnRows(comRow(&entity.Comment{
			ID: 20, Body: "nice", Author: "grumpy19",
			ArticleID: 2, Votes: 0, CreatedAt: now,
		}))

	repo := pg.NewCommentRepo(db)
	got, err := repo.Create(context.Background(), &entity.Comment{
		Body: "nice", Author: "grumpy19", ArticleID: 2,
	})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if got.ID != 20 || got.Votes != 0 {
		t.Fatalf("unexpected created comment: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCommentRepo_UpdateVotes_MayGoNegative(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SET votes = votes + $1")).
		WithArgs(-5, int64(7)).
		WillReturnRows(comRow(&entity.Comment{
			ID: 7, Body: "b", Author: "a", ArticleID: 1, Votes: -2, CreatedAt: now,
		}))

	repo := pg.NewCommentRepo(db)
	got, err := repo.UpdateVotes(context.Background(), 7, -5)
	if err != nil {
		t.Fatalf("UpdateVotes err=%v", err)
	}
	if got.Votes != -2 {
		t.Fatalf("Votes=%d want -2", got.Votes)
	}
}

func TestCommentRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("DELETE FROM comments").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewCommentRepo(db)
	if err := repo.Delete(context.Background(), 7); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
}

func TestCommentRepo_Delete_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("DELETE FROM comments").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewCommentRepo(db)
	err := repo.Delete(context.Background(), 99)
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("want entity.ErrNotFound, got %v", err)
	}
}
