package postgres_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"news-api/internal/domain/entity"
	pg "news-api/internal/infra/adapter/persistence/postgres"
)

func TestTopicRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM topics").
		WillReturnRows(sqlmock.NewRows([]string{"slug", "description"}).
			AddRow("coding", "Code is love, code is life").
			AddRow("football", "FOOTIE!"))

	repo := pg.NewTopicRepo(db)
	got, err := repo.List(context.Background())
	if err != nil || len(got) != 2 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
	if got[0].Slug != "coding" || got[1].Slug != "football" {
		t.Fatalf("unexpected topics: %+v", got)
	}
}

func TestTopicRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO topics (slug, description)")).
		WithArgs("music", "All about music").
		WillReturnRows(sqlmock.NewRows([]string{"slug", "description"}).
			AddRow("music", "All about music"))

	repo := pg.NewTopicRepo(db)
	got, err := repo.Create(context.Background(), &entity.Topic{
		Slug: "music", Description: "All about music",
	})
	if err != nil || got.Slug != "music" {
		t.Fatalf("Create err=%v got=%+v", err, got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
