package comment_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"news-api/internal/domain/entity"
	comUC "news-api/internal/usecase/comment"
)

// Minimal in-memory CommentRepository.
type stubRepo struct {
	data   map[int64]*entity.Comment
	nextID int64
	err    error
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Comment{}, nextID: 1}
}

func (s *stubRepo) ListByArticle(_ context.Context, articleID int64, _ int, _ int) ([]*entity.Comment, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := []*entity.Comment{}
	for _, c := range s.data {
		if c.ArticleID == articleID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Comment, error) {
	return s.data[id], s.err
}

func (s *stubRepo) Create(_ context.Context, c *entity.Comment) (*entity.Comment, error) {
	if s.err != nil {
		return nil, s.err
	}
	created := *c
	created.ID = s.nextID
	created.CreatedAt = time.Now()
	s.nextID++
	s.data[created.ID] = &created
	return &created, nil
}

func (s *stubRepo) UpdateVotes(_ context.Context, id int64, delta int) (*entity.Comment, error) {
	if s.err != nil {
		return nil, s.err
	}
	c, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	c.Votes += delta
	return c, nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[id]; !ok {
		return fmt.Errorf("comment %d: %w", id, entity.ErrNotFound)
	}
	delete(s.data, id)
	return nil
}

func TestCreate(t *testing.T) {
	svc := &comUC.Service{Repo: newStub()}

	got, err := svc.Create(context.Background(), comUC.CreateInput{
		ArticleID: 1, Author: "tickle122", Body: "great",
	})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if got.ID == 0 || got.Votes != 0 {
		t.Fatalf("unexpected created comment: %+v", got)
	}
}

func TestCreate_MissingBody(t *testing.T) {
	svc := &comUC.Service{Repo: newStub()}

	_, err := svc.Create(context.Background(), comUC.CreateInput{
		ArticleID: 1, Author: "tickle122",
	})
	var vErr *entity.ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "body" {
		t.Fatalf("want body validation error, got %v", err)
	}
}

func TestCreate_MissingUsername(t *testing.T) {
	svc := &comUC.Service{Repo: newStub()}

	_, err := svc.Create(context.Background(), comUC.CreateInput{
		ArticleID: 1, Body: "great",
	})
	var vErr *entity.ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "username" {
		t.Fatalf("want username validation error, got %v", err)
	}
}

func TestGet(t *testing.T) {
	repo := newStub()
	c, _ := repo.Create(context.Background(), &entity.Comment{ArticleID: 1, Author: "a", Body: "b"})
	svc := &comUC.Service{Repo: repo}

	got, err := svc.Get(context.Background(), c.ID)
	if err != nil || got.ID != c.ID {
		t.Fatalf("Get err=%v got=%+v", err, got)
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := &comUC.Service{Repo: newStub()}

	if _, err := svc.Get(context.Background(), 99); !errors.Is(err, comUC.ErrCommentNotFound) {
		t.Fatalf("want ErrCommentNotFound, got %v", err)
	}
}

func TestUpdateVotes_MayGoNegative(t *testing.T) {
	repo := newStub()
	c, _ := repo.Create(context.Background(), &entity.Comment{ArticleID: 1, Author: "a", Body: "b"})
	svc := &comUC.Service{Repo: repo}

	got, err := svc.UpdateVotes(context.Background(), c.ID, -3)
	if err != nil || got.Votes != -3 {
		t.Fatalf("UpdateVotes err=%v votes=%d", err, got.Votes)
	}
}

func TestUpdateVotes_NotFound(t *testing.T) {
	svc := &comUC.Service{Repo: newStub()}

	if _, err := svc.UpdateVotes(context.Background(), 99, 1); !errors.Is(err, comUC.ErrCommentNotFound) {
		t.Fatalf("want ErrCommentNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo := newStub()
	c, _ := repo.Create(context.Background(), &entity.Comment{ArticleID: 1, Author: "a", Body: "b"})
	svc := &comUC.Service{Repo: repo}

	if err := svc.Delete(context.Background(), c.ID); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc := &comUC.Service{Repo: newStub()}

	err := svc.Delete(context.Background(), 99)
	if !errors.Is(err, comUC.ErrCommentNotFound) {
		t.Fatalf("want ErrCommentNotFound, got %v", err)
	}
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatal("ErrCommentNotFound must wrap entity.ErrNotFound")
	}
}

func TestDelete_InvalidID(t *testing.T) {
	svc := &comUC.Service{Repo: newStub()}

	if err := svc.Delete(context.Background(), -1); !errors.Is(err, comUC.ErrInvalidCommentID) {
		t.Fatal("want ErrInvalidCommentID for negative ID")
	}
}
