package article_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-api/internal/common/pagination"
	"news-api/internal/domain/entity"
	harticle "news-api/internal/handler/http/article"
	"news-api/internal/repository"
	artUC "news-api/internal/usecase/article"
)

type stubRepo struct {
	data      map[int64]*entity.Article
	counts    map[int64]int64
	nextID    int64
	createErr error
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Article{}, counts: map[int64]int64{}, nextID: 1}
}

func (s *stubRepo) Get(_ context.Context, id int64) (*repository.ArticleWithCount, error) {
	a, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	return &repository.ArticleWithCount{Article: a, CommentCount: s.counts[id]}, nil
}

func (s *stubRepo) List(_ context.Context, q repository.ArticleListQuery) ([]repository.ArticleWithCount, error) {
	out := make([]repository.ArticleWithCount, 0, len(s.data))
	for id, a := range s.data {
		if q.Topic != "" && a.Topic != q.Topic {
			continue
		}
		out = append(out, repository.ArticleWithCount{Article: a, CommentCount: s.counts[id]})
	}
	return out, nil
}

func (s *stubRepo) Count(_ context.Context, topic string) (int64, error) {
	var n int64
	for _, a := range s.data {
		if topic == "" || a.Topic == topic {
			n++
		}
	}
	return n, nil
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article) (*entity.Article, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := *a
	created.ID = s.nextID
	created.CreatedAt = time.Now()
	if created.ImageURL == "" {
		created.ImageURL = "https://default.example/img.jpg"
	}
	s.nextID++
	s.data[created.ID] = &created
	return &created, nil
}

func (s *stubRepo) UpdateVotes(_ context.Context, id int64, delta int) (*entity.Article, error) {
	a, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	a.Votes += delta
	if a.Votes < 0 {
		a.Votes = 0
	}
	return a, nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	delete(s.data, id)
	return nil
}

func newMux(repo *stubRepo) *http.ServeMux {
	mux := http.NewServeMux()
	harticle.Register(mux, &artUC.Service{Repo: repo},
		pagination.DefaultConfig(), slog.New(slog.DiscardHandler))
	return mux
}

func seed(repo *stubRepo, topic string, votes int) *entity.Article {
	a := &entity.Article{
		Author: "butter_bridge", Title: "t", Body: "some body",
		Topic: topic, Votes: votes, CreatedAt: time.Now(),
		ImageURL: "https://example.com/a.jpg",
	}
	a.ID = repo.nextID
	repo.nextID++
	repo.data[a.ID] = a
	return a
}

func TestGetArticle(t *testing.T) {
	repo := newStub()
	a := seed(repo, "coding", 7)
	repo.counts[a.ID] = 4

	rec := httptest.NewRecorder()
	newMux(repo).ServeHTTP(rec, httptest.NewRequest("GET", "/api/articles/1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Article struct {
			ArticleID    int64  `json:"article_id"`
			Body         string `json:"body"`
			Votes        int    `json:"votes"`
			CommentCount int64  `json:"comment_count"`
		} `json:"article"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.Article.ArticleID)
	assert.Equal(t, "some body", body.Article.Body)
	assert.Equal(t, 7, body.Article.Votes)
	assert.Equal(t, int64(4), body.Article.CommentCount)
}

func TestGetArticle_NonNumericID(t *testing.T) {
	rec := httptest.NewRecorder()
	newMux(newStub()).ServeHTTP(rec, httptest.NewRequest("GET", "/api/articles/banana", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"msg":"Bad request"}`, rec.Body.String())
}

func TestGetArticle_NotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	newMux(newStub()).ServeHTTP(rec, httptest.NewRequest("GET", "/api/articles/999", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"msg":"Not found"}`, rec.Body.String())
}

func TestListArticles(t *testing.T) {
	repo := newStub()
	seed(repo, "coding", 1)
	seed(repo, "football", 2)

	rec := httptest.NewRecorder()
	newMux(repo).ServeHTTP(rec, httptest.NewRequest("GET", "/api/articles", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Articles   []map[string]any `json:"articles"`
		TotalCount int64            `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Articles, 2)
	assert.Equal(t, int64(2), body.TotalCount)
}

func TestListArticles_TopicFilterCountsOnlyMatches(t *testing.T) {
	repo := newStub()
	seed(repo, "coding", 1)
	seed(repo, "coding", 2)
	seed(repo, "football", 3)

	rec := httptest.NewRecorder()
	newMux(repo).ServeHTTP(rec, httptest.NewRequest("GET", "/api/articles?topic=coding", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Articles   []map[string]any `json:"articles"`
		TotalCount int64            `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Articles, 2)
	assert.Equal(t, int64(2), body.TotalCount)
}

func TestListArticles_InvalidQueries(t *testing.T) {
	repo := newStub()
	seed(repo, "coding", 1)
	mux := newMux(repo)

	for _, url := range []string{
		"/api/articles?sort_by=banana",
		"/api/articles?order=sideways",
		"/api/articles?p=0",
		"/api/articles?limit=-1",
	} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest("GET", url, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, url)
		assert.JSONEq(t, `{"msg":"Bad request"}`, rec.Body.String(), url)
	}
}

func TestCreateArticle(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/articles", strings.NewReader(
		`{"author":"butter_bridge","title":"t","body":"b","topic":"coding"}`))
	newMux(newStub()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body struct {
		Article struct {
			ArticleID    int64  `json:"article_id"`
			Votes        int    `json:"votes"`
			ImageURL     string `json:"article_img_url"`
			CommentCount int64  `json:"comment_count"`
		} `json:"article"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.Article.ArticleID)
	assert.Zero(t, body.Article.Votes)
	assert.NotEmpty(t, body.Article.ImageURL)
	assert.Zero(t, body.Article.CommentCount)
}

func TestCreateArticle_MissingField(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/articles", strings.NewReader(
		`{"author":"butter_bridge","body":"b","topic":"coding"}`))
	newMux(newStub()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateArticle_UnknownTopicIsNotFound(t *testing.T) {
	repo := newStub()
	repo.createErr = &pgconn.PgError{Code: "23503", ConstraintName: "articles_topic_fkey"}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/articles", strings.NewReader(
		`{"author":"butter_bridge","title":"t","body":"b","topic":"no-such"}`))
	newMux(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"msg":"Not found"}`, rec.Body.String())
}

func TestPatchArticle_VotesClampAtZero(t *testing.T) {
	repo := newStub()
	seed(repo, "coding", 100)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("PATCH", "/api/articles/1", strings.NewReader(`{"inc_votes":-1000}`))
	newMux(repo).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Article struct {
			Votes int `json:"votes"`
		} `json:"article"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Zero(t, body.Article.Votes)
}

func TestPatchArticle_MissingIncVotes(t *testing.T) {
	repo := newStub()
	seed(repo, "coding", 1)

	for _, payload := range []string{`{}`, `{"inc_votes":"one"}`, `not json`} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("PATCH", "/api/articles/1", strings.NewReader(payload))
		newMux(repo).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, payload)
	}
}

func TestPatchArticle_NotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("PATCH", "/api/articles/999", strings.NewReader(`{"inc_votes":1}`))
	newMux(newStub()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteArticle(t *testing.T) {
	repo := newStub()
	seed(repo, "coding", 1)

	rec := httptest.NewRecorder()
	newMux(repo).ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/articles/1", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Empty(t, repo.data)
}

func TestDeleteArticle_AbsentIsStillNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	newMux(newStub()).ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/articles/42", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
