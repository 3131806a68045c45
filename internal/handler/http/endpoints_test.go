package http_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hhttp "news-api/internal/handler/http"
)

func TestEndpointsHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	hhttp.EndpointsHandler{}.ServeHTTP(rec, httptest.NewRequest("GET", "/api", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Endpoints map[string]struct {
			Description string `json:"description"`
		} `json:"endpoints"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	// Every route the server registers must be documented.
	for _, key := range []string{
		"GET /api",
		"GET /api/topics",
		"POST /api/topics",
		"GET /api/articles",
		"POST /api/articles",
		"GET /api/articles/{article_id}",
		"PATCH /api/articles/{article_id}",
		"DELETE /api/articles/{article_id}",
		"GET /api/articles/{article_id}/comments",
		"POST /api/articles/{article_id}/comments",
		"PATCH /api/comments/{comment_id}",
		"DELETE /api/comments/{comment_id}",
		"GET /api/users",
		"GET /api/users/{username}",
	} {
		entry, ok := body.Endpoints[key]
		assert.True(t, ok, "catalog is missing %q", key)
		assert.NotEmpty(t, entry.Description, "%q has no description", key)
	}
}

func TestNotFoundHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	hhttp.NotFoundHandler{}.ServeHTTP(rec, httptest.NewRequest("GET", "/not/a/route", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"msg":"Path not found"}`, rec.Body.String())
}

func TestLiveHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	hhttp.LiveHandler{}.ServeHTTP(rec, httptest.NewRequest("GET", "/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alive", rec.Body.String())
}

func TestLimitRequestBody(t *testing.T) {
	handler := hhttp.LimitRequestBody(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/api/topics",
		strings.NewReader(strings.Repeat("x", 100))))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestIPRateLimiter(t *testing.T) {
	limiter := hhttp.NewIPRateLimiter(1, 2)
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/api/articles", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	// Burst of 2, so the third immediate request is rejected.
	assert.Equal(t, []int{200, 200, 429}, codes)

	// A different client has its own bucket.
	req := httptest.NewRequest("GET", "/api/articles", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
