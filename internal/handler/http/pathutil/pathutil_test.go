package pathutil_test

import (
	"errors"
	"testing"

	"news-api/internal/handler/http/pathutil"
)

func TestParseID(t *testing.T) {
	got, err := pathutil.ParseID("42")
	if err != nil || got != 42 {
		t.Fatalf("ParseID(42) = %d, %v", got, err)
	}

	for _, segment := range []string{"", "abc", "1.5", "-1", "0", "1e3"} {
		if _, err := pathutil.ParseID(segment); !errors.Is(err, pathutil.ErrInvalidID) {
			t.Fatalf("ParseID(%q): want ErrInvalidID, got %v", segment, err)
		}
	}
}

func TestNormalizePath(t *testing.T) {
	cases := []struct{ in, want string }{
		{"/api/articles", "/api/articles"},
		{"/api/articles/123", "/api/articles/:id"},
		{"/api/articles/123/comments", "/api/articles/:id/comments"},
		{"/api/comments/9", "/api/comments/:id"},
		{"/api/users/tickle122", "/api/users/tickle122"},
		{"/", "/"},
	}
	for _, tc := range cases {
		if got := pathutil.NormalizePath(tc.in); got != tc.want {
			t.Fatalf("NormalizePath(%q)=%q want %q", tc.in, got, tc.want)
		}
	}
}
