package http

import (
	"net/http"

	"news-api/internal/handler/http/respond"
)

// Endpoint describes one route in the machine-readable API catalog served at
// the API root.
type Endpoint struct {
	Description string         `json:"description"`
	Queries     []string       `json:"queries,omitempty"`
	ExampleBody map[string]any `json:"exampleRequest,omitempty"`
	Example     map[string]any `json:"exampleResponse,omitempty"`
}

// Endpoints returns the catalog of every route the API serves, keyed by
// "METHOD /path".
func Endpoints() map[string]Endpoint {
	return map[string]Endpoint{
		"GET /api": {
			Description: "serves this catalog of all available endpoints",
		},
		"GET /api/topics": {
			Description: "serves an array of all topics",
			Example:     map[string]any{"topics": []map[string]any{{"slug": "football", "description": "The beautiful game"}}},
		},
		"POST /api/topics": {
			Description: "creates a topic; slug and description are required, duplicate slugs are rejected",
			ExampleBody: map[string]any{"slug": "music", "description": "All about music"},
			Example:     map[string]any{"topic": map[string]any{"slug": "music", "description": "All about music"}},
		},
		"GET /api/articles": {
			Description: "serves a sorted, filtered, paginated array of articles with comment counts and total_count",
			Queries:     []string{"sort_by", "order", "topic", "limit", "p"},
		},
		"POST /api/articles": {
			Description: "creates an article; author, title, body and topic are required",
			ExampleBody: map[string]any{"author": "weegembump", "title": "Seafood substitutions", "body": "...", "topic": "cooking"},
		},
		"GET /api/articles/{article_id}": {
			Description: "serves a single article with its comment count",
		},
		"PATCH /api/articles/{article_id}": {
			Description: "applies inc_votes to an article's vote count; the result never goes below zero",
			ExampleBody: map[string]any{"inc_votes": 1},
		},
		"DELETE /api/articles/{article_id}": {
			Description: "deletes an article and, via the store's cascade, its comments",
		},
		"GET /api/articles/{article_id}/comments": {
			Description: "serves the article's comments, newest first, paginated",
			Queries:     []string{"limit", "p"},
		},
		"POST /api/articles/{article_id}/comments": {
			Description: "adds a comment to an article; username and body are required",
			ExampleBody: map[string]any{"username": "tickle122", "body": "Great read"},
		},
		"PATCH /api/comments/{comment_id}": {
			Description: "applies inc_votes to a comment's vote count; comment votes are unclamped",
			ExampleBody: map[string]any{"inc_votes": -1},
		},
		"DELETE /api/comments/{comment_id}": {
			Description: "deletes a comment; deleting a missing comment yields 404",
		},
		"GET /api/users": {
			Description: "serves an array of all users",
		},
		"GET /api/users/{username}": {
			Description: "serves a single user by username",
		},
	}
}

// EndpointsHandler serves the catalog at the API root.
type EndpointsHandler struct{}

func (h EndpointsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]any{"endpoints": Endpoints()})
}

// NotFoundHandler answers every unmatched route with the fixed body the API
// contract promises, before any error classification happens.
type NotFoundHandler struct{}

func (h NotFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.Msg(w, http.StatusNotFound, "Path not found")
}
