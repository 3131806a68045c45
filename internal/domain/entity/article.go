// Package entity defines the core domain entities and validation logic for the
// news service. It contains the fundamental business objects such as Article,
// Comment, Topic and User, along with their domain-specific errors.
package entity

import "time"

// Article represents a news article entity in the system.
// Votes never go below zero; the repository clamps decrements at the store.
type Article struct {
	ID        int64
	Author    string // references users.username
	Title     string
	Body      string
	Topic     string // references topics.slug
	CreatedAt time.Time
	Votes     int
	ImageURL  string
}
