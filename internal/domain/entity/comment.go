package entity

import "time"

// Comment represents a reader comment attached to an article.
// Comment votes are unclamped and may go negative.
type Comment struct {
	ID        int64
	Body      string
	Author    string // references users.username
	ArticleID int64
	Votes     int
	CreatedAt time.Time
}
