// Package comment provides HTTP handlers for comment endpoints: listing and
// creating comments under an article, and vote updates and deletion by
// comment ID.
package comment

import (
	"time"

	"news-api/internal/domain/entity"
)

// DTO represents the JSON structure for comment data transfer.
type DTO struct {
	CommentID int64     `json:"comment_id"`
	Body      string    `json:"body"`
	ArticleID int64     `json:"article_id"`
	Author    string    `json:"author"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

func toDTO(c *entity.Comment) DTO {
	return DTO{
		CommentID: c.ID,
		Body:      c.Body,
		ArticleID: c.ArticleID,
		Author:    c.Author,
		Votes:     c.Votes,
		CreatedAt: c.CreatedAt,
	}
}
