// Package article provides HTTP handlers for article endpoints: listing with
// sorting, filtering and pagination, retrieval, creation, vote updates and
// deletion.
package article

import (
	"time"

	"news-api/internal/domain/entity"
	"news-api/internal/repository"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ArticleID    int64     `json:"article_id"`
	Author       string    `json:"author"`
	Title        string    `json:"title"`
	Body         string    `json:"body,omitempty"`
	Topic        string    `json:"topic"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes"`
	ImageURL     string    `json:"article_img_url"`
	CommentCount int64     `json:"comment_count"`
}

func toDTO(a *repository.ArticleWithCount, includeBody bool) DTO {
	out := DTO{
		ArticleID:    a.Article.ID,
		Author:       a.Article.Author,
		Title:        a.Article.Title,
		Topic:        a.Article.Topic,
		CreatedAt:    a.Article.CreatedAt,
		Votes:        a.Article.Votes,
		ImageURL:     a.Article.ImageURL,
		CommentCount: a.CommentCount,
	}
	if includeBody {
		out.Body = a.Article.Body
	}
	return out
}

// voteDTO is the body-less shape returned by vote updates, which do not
// recompute the comment count.
type voteDTO struct {
	ArticleID int64     `json:"article_id"`
	Author    string    `json:"author"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Topic     string    `json:"topic"`
	CreatedAt time.Time `json:"created_at"`
	Votes     int       `json:"votes"`
	ImageURL  string    `json:"article_img_url"`
}

func toVoteDTO(a *entity.Article) voteDTO {
	return voteDTO{
		ArticleID: a.ID,
		Author:    a.Author,
		Title:     a.Title,
		Body:      a.Body,
		Topic:     a.Topic,
		CreatedAt: a.CreatedAt,
		Votes:     a.Votes,
		ImageURL:  a.ImageURL,
	}
}
