package postgres

import (
	"fmt"
	"strings"

	"news-api/internal/repository"
)

// articleColumns are the projected article columns shared by list and get
// queries. comment_count is derived with a LEFT JOIN so articles without
// comments count as zero.
const articleColumns = `
articles.article_id, articles.author, articles.title, articles.body,
articles.topic, articles.created_at, articles.votes, articles.article_img_url,
CAST(COUNT(comments.comment_id) AS BIGINT) AS comment_count`

// ArticleQueryBuilder builds SELECT statements for article retrieval.
// Sort columns are validated against the repository allow-list; this is the
// last line of defense against interpolating unchecked input into ORDER BY.
type ArticleQueryBuilder struct{}

func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildListQuery assembles the aggregated list query with optional topic
// filter, ordering and pagination. Placeholders are numbered so the topic
// filter shifts the LIMIT/OFFSET positions.
func (qb *ArticleQueryBuilder) BuildListQuery(q repository.ArticleListQuery) (string, []interface{}, error) {
	if !validSortColumn(q.SortColumn) {
		return "", nil, fmt.Errorf("build list query: unknown sort column %q", q.SortColumn)
	}
	dir := strings.ToUpper(q.Order)
	if dir != "ASC" && dir != "DESC" {
		return "", nil, fmt.Errorf("build list query: unknown order %q", q.Order)
	}

	var sb strings.Builder
	var args []interface{}

	sb.WriteString("SELECT")
	sb.WriteString(articleColumns)
	sb.WriteString("\nFROM articles\nLEFT JOIN comments ON comments.article_id = articles.article_id\n")

	paramIndex := 1
	if q.Topic != "" {
		fmt.Fprintf(&sb, "WHERE articles.topic = $%d\n", paramIndex)
		args = append(args, q.Topic)
		paramIndex++
	}

	sb.WriteString("GROUP BY articles.article_id\n")
	fmt.Fprintf(&sb, "ORDER BY %s %s\n", q.SortColumn, dir)
	fmt.Fprintf(&sb, "LIMIT $%d OFFSET $%d", paramIndex, paramIndex+1)
	args = append(args, q.Limit, q.Offset)

	return sb.String(), args, nil
}

// BuildCountQuery assembles the total_count query matching the same topic
// filter as the list query, ignoring pagination.
func (qb *ArticleQueryBuilder) BuildCountQuery(topic string) (string, []interface{}) {
	if topic == "" {
		return "SELECT COUNT(*) FROM articles", nil
	}
	return "SELECT COUNT(*) FROM articles WHERE topic = $1", []interface{}{topic}
}

func validSortColumn(col string) bool {
	for _, key := range []string{
		"author", "title", "article_id", "topic",
		"created_at", "votes", "article_img_url", "comment_count",
	} {
		if mapped, ok := repository.ArticleSortColumn(key); ok && mapped == col {
			return true
		}
	}
	return false
}
