package postgres

import (
	"context"
	"fmt"

	"news-api/internal/domain/entity"
	"news-api/internal/repository"
)

type TopicRepo struct {
	db DB
}

func NewTopicRepo(db DB) repository.TopicRepository {
	return &TopicRepo{db: db}
}

func (repo *TopicRepo) List(ctx context.Context) ([]*entity.Topic, error) {
	const query = `SELECT slug, description FROM topics ORDER BY slug`

	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	topics := make([]*entity.Topic, 0, 16)
	for rows.Next() {
		var topic entity.Topic
		if err := rows.Scan(&topic.Slug, &topic.Description); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		topics = append(topics, &topic)
	}
	return topics, rows.Err()
}

// Create inserts a topic. A duplicate slug trips the unique constraint and
// surfaces as a pgconn error classified upstream.
func (repo *TopicRepo) Create(ctx context.Context, topic *entity.Topic) (*entity.Topic, error) {
	const query = `
INSERT INTO topics (slug, description)
VALUES ($1, $2)
RETURNING slug, description`

	var created entity.Topic
	err := repo.db.QueryRowContext(ctx, query, topic.Slug, topic.Description).
		Scan(&created.Slug, &created.Description)
	if err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	return &created, nil
}
