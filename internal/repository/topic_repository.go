package repository

import (
	"context"

	"news-api/internal/domain/entity"
)

type TopicRepository interface {
	List(ctx context.Context) ([]*entity.Topic, error)
	// Create inserts a topic. A duplicate slug surfaces as the store's
	// unique-violation error and is classified upstream.
	Create(ctx context.Context, topic *entity.Topic) (*entity.Topic, error)
}
