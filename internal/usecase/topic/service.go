// Package topic provides use cases for listing and creating topics.
package topic

import (
	"context"
	"fmt"

	"news-api/internal/domain/entity"
	"news-api/internal/repository"
)

// CreateInput represents the input parameters for creating a new topic.
type CreateInput struct {
	Slug        string
	Description string
}

// Service provides topic management use cases.
type Service struct {
	Repo repository.TopicRepository
}

// List retrieves all topics.
func (s *Service) List(ctx context.Context) ([]*entity.Topic, error) {
	topics, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}

// Create validates the input and inserts a new topic. A duplicate slug
// surfaces as the store's unique-violation error, which the classifier maps
// to a bad request rather than a conflict.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Topic, error) {
	if in.Slug == "" {
		return nil, &entity.ValidationError{Field: "slug", Message: "is required"}
	}
	if in.Description == "" {
		return nil, &entity.ValidationError{Field: "description", Message: "is required"}
	}

	created, err := s.Repo.Create(ctx, &entity.Topic{
		Slug:        in.Slug,
		Description: in.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}
	return created, nil
}
