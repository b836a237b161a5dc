package moco

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// TaggingService manages the tags of taggable records. Every call returns
// the tags of the record after the change.
type TaggingService struct {
	client *Client
}

// List returns the tags of a record.
func (s *TaggingService) List(ctx context.Context, entity string, id int) ([]string, error) {
	path, err := taggingPath(entity, id)
	if err != nil {
		return nil, err
	}
	return getSlice[string](ctx, s.client, "tagging_getlist", path, nil)
}

// Add adds tags to a record and keeps the existing ones.
func (s *TaggingService) Add(ctx context.Context, entity string, id int, tags []string) ([]string, error) {
	return s.change(ctx, "tagging_add", entity, id, tags, true)
}

// Replace sets the tags of a record. An empty list removes every tag.
func (s *TaggingService) Replace(ctx context.Context, entity string, id int, tags []string) ([]string, error) {
	return s.change(ctx, "tagging_replace", entity, id, tags, false)
}

// Remove removes tags from a record.
func (s *TaggingService) Remove(ctx context.Context, entity string, id int, tags []string) ([]string, error) {
	return s.change(ctx, "tagging_remove", entity, id, tags, true)
}

func (s *TaggingService) change(ctx context.Context, name, entity string, id int, tags []string, required bool) ([]string, error) {
	path, err := taggingPath(entity, id)
	if err != nil {
		return nil, err
	}
	if err := validation.Validate(tags, validation.Required.When(required)); err != nil {
		return nil, &ValidationError{Field: "tags", Err: err}
	}
	if tags == nil {
		tags = []string{}
	}
	return sendSlice[string](ctx, s.client, name, path, Params{"tags": tags})
}

func taggingPath(entity string, id int) (Params, error) {
	if err := validation.Validate(entity, validation.Required, validation.In(commentableTypes...)); err != nil {
		return nil, &ValidationError{Field: "entity", Err: err}
	}
	return Params{"entity": entity, "id": id}, nil
}
