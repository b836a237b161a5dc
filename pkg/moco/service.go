package moco

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Helpers shared by the resource services. Each builds on Client.Do and
// decodes the response into the requested model.

func getObject[T any](ctx context.Context, c *Client, name string, path, query Params) (*T, error) {
	resp, err := c.Do(ctx, name, path, query, nil)
	if err != nil {
		return nil, err
	}
	return decodeObject[T](resp)
}

func getSlice[T any](ctx context.Context, c *Client, name string, path, query Params) ([]T, error) {
	resp, err := c.Do(ctx, name, path, query, nil)
	if err != nil {
		return nil, err
	}
	return decodeSlice[T](resp)
}

func getListing[T any](ctx context.Context, c *Client, name string, path, query Params) (*Listing[T], error) {
	resp, err := c.Do(ctx, name, path, query, nil)
	if err != nil {
		return nil, err
	}
	return decodeListing[T](resp)
}

func sendObject[T any](ctx context.Context, c *Client, name string, path Params, body any) (*T, error) {
	resp, err := c.Do(ctx, name, path, nil, body)
	if err != nil {
		return nil, err
	}
	return decodeObject[T](resp)
}

func sendSlice[T any](ctx context.Context, c *Client, name string, path Params, body any) ([]T, error) {
	resp, err := c.Do(ctx, name, path, nil, body)
	if err != nil {
		return nil, err
	}
	return decodeSlice[T](resp)
}

func sendEmpty(ctx context.Context, c *Client, name string, path Params, body any) error {
	_, err := c.Do(ctx, name, path, nil, body)
	return err
}

func getFile(ctx context.Context, c *Client, name string, path, query Params, filename string) (*File, error) {
	resp, err := c.do(ctx, name, path, query, nil, "application/pdf")
	if err != nil {
		return nil, err
	}
	return decodeFile(resp, filename), nil
}

func byID(id int) Params {
	return Params{"id": id}
}

func byProject(projectID int) Params {
	return Params{"project_id": projectID}
}

func byProjectAndID(projectID, id int) Params {
	return Params{"project_id": projectID, "id": id}
}

// listQuery starts the query of a list call with pagination and sort.
func listQuery(opts ListOptions) (Params, error) {
	p := Params{}
	if err := opts.apply(p); err != nil {
		return nil, err
	}
	return p, nil
}

// validateInput runs ozzo rules against an input struct and reports the
// failure as a ValidationError before any request is made.
func validateInput(kind string, structPtr any, fields ...*validation.FieldRules) error {
	if err := validation.ValidateStruct(structPtr, fields...); err != nil {
		return &ValidationError{Field: kind, Err: err}
	}
	return nil
}
