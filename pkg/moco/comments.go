package moco

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

// Record types that accept comments and taggings.
const (
	EntityCompany  = "Company"
	EntityContact  = "Contact"
	EntityDeal     = "Deal"
	EntityProject  = "Project"
	EntityOffer    = "Offer"
	EntityInvoice  = "Invoice"
	EntityPurchase = "Purchase"
	EntityUser     = "User"
)

var commentableTypes = []any{
	EntityCompany, EntityContact, EntityDeal, EntityProject,
	EntityOffer, EntityInvoice, EntityPurchase, EntityUser,
}

// CommentService manages notes on other records.
type CommentService struct {
	client *Client
}

// CommentListOptions filters Comments.List.
type CommentListOptions struct {
	ListOptions
	Dates           DateRange
	CommentableType string
	CommentableID   int
	UserID          int
	Manual          *bool
}

// List returns one page of comments.
func (s *CommentService) List(ctx context.Context, opts CommentListOptions) (*Listing[models.Comment], error) {
	q, err := listQuery(opts.ListOptions)
	if err != nil {
		return nil, err
	}
	if err := opts.Dates.apply(q, "date_from", "date_to"); err != nil {
		return nil, err
	}
	if err := validation.Validate(opts.CommentableType, validation.In(commentableTypes...)); err != nil {
		return nil, &ValidationError{Field: "commentable_type", Err: err}
	}
	q.Set("commentable_type", opts.CommentableType).
		Set("commentable_id", opts.CommentableID).
		Set("user_id", opts.UserID).
		Set("manual", opts.Manual)

	return getListing[models.Comment](ctx, s.client, "comment_getlist", nil, q)
}

// Get returns a single comment.
func (s *CommentService) Get(ctx context.Context, id int) (*models.Comment, error) {
	return getObject[models.Comment](ctx, s.client, "comment_get", byID(id), nil)
}

// Create attaches a comment to a record.
func (s *CommentService) Create(ctx context.Context, c models.CommentEntry) (*models.Comment, error) {
	if err := validateComment(&c); err != nil {
		return nil, err
	}
	body := Params{}.
		Put("commentable_id", c.CommentableID).
		Put("commentable_type", c.CommentableType).
		Put("text", c.Text)
	return sendObject[models.Comment](ctx, s.client, "comment_create", nil, body)
}

// BulkCreate attaches the same text to several records of one type.
func (s *CommentService) BulkCreate(ctx context.Context, commentableType string, commentableIDs []int, text string) ([]models.Comment, error) {
	entry := models.CommentEntry{CommentableType: commentableType, CommentableID: -1, Text: text}
	if err := validateComment(&entry); err != nil {
		return nil, err
	}
	if len(commentableIDs) == 0 {
		return nil, &ValidationError{Field: "commentable_ids", Err: validation.ErrRequired}
	}
	body := Params{}.
		Put("commentable_ids", commentableIDs).
		Put("commentable_type", commentableType).
		Put("text", text)
	return sendSlice[models.Comment](ctx, s.client, "comment_create_bulk", nil, body)
}

// Update replaces the text of a comment.
func (s *CommentService) Update(ctx context.Context, id int, text string) (*models.Comment, error) {
	if err := validation.Validate(text, validation.Required); err != nil {
		return nil, &ValidationError{Field: "text", Err: err}
	}
	return sendObject[models.Comment](ctx, s.client, "comment_update", byID(id), Params{}.Put("text", text))
}

// Delete removes a comment.
func (s *CommentService) Delete(ctx context.Context, id int) error {
	return sendEmpty(ctx, s.client, "comment_delete", byID(id), nil)
}

func validateComment(c *models.CommentEntry) error {
	return validateInput("comment", c,
		validation.Field(&c.CommentableID, validation.Required),
		validation.Field(&c.CommentableType, validation.Required, validation.In(commentableTypes...)),
		validation.Field(&c.Text, validation.Required),
	)
}
