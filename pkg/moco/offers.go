package moco

import (
	"context"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

// Offer states.
const (
	OfferStatusCreated         = "created"
	OfferStatusSent            = "sent"
	OfferStatusAccepted        = "accepted"
	OfferStatusPartiallyBilled = "partially_billed"
	OfferStatusBilled          = "billed"
	OfferStatusArchived        = "archived"
)

var offerStates = []any{
	OfferStatusCreated, OfferStatusSent, OfferStatusAccepted,
	OfferStatusPartiallyBilled, OfferStatusBilled, OfferStatusArchived,
}

// OfferService manages quotes.
type OfferService struct {
	client *Client
}

// OfferListOptions filters Offers.List.
type OfferListOptions struct {
	ListOptions
	Dates      DateRange
	Status     string
	Identifier string
	CompanyID  int
	ProjectID  int
	DealID     int
	Tags       []string
}

// OfferCreate is the payload of a new offer. It is attached to exactly one
// of DealID, ProjectID and CompanyID. Items are usually built with
// generator.OfferItems.
type OfferCreate struct {
	DealID           int
	ProjectID        int
	CompanyID        int
	RecipientAddress string
	Date             time.Time
	DueDate          time.Time
	Title            string
	Tax              float64
	Currency         string
	Items            []models.OfferItem
	ChangeAddress    string
	Salutation       string
	Footer           string
	Discount         float64
	ContactID        int
	Tags             []string
}

// List returns one page of offers.
func (s *OfferService) List(ctx context.Context, opts OfferListOptions) (*Listing[models.Offer], error) {
	q, err := listQuery(opts.ListOptions)
	if err != nil {
		return nil, err
	}
	if err := opts.Dates.apply(q, "from", "to"); err != nil {
		return nil, err
	}
	if err := validation.Validate(opts.Status, validation.In(offerStates...)); err != nil {
		return nil, &ValidationError{Field: "status", Err: err}
	}
	q.Set("status", opts.Status).
		Set("identifier", opts.Identifier).
		Set("company_id", opts.CompanyID).
		Set("project_id", opts.ProjectID).
		Set("deal_id", opts.DealID).
		Set("tags", opts.Tags)

	return getListing[models.Offer](ctx, s.client, "offer_getlist", nil, q)
}

// Get returns a single offer.
func (s *OfferService) Get(ctx context.Context, id int) (*models.Offer, error) {
	return getObject[models.Offer](ctx, s.client, "offer_get", byID(id), nil)
}

// PDF downloads the rendered offer.
func (s *OfferService) PDF(ctx context.Context, id int) (*File, error) {
	return getFile(ctx, s.client, "offer_pdf", byID(id), nil, fmt.Sprintf("offer-%d.pdf", id))
}

// Create issues an offer.
func (s *OfferService) Create(ctx context.Context, o OfferCreate) (*models.Offer, error) {
	targets := 0
	for _, id := range []int{o.DealID, o.ProjectID, o.CompanyID} {
		if id != 0 {
			targets++
		}
	}
	if targets != 1 {
		return nil, &ValidationError{
			Field: "offer",
			Err:   fmt.Errorf("exactly one of deal_id, project_id and company_id is required, got %d", targets),
		}
	}
	if err := validateInput("offer", &o,
		validation.Field(&o.RecipientAddress, validation.Required),
		validation.Field(&o.Date, validation.Required),
		validation.Field(&o.DueDate, validation.Required),
		validation.Field(&o.Title, validation.Required),
		validation.Field(&o.Items, validation.Required),
		validation.Field(&o.Currency, validation.Length(3, 3)),
		validation.Field(&o.ChangeAddress, validation.In("offer", "project", "customer")),
		validation.Field(&o.Tax, validation.Min(0.0)),
	); err != nil {
		return nil, err
	}
	body := Params{}.
		Set("deal_id", o.DealID).
		Set("project_id", o.ProjectID).
		Set("company_id", o.CompanyID).
		Put("recipient_address", o.RecipientAddress).
		Put("date", o.Date).
		Put("due_date", o.DueDate).
		Put("title", o.Title).
		Put("tax", o.Tax).
		Put("items", o.Items).
		Set("currency", o.Currency).
		Set("change_address", o.ChangeAddress).
		Set("salutation", o.Salutation).
		Set("footer", o.Footer).
		Set("discount", o.Discount).
		Set("contact_id", o.ContactID).
		Set("tags", o.Tags)
	return sendObject[models.Offer](ctx, s.client, "offer_create", nil, body)
}

// UpdateStatus sets the state of an offer.
func (s *OfferService) UpdateStatus(ctx context.Context, id int, status string) error {
	if err := validation.Validate(status, validation.Required, validation.In(offerStates...)); err != nil {
		return &ValidationError{Field: "status", Err: err}
	}
	return sendEmpty(ctx, s.client, "offer_update_status", byID(id), Params{}.Put("status", status))
}
