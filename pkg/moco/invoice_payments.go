package moco

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

// InvoicePaymentService manages payments received for invoices.
type InvoicePaymentService struct {
	client *Client
}

// InvoicePaymentListOptions filters InvoicePayments.List.
type InvoicePaymentListOptions struct {
	ListOptions
	Dates     DateRange
	InvoiceID int
}

// InvoicePaymentInput is the payload of Create and Update.
type InvoicePaymentInput struct {
	Date        time.Time
	InvoiceID   int
	PaidTotal   float64
	Currency    string
	Description string
}

func (p InvoicePaymentInput) params() Params {
	return Params{}.
		Set("date", p.Date).
		Set("invoice_id", p.InvoiceID).
		Set("paid_total", p.PaidTotal).
		Set("currency", p.Currency).
		Set("description", p.Description)
}

// List returns one page of payments.
func (s *InvoicePaymentService) List(ctx context.Context, opts InvoicePaymentListOptions) (*Listing[models.InvoicePayment], error) {
	q, err := listQuery(opts.ListOptions)
	if err != nil {
		return nil, err
	}
	if err := opts.Dates.apply(q, "date_from", "date_to"); err != nil {
		return nil, err
	}
	q.Set("invoice_id", opts.InvoiceID)

	return getListing[models.InvoicePayment](ctx, s.client, "invoice_payment_getlist", nil, q)
}

// Get returns a single payment.
func (s *InvoicePaymentService) Get(ctx context.Context, id int) (*models.InvoicePayment, error) {
	return getObject[models.InvoicePayment](ctx, s.client, "invoice_payment_get", byID(id), nil)
}

// Create records a payment.
func (s *InvoicePaymentService) Create(ctx context.Context, p InvoicePaymentInput) (*models.InvoicePayment, error) {
	if err := validateInput("invoice_payment", &p,
		validation.Field(&p.Date, validation.Required),
		validation.Field(&p.PaidTotal, validation.Required),
		validation.Field(&p.Currency, validation.Required, validation.Length(3, 3)),
	); err != nil {
		return nil, err
	}
	return sendObject[models.InvoicePayment](ctx, s.client, "invoice_payment_create", nil, p.params())
}

// BulkCreate records several payments in one call. Entries are usually
// built with generator.InvoicePayments.
func (s *InvoicePaymentService) BulkCreate(ctx context.Context, entries []models.InvoicePaymentEntry) ([]models.InvoicePayment, error) {
	if len(entries) == 0 {
		return nil, &ValidationError{Field: "bulk_data", Err: validation.ErrRequired}
	}
	return sendSlice[models.InvoicePayment](ctx, s.client, "invoice_payment_create_bulk", nil, Params{"bulk_data": entries})
}

// Update changes a payment.
func (s *InvoicePaymentService) Update(ctx context.Context, id int, p InvoicePaymentInput) (*models.InvoicePayment, error) {
	return sendObject[models.InvoicePayment](ctx, s.client, "invoice_payment_update", byID(id), p.params())
}

// Delete removes a payment.
func (s *InvoicePaymentService) Delete(ctx context.Context, id int) error {
	return sendEmpty(ctx, s.client, "invoice_payment_delete", byID(id), nil)
}
