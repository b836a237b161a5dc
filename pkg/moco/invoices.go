package moco

import (
	"context"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

// Invoice states.
const (
	InvoiceStatusDraft         = "draft"
	InvoiceStatusCreated       = "created"
	InvoiceStatusSent          = "sent"
	InvoiceStatusPartiallyPaid = "partially_paid"
	InvoiceStatusPaid          = "paid"
	InvoiceStatusOverdue       = "overdue"
	InvoiceStatusIgnored       = "ignored"
)

var invoiceStates = []any{
	InvoiceStatusDraft, InvoiceStatusCreated, InvoiceStatusSent, InvoiceStatusPartiallyPaid,
	InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusIgnored,
}

// InvoiceService manages outgoing invoices.
type InvoiceService struct {
	client *Client
}

// InvoiceListOptions filters Invoices.List and Invoices.Locked.
type InvoiceListOptions struct {
	ListOptions
	Dates      DateRange
	Status     string
	Identifier string
	Term       string
	CompanyID  int
	ProjectID  int
	Tags       []string
}

func (o InvoiceListOptions) query() (Params, error) {
	q, err := listQuery(o.ListOptions)
	if err != nil {
		return nil, err
	}
	if err := o.Dates.apply(q, "date_from", "date_to"); err != nil {
		return nil, err
	}
	if err := validation.Validate(o.Status, validation.In(invoiceStates...)); err != nil {
		return nil, &ValidationError{Field: "status", Err: err}
	}
	q.Set("status", o.Status).
		Set("identifier", o.Identifier).
		Set("term", o.Term).
		Set("company_id", o.CompanyID).
		Set("project_id", o.ProjectID).
		Set("tags", o.Tags)
	return q, nil
}

// InvoiceCreate is the payload of a new invoice. Items are usually built
// with generator.InvoiceItems.
type InvoiceCreate struct {
	CustomerID       int
	RecipientAddress string
	Date             time.Time
	DueDate          time.Time
	Title            string
	Tax              float64
	Currency         string
	Items            []models.InvoiceItem
	Status           string
	ChangeAddress    string
	Salutation       string
	Footer           string
	Discount         float64
	CashDiscount     float64
	CashDiscountDays int
	ServicePeriod    DateRange
	ProjectID        int
	Tags             []string
	CustomProperties map[string]any
}

func (i *InvoiceCreate) validate() error {
	return validateInput("invoice", i,
		validation.Field(&i.CustomerID, validation.Required),
		validation.Field(&i.RecipientAddress, validation.Required),
		validation.Field(&i.Date, validation.Required),
		validation.Field(&i.DueDate, validation.Required),
		validation.Field(&i.Title, validation.Required),
		validation.Field(&i.Currency, validation.Required, validation.Length(3, 3)),
		validation.Field(&i.Items, validation.Required),
		validation.Field(&i.Status, validation.In(InvoiceStatusDraft, InvoiceStatusCreated)),
		validation.Field(&i.ChangeAddress, validation.In("invoice", "project", "customer")),
		validation.Field(&i.Tax, validation.Min(0.0)),
	)
}

// InvoiceEmail is the payload of Invoices.SendEmail.
type InvoiceEmail struct {
	EmailsTo  []string
	Subject   string
	Text      string
	EmailsCC  []string
	EmailsBCC []string
}

// List returns one page of invoices.
func (s *InvoiceService) List(ctx context.Context, opts InvoiceListOptions) (*Listing[models.Invoice], error) {
	q, err := opts.query()
	if err != nil {
		return nil, err
	}
	return getListing[models.Invoice](ctx, s.client, "invoice_getlist", nil, q)
}

// Locked returns one page of invoices that can no longer be changed.
func (s *InvoiceService) Locked(ctx context.Context, opts InvoiceListOptions) (*Listing[models.Invoice], error) {
	q, err := opts.query()
	if err != nil {
		return nil, err
	}
	return getListing[models.Invoice](ctx, s.client, "invoice_locked", nil, q)
}

// Get returns a single invoice.
func (s *InvoiceService) Get(ctx context.Context, id int) (*models.Invoice, error) {
	return getObject[models.Invoice](ctx, s.client, "invoice_get", byID(id), nil)
}

// PDF downloads the rendered invoice.
func (s *InvoiceService) PDF(ctx context.Context, id int) (*File, error) {
	return getFile(ctx, s.client, "invoice_pdf", byID(id), nil, fmt.Sprintf("invoice-%d.pdf", id))
}

// Timesheet returns the activities billed with an invoice.
func (s *InvoiceService) Timesheet(ctx context.Context, id int) ([]models.Activity, error) {
	return getSlice[models.Activity](ctx, s.client, "invoice_timesheet", byID(id), nil)
}

// TimesheetPDF downloads the rendered timesheet of an invoice.
func (s *InvoiceService) TimesheetPDF(ctx context.Context, id int) (*File, error) {
	return getFile(ctx, s.client, "invoice_timesheet_pdf", byID(id), nil, fmt.Sprintf("invoice-%d-timesheet.pdf", id))
}

// Create issues an invoice.
func (s *InvoiceService) Create(ctx context.Context, i InvoiceCreate) (*models.Invoice, error) {
	if err := i.validate(); err != nil {
		return nil, err
	}
	body := Params{}.
		Put("customer_id", i.CustomerID).
		Put("recipient_address", i.RecipientAddress).
		Put("date", i.Date).
		Put("due_date", i.DueDate).
		Put("title", i.Title).
		Put("tax", i.Tax).
		Put("currency", i.Currency).
		Put("items", i.Items).
		Set("status", i.Status).
		Set("change_address", i.ChangeAddress).
		Set("salutation", i.Salutation).
		Set("footer", i.Footer).
		Set("discount", i.Discount).
		Set("cash_discount", i.CashDiscount).
		Set("cash_discount_days", i.CashDiscountDays).
		Set("project_id", i.ProjectID).
		Set("tags", i.Tags).
		Set("custom_properties", i.CustomProperties)
	if err := i.ServicePeriod.apply(body, "service_period_from", "service_period_to"); err != nil {
		return nil, err
	}
	return sendObject[models.Invoice](ctx, s.client, "invoice_create", nil, body)
}

// UpdateStatus sets the state of an invoice.
func (s *InvoiceService) UpdateStatus(ctx context.Context, id int, status string) error {
	if err := validation.Validate(status, validation.Required, validation.In(invoiceStates...)); err != nil {
		return &ValidationError{Field: "status", Err: err}
	}
	return sendEmpty(ctx, s.client, "invoice_update_status", byID(id), Params{}.Put("status", status))
}

// SendEmail mails an invoice to the given recipients.
func (s *InvoiceService) SendEmail(ctx context.Context, id int, e InvoiceEmail) error {
	if err := validateInput("email", &e,
		validation.Field(&e.EmailsTo, validation.Required, validation.Each(validation.Match(emailPattern))),
		validation.Field(&e.Subject, validation.Required),
		validation.Field(&e.Text, validation.Required),
		validation.Field(&e.EmailsCC, validation.Each(validation.Match(emailPattern))),
		validation.Field(&e.EmailsBCC, validation.Each(validation.Match(emailPattern))),
	); err != nil {
		return err
	}
	body := Params{}.
		Put("emails_to", e.EmailsTo).
		Put("subject", e.Subject).
		Put("text", e.Text).
		Set("emails_cc", e.EmailsCC).
		Set("emails_bcc", e.EmailsBCC)
	return sendEmpty(ctx, s.client, "invoice_send_email", byID(id), body)
}

// Delete removes a draft invoice.
func (s *InvoiceService) Delete(ctx context.Context, id int) error {
	return sendEmpty(ctx, s.client, "invoice_delete", byID(id), nil)
}

// Attachments lists the files attached to an invoice.
func (s *InvoiceService) Attachments(ctx context.Context, id int) ([]models.Attachment, error) {
	return getSlice[models.Attachment](ctx, s.client, "invoice_attachments", byID(id), nil)
}
