package moco

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

// Purchase states and payment methods.
const (
	PurchaseStatusPending  = "pending"
	PurchaseStatusApproved = "approved"

	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodDirectDebit  = "direct_debit"
	PaymentMethodCreditCard   = "credit_card"
	PaymentMethodPaypal       = "paypal"
	PaymentMethodCash         = "cash"
)

// PurchaseService manages incoming invoices and receipts.
type PurchaseService struct {
	client *Client
}

// PurchaseListOptions filters Purchases.List.
type PurchaseListOptions struct {
	ListOptions
	Dates       DateRange
	CategoryID  int
	Term        string
	CompanyID   int
	Status      string
	Tags        []string
	Unpaid      bool
	PaymentDate time.Time
}

// PurchaseCreate is the payload of a new purchase. Items are usually built
// with generator.PurchaseItems.
type PurchaseCreate struct {
	Date              time.Time
	Currency          string
	PaymentMethod     string
	Items             []models.PurchaseItem
	DueDate           time.Time
	ServicePeriod     DateRange
	Status            string
	CompanyID         int
	UserID            int
	ReceiptIdentifier string
	Info              string
	IBAN              string
	Reference         string
	CustomProperties  map[string]any
	Tags              []string
	File              *models.PurchaseDocument
}

// List returns one page of purchases.
func (s *PurchaseService) List(ctx context.Context, opts PurchaseListOptions) (*Listing[models.Purchase], error) {
	q, err := listQuery(opts.ListOptions)
	if err != nil {
		return nil, err
	}
	if err := opts.Dates.apply(q, "start_date", "end_date"); err != nil {
		return nil, err
	}
	q.Set("category_id", opts.CategoryID).
		Set("term", opts.Term).
		Set("company_id", opts.CompanyID).
		Set("status", opts.Status).
		Set("tags", opts.Tags).
		Set("unpaid", opts.Unpaid).
		Set("payment_date", opts.PaymentDate)

	return getListing[models.Purchase](ctx, s.client, "purchase_getlist", nil, q)
}

// Get returns a single purchase.
func (s *PurchaseService) Get(ctx context.Context, id int) (*models.Purchase, error) {
	return getObject[models.Purchase](ctx, s.client, "purchase_get", byID(id), nil)
}

// Create books a purchase.
func (s *PurchaseService) Create(ctx context.Context, p PurchaseCreate) (*models.Purchase, error) {
	if err := validateInput("purchase", &p,
		validation.Field(&p.Date, validation.Required),
		validation.Field(&p.Currency, validation.Required, validation.Length(3, 3)),
		validation.Field(&p.PaymentMethod, validation.Required, validation.In(
			PaymentMethodBankTransfer, PaymentMethodDirectDebit, PaymentMethodCreditCard,
			PaymentMethodPaypal, PaymentMethodCash,
		)),
		validation.Field(&p.Items, validation.Required),
		validation.Field(&p.Status, validation.In(PurchaseStatusPending, PurchaseStatusApproved)),
	); err != nil {
		return nil, err
	}
	body := Params{}.
		Put("date", p.Date).
		Put("currency", p.Currency).
		Put("payment_method", p.PaymentMethod).
		Put("items", p.Items).
		Set("due_date", p.DueDate).
		Set("status", p.Status).
		Set("company_id", p.CompanyID).
		Set("user_id", p.UserID).
		Set("receipt_identifier", p.ReceiptIdentifier).
		Set("info", p.Info).
		Set("iban", p.IBAN).
		Set("reference", p.Reference).
		Set("custom_properties", p.CustomProperties).
		Set("tags", p.Tags).
		Set("file", p.File)
	if err := p.ServicePeriod.apply(body, "service_period_from", "service_period_to"); err != nil {
		return nil, err
	}
	return sendObject[models.Purchase](ctx, s.client, "purchase_create", nil, body)
}

// Delete removes a purchase.
func (s *PurchaseService) Delete(ctx context.Context, id int) error {
	return sendEmpty(ctx, s.client, "purchase_delete", byID(id), nil)
}

// UpdateStatus moves a purchase between pending and approved.
func (s *PurchaseService) UpdateStatus(ctx context.Context, id int, status string) error {
	if err := validation.Validate(status, validation.Required, validation.In(PurchaseStatusPending, PurchaseStatusApproved)); err != nil {
		return &ValidationError{Field: "status", Err: err}
	}
	return sendEmpty(ctx, s.client, "purchase_update_status", byID(id), Params{}.Put("status", status))
}

// StoreDocument attaches a receipt file to a purchase.
func (s *PurchaseService) StoreDocument(ctx context.Context, id int, doc models.PurchaseDocument) error {
	if err := validateInput("file", &doc,
		validation.Field(&doc.Filename, validation.Required),
		validation.Field(&doc.Base64, validation.Required),
	); err != nil {
		return err
	}
	return sendEmpty(ctx, s.client, "purchase_store_document", byID(id), Params{}.Put("file", doc))
}

// PurchaseCategoryService reads booking categories.
type PurchaseCategoryService struct {
	client *Client
}

// List returns one page of purchase categories.
func (s *PurchaseCategoryService) List(ctx context.Context, opts ListOptions) (*Listing[models.PurchaseCategory], error) {
	q, err := listQuery(opts)
	if err != nil {
		return nil, err
	}
	return getListing[models.PurchaseCategory](ctx, s.client, "purchase_category_getlist", nil, q)
}

// Get returns a single category.
func (s *PurchaseCategoryService) Get(ctx context.Context, id int) (*models.PurchaseCategory, error) {
	return getObject[models.PurchaseCategory](ctx, s.client, "purchase_category_get", byID(id), nil)
}
