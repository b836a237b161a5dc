package moco

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

// CompanyService manages customers, suppliers and organizations.
type CompanyService struct {
	client *Client
}

// CompanyListOptions filters Companies.List.
type CompanyListOptions struct {
	ListOptions
	Type       string
	Tags       []string
	Identifier string
	Term       string
}

// CompanyInput is the payload of Create and Update.
type CompanyInput struct {
	Name                  string
	Type                  string
	Website               string
	Email                 string
	BillingEmailCC        string
	Phone                 string
	Fax                   string
	Address               string
	Info                  string
	Identifier            string
	Currency              string
	BillingTax            float64
	DefaultInvoiceDueDays int
	CountryCode           string
	VATIdentifier         string
	IBAN                  string
	Footer                string
	UserID                int
	Tags                  []string
	CustomProperties      map[string]any
}

func (c CompanyInput) params() Params {
	return Params{}.
		Set("name", c.Name).
		Set("type", c.Type).
		Set("website", c.Website).
		Set("email", c.Email).
		Set("billing_email_cc", c.BillingEmailCC).
		Set("phone", c.Phone).
		Set("fax", c.Fax).
		Set("address", c.Address).
		Set("info", c.Info).
		Set("identifier", c.Identifier).
		Set("currency", c.Currency).
		Set("billing_tax", c.BillingTax).
		Set("default_invoice_due_days", c.DefaultInvoiceDueDays).
		Set("country_code", c.CountryCode).
		Set("vat_identifier", c.VATIdentifier).
		Set("iban", c.IBAN).
		Set("footer", c.Footer).
		Set("user_id", c.UserID).
		Set("tags", c.Tags).
		Set("custom_properties", c.CustomProperties)
}

var companyTypes = []any{
	models.CompanyTypeCustomer, models.CompanyTypeSupplier, models.CompanyTypeOrganization,
}

// List returns one page of companies.
func (s *CompanyService) List(ctx context.Context, opts CompanyListOptions) (*Listing[models.Company], error) {
	q, err := listQuery(opts.ListOptions)
	if err != nil {
		return nil, err
	}
	if err := validation.Validate(opts.Type, validation.In(companyTypes...)); err != nil {
		return nil, &ValidationError{Field: "type", Err: err}
	}
	q.Set("type", opts.Type).
		Set("tags", opts.Tags).
		Set("identifier", opts.Identifier).
		Set("term", opts.Term)

	return getListing[models.Company](ctx, s.client, "company_getlist", nil, q)
}

// Get returns a single company.
func (s *CompanyService) Get(ctx context.Context, id int) (*models.Company, error) {
	return getObject[models.Company](ctx, s.client, "company_get", byID(id), nil)
}

// Create adds a company. Customers need a currency.
func (s *CompanyService) Create(ctx context.Context, c CompanyInput) (*models.Company, error) {
	if err := validateInput("company", &c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Type, validation.Required, validation.In(companyTypes...)),
		validation.Field(&c.Currency,
			validation.Required.When(c.Type == models.CompanyTypeCustomer),
			validation.Length(3, 3),
		),
		validation.Field(&c.Email, validation.Match(emailPattern)),
		validation.Field(&c.CountryCode, validation.Length(2, 2)),
	); err != nil {
		return nil, err
	}
	return sendObject[models.Company](ctx, s.client, "company_create", nil, c.params())
}

// Update changes a company.
func (s *CompanyService) Update(ctx context.Context, id int, c CompanyInput) (*models.Company, error) {
	if err := validateInput("company", &c,
		validation.Field(&c.Type, validation.In(companyTypes...)),
		validation.Field(&c.Email, validation.Match(emailPattern)),
	); err != nil {
		return nil, err
	}
	return sendObject[models.Company](ctx, s.client, "company_update", byID(id), c.params())
}

// Archive hides a company from selections.
func (s *CompanyService) Archive(ctx context.Context, id int) (*models.Company, error) {
	return sendObject[models.Company](ctx, s.client, "company_archive", byID(id), nil)
}

// Unarchive restores an archived company.
func (s *CompanyService) Unarchive(ctx context.Context, id int) (*models.Company, error) {
	return sendObject[models.Company](ctx, s.client, "company_unarchive", byID(id), nil)
}
