package moco

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

// ContactService manages people at companies.
type ContactService struct {
	client *Client
}

// ContactListOptions filters Contacts.List.
type ContactListOptions struct {
	ListOptions
	Tags  []string
	Term  string
	Phone string
}

// ContactInput is the payload of Create and Update. Gender is "F", "M" or
// "U".
type ContactInput struct {
	Firstname   string
	Lastname    string
	Gender      string
	CompanyID   int
	Title       string
	JobPosition string
	MobilePhone string
	WorkFax     string
	WorkPhone   string
	WorkEmail   string
	WorkAddress string
	HomeEmail   string
	HomeAddress string
	Birthday    time.Time
	Info        string
	Tags        []string
}

func (c ContactInput) params() Params {
	return Params{}.
		Set("firstname", c.Firstname).
		Set("lastname", c.Lastname).
		Set("gender", c.Gender).
		Set("customer_id", c.CompanyID).
		Set("title", c.Title).
		Set("job_position", c.JobPosition).
		Set("mobile_phone", c.MobilePhone).
		Set("work_fax", c.WorkFax).
		Set("work_phone", c.WorkPhone).
		Set("work_email", c.WorkEmail).
		Set("work_address", c.WorkAddress).
		Set("home_email", c.HomeEmail).
		Set("home_address", c.HomeAddress).
		Set("birthday", c.Birthday).
		Set("info", c.Info).
		Set("tags", c.Tags)
}

func (c *ContactInput) rules() []*validation.FieldRules {
	return []*validation.FieldRules{
		validation.Field(&c.Gender, validation.In("F", "M", "U")),
		validation.Field(&c.WorkEmail, validation.Match(emailPattern)),
		validation.Field(&c.HomeEmail, validation.Match(emailPattern)),
	}
}

// List returns one page of contacts.
func (s *ContactService) List(ctx context.Context, opts ContactListOptions) (*Listing[models.Contact], error) {
	q, err := listQuery(opts.ListOptions)
	if err != nil {
		return nil, err
	}
	q.Set("tags", opts.Tags).
		Set("term", opts.Term).
		Set("phone", opts.Phone)

	return getListing[models.Contact](ctx, s.client, "contact_getlist", nil, q)
}

// Get returns a single contact.
func (s *ContactService) Get(ctx context.Context, id int) (*models.Contact, error) {
	return getObject[models.Contact](ctx, s.client, "contact_get", byID(id), nil)
}

// Create adds a contact.
func (s *ContactService) Create(ctx context.Context, c ContactInput) (*models.Contact, error) {
	rules := append(c.rules(),
		validation.Field(&c.Lastname, validation.Required),
		validation.Field(&c.Gender, validation.Required),
	)
	if err := validateInput("contact", &c, rules...); err != nil {
		return nil, err
	}
	return sendObject[models.Contact](ctx, s.client, "contact_create", nil, c.params())
}

// Update changes a contact.
func (s *ContactService) Update(ctx context.Context, id int, c ContactInput) (*models.Contact, error) {
	if err := validateInput("contact", &c, c.rules()...); err != nil {
		return nil, err
	}
	return sendObject[models.Contact](ctx, s.client, "contact_update", byID(id), c.params())
}

// Delete removes a contact.
func (s *ContactService) Delete(ctx context.Context, id int) error {
	return sendEmpty(ctx, s.client, "contact_delete", byID(id), nil)
}
