package moco

import (
	"context"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UserService manages staff members.
type UserService struct {
	client *Client
}

// UserListOptions filters Users.List.
type UserListOptions struct {
	ListOptions
	IncludeArchived bool
	Tags            []string
}

// UserCreate is the payload of a new user.
type UserCreate struct {
	Firstname        string
	Lastname         string
	Email            string
	Password         string
	UnitID           int
	Active           *bool
	Extern           *bool
	Language         string
	MobilePhone      string
	WorkPhone        string
	HomeAddress      string
	Birthday         time.Time
	IBAN             string
	Info             string
	Tags             []string
	CustomProperties map[string]any
	WelcomeEmail     *bool
}

func (u UserCreate) params() Params {
	return Params{}.
		Put("firstname", u.Firstname).
		Put("lastname", u.Lastname).
		Put("email", u.Email).
		Set("password", u.Password).
		Put("unit_id", u.UnitID).
		Set("active", u.Active).
		Set("extern", u.Extern).
		Set("language", u.Language).
		Set("mobile_phone", u.MobilePhone).
		Set("work_phone", u.WorkPhone).
		Set("home_address", u.HomeAddress).
		Set("birthday", u.Birthday).
		Set("iban", u.IBAN).
		Set("info", u.Info).
		Set("tags", u.Tags).
		Set("custom_properties", u.CustomProperties).
		Set("welcome_email", u.WelcomeEmail)
}

// UserUpdate changes a user. Zero and nil fields are left untouched.
type UserUpdate struct {
	Firstname        string
	Lastname         string
	Email            string
	Password         string
	UnitID           int
	Active           *bool
	Extern           *bool
	Language         string
	MobilePhone      *string
	WorkPhone        *string
	HomeAddress      *string
	Birthday         time.Time
	IBAN             *string
	Info             *string
	Tags             []string
	CustomProperties map[string]any
}

func (u UserUpdate) params() Params {
	return Params{}.
		Set("firstname", u.Firstname).
		Set("lastname", u.Lastname).
		Set("email", u.Email).
		Set("password", u.Password).
		Set("unit_id", u.UnitID).
		Set("active", u.Active).
		Set("extern", u.Extern).
		Set("language", u.Language).
		Set("mobile_phone", u.MobilePhone).
		Set("work_phone", u.WorkPhone).
		Set("home_address", u.HomeAddress).
		Set("birthday", u.Birthday).
		Set("iban", u.IBAN).
		Set("info", u.Info).
		Set("tags", u.Tags).
		Set("custom_properties", u.CustomProperties)
}

// List returns one page of users.
func (s *UserService) List(ctx context.Context, opts UserListOptions) (*Listing[models.User], error) {
	q, err := listQuery(opts.ListOptions)
	if err != nil {
		return nil, err
	}
	q.Set("include_archived", opts.IncludeArchived).Set("tags", opts.Tags)

	return getListing[models.User](ctx, s.client, "user_getlist", nil, q)
}

// Get returns a single user.
func (s *UserService) Get(ctx context.Context, id int) (*models.User, error) {
	return getObject[models.User](ctx, s.client, "user_get", byID(id), nil)
}

// Create adds a staff member.
func (s *UserService) Create(ctx context.Context, u UserCreate) (*models.User, error) {
	if err := validateInput("user", &u,
		validation.Field(&u.Firstname, validation.Required),
		validation.Field(&u.Lastname, validation.Required),
		validation.Field(&u.Email, validation.Required, validation.Match(emailPattern)),
		validation.Field(&u.UnitID, validation.Required),
	); err != nil {
		return nil, err
	}
	return sendObject[models.User](ctx, s.client, "user_create", nil, u.params())
}

// Update changes a user.
func (s *UserService) Update(ctx context.Context, id int, u UserUpdate) (*models.User, error) {
	if err := validateInput("user", &u,
		validation.Field(&u.Email, validation.Match(emailPattern)),
	); err != nil {
		return nil, err
	}
	return sendObject[models.User](ctx, s.client, "user_update", byID(id), u.params())
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, id int) error {
	return sendEmpty(ctx, s.client, "user_delete", byID(id), nil)
}

// PerformanceReport returns target and actual hours of a user for a year.
// The report has no fixed schema; decode it with Record.Decode.
func (s *UserService) PerformanceReport(ctx context.Context, id, year int) (models.Record, error) {
	q := Params{}.Set("year", year)
	resp, err := s.client.Do(ctx, "user_performance_report", byID(id), q, nil)
	if err != nil {
		return nil, err
	}
	return resp.Record()
}
