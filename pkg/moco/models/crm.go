package models

import "time"

// Company types.
const (
	CompanyTypeCustomer     = "customer"
	CompanyTypeSupplier     = "supplier"
	CompanyTypeOrganization = "organization"
)

// Company is a customer, supplier or organization.
type Company struct {
	ID                    int            `json:"id"`
	Type                  string         `json:"type"`
	Name                  string         `json:"name"`
	Website               string         `json:"website"`
	Email                 string         `json:"email"`
	BillingEmailCC        string         `json:"billing_email_cc"`
	Phone                 string         `json:"phone"`
	Fax                   string         `json:"fax"`
	Address               string         `json:"address"`
	Info                  string         `json:"info"`
	Identifier            string         `json:"identifier"`
	Currency              string         `json:"currency"`
	BillingTax            float64        `json:"billing_tax"`
	DefaultInvoiceDueDays int            `json:"default_invoice_due_days"`
	CountryCode           string         `json:"country_code"`
	VATIdentifier         string         `json:"vat_identifier"`
	IBAN                  string         `json:"iban"`
	DebitNumber           int            `json:"debit_number"`
	CreditNumber          int            `json:"credit_number"`
	Footer                string         `json:"footer"`
	ArchivedOn            Date           `json:"archived_on"`
	Tags                  []string       `json:"tags"`
	CustomProperties      map[string]any `json:"custom_properties"`
	User                  *UserRef       `json:"user"`
	Projects              []ProjectRef   `json:"projects"`
	Timestamps
}

// Contact is a person at a company.
type Contact struct {
	ID          int         `json:"id"`
	Gender      string      `json:"gender"`
	Firstname   string      `json:"firstname"`
	Lastname    string      `json:"lastname"`
	Title       string      `json:"title"`
	JobPosition string      `json:"job_position"`
	MobilePhone string      `json:"mobile_phone"`
	WorkFax     string      `json:"work_fax"`
	WorkPhone   string      `json:"work_phone"`
	WorkEmail   string      `json:"work_email"`
	WorkAddress string      `json:"work_address"`
	HomeEmail   string      `json:"home_email"`
	HomeAddress string      `json:"home_address"`
	Birthday    Date        `json:"birthday"`
	Info        string      `json:"info"`
	AvatarURL   string      `json:"avatar_url"`
	Tags        []string    `json:"tags"`
	Company     *CompanyRef `json:"company"`
	Timestamps
}

// Deal is a sales opportunity.
type Deal struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	Status       string      `json:"status"`
	ReminderDate Date        `json:"reminder_date"`
	Money        float64     `json:"money"`
	Currency     string      `json:"currency"`
	Info         string      `json:"info"`
	User         UserRef     `json:"user"`
	Company      *CompanyRef `json:"company"`
	Category     CategoryRef `json:"category"`
	Timestamps
}

// DealCategory is a sales stage with a win probability in percent.
type DealCategory struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Probability int    `json:"probability"`
	Timestamps
}

// Comment is a note attached to another record.
type Comment struct {
	ID              int     `json:"id"`
	CommentableID   int     `json:"commentable_id"`
	CommentableType string  `json:"commentable_type"`
	Text            string  `json:"text"`
	Manual          bool    `json:"manual"`
	User            UserRef `json:"user"`
	Timestamps
}

// CommentEntry is the payload of one comment in a bulk create.
type CommentEntry struct {
	CommentableID   int    `json:"commentable_id"`
	CommentableType string `json:"commentable_type"`
	Text            string `json:"text"`
}

// Session is the result of authenticating or verifying an api key.
type Session struct {
	APIKey    string    `json:"api_key"`
	UserID    int       `json:"user_id"`
	UUID      string    `json:"uuid"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Rate is an hourly rate in one currency.
type Rate struct {
	Currency   string  `json:"currency"`
	HourlyRate float64 `json:"hourly_rate"`
}

// TaskRate holds the rates configured for a task name.
type TaskRate struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Rates []Rate `json:"rates"`
}

// UserRate holds the rates configured for a user.
type UserRate struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
	Rates    []Rate `json:"rates"`
}

// HourlyRates are the account or customer specific rates.
type HourlyRates struct {
	DefaultsRates []Rate     `json:"defaults_rates"`
	Tasks         []TaskRate `json:"tasks"`
	Users         []UserRate `json:"users"`
}

// FixedCostAmount is the amount of a fixed cost in one month.
type FixedCostAmount struct {
	Year   int     `json:"year"`
	Month  int     `json:"month"`
	Amount float64 `json:"amount"`
}

// FixedCost is a recurring account-level cost.
type FixedCost struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Costs       []FixedCostAmount `json:"costs"`
}
