package models

// Project is a customer or internal project.
type Project struct {
	ID               int               `json:"id"`
	Identifier       string            `json:"identifier"`
	Name             string            `json:"name"`
	Active           bool              `json:"active"`
	Billable         bool              `json:"billable"`
	FixedPrice       bool              `json:"fixed_price"`
	Retainer         bool              `json:"retainer"`
	StartDate        Date              `json:"start_date"`
	FinishDate       Date              `json:"finish_date"`
	Color            string            `json:"color"`
	Currency         string            `json:"currency"`
	BillingVariant   string            `json:"billing_variant"`
	BillingAddress   string            `json:"billing_address"`
	BillingEmailTo   string            `json:"billing_email_to"`
	BillingEmailCC   string            `json:"billing_email_cc"`
	BillingNotes     string            `json:"billing_notes"`
	Budget           float64           `json:"budget"`
	BudgetMonthly    float64           `json:"budget_monthly"`
	BudgetExpenses   float64           `json:"budget_expenses"`
	HourlyRate       float64           `json:"hourly_rate"`
	Info             string            `json:"info"`
	Tags             []string          `json:"tags"`
	CustomProperties map[string]any    `json:"custom_properties"`
	Leader           UserRef           `json:"leader"`
	CoLeader         *UserRef          `json:"co_leader"`
	Customer         CompanyRef        `json:"customer"`
	Deal             *DealRef          `json:"deal"`
	Tasks            []ProjectTask     `json:"tasks"`
	Contracts        []ProjectContract `json:"contracts"`
	Timestamps
}

// ProjectTask is a billable or internal task of a project.
type ProjectTask struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Active     bool    `json:"active"`
	Billable   bool    `json:"billable"`
	Budget     float64 `json:"budget"`
	HourlyRate float64 `json:"hourly_rate"`
	Timestamps
}

// ProjectContract staffs a user on a project.
type ProjectContract struct {
	ID         int     `json:"id"`
	UserID     int     `json:"user_id"`
	Firstname  string  `json:"firstname"`
	Lastname   string  `json:"lastname"`
	Billable   bool    `json:"billable"`
	Active     bool    `json:"active"`
	Budget     float64 `json:"budget"`
	HourlyRate float64 `json:"hourly_rate"`
	Timestamps
}

// ProjectExpense is an additional service or cost booked on a project.
type ProjectExpense struct {
	ID                 int            `json:"id"`
	Date               Date           `json:"date"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	Quantity           float64        `json:"quantity"`
	Unit               string         `json:"unit"`
	UnitPrice          float64        `json:"unit_price"`
	UnitCost           float64        `json:"unit_cost"`
	Price              float64        `json:"price"`
	Cost               float64        `json:"cost"`
	Currency           string         `json:"currency"`
	Billable           bool           `json:"billable"`
	BudgetRelevant     bool           `json:"budget_relevant"`
	Billed             bool           `json:"billed"`
	InvoiceID          int            `json:"invoice_id"`
	RecurringExpenseID int            `json:"recurring_expense_id"`
	Project            ProjectRef     `json:"project"`
	CustomProperties   map[string]any `json:"custom_properties"`
	Timestamps
}

// ProjectExpenseEntry is the payload of one expense in a bulk create.
type ProjectExpenseEntry struct {
	Date           Date    `json:"date"`
	Title          string  `json:"title"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	UnitPrice      float64 `json:"unit_price"`
	UnitCost       float64 `json:"unit_cost"`
	Description    string  `json:"description,omitempty"`
	Billable       *bool   `json:"billable,omitempty"`
	BudgetRelevant *bool   `json:"budget_relevant,omitempty"`
}

// RecurringExpense is an expense Moco books automatically every period.
type RecurringExpense struct {
	ID                     int        `json:"id"`
	StartDate              Date       `json:"start_date"`
	FinishDate             Date       `json:"finish_date"`
	RecurNextDate          Date       `json:"recur_next_date"`
	Period                 string     `json:"period"`
	Title                  string     `json:"title"`
	Description            string     `json:"description"`
	Quantity               float64    `json:"quantity"`
	Unit                   string     `json:"unit"`
	UnitPrice              float64    `json:"unit_price"`
	UnitCost               float64    `json:"unit_cost"`
	Price                  float64    `json:"price"`
	Cost                   float64    `json:"cost"`
	Currency               string     `json:"currency"`
	Billable               bool       `json:"billable"`
	BudgetRelevant         bool       `json:"budget_relevant"`
	ServicePeriodDirection string     `json:"service_period_direction"`
	Project                ProjectRef `json:"project"`
	Timestamps
}

// PaymentSchedule is a planned partial payment of a fixed-price project.
type PaymentSchedule struct {
	ID          int        `json:"id"`
	Date        Date       `json:"date"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	NetTotal    float64    `json:"net_total"`
	Checked     bool       `json:"checked"`
	Billed      bool       `json:"billed"`
	Project     ProjectRef `json:"project"`
	Timestamps
}
