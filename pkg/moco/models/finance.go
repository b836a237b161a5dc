package models

// Item types shared by invoice and offer positions.
const (
	ItemTypeTitle       = "title"
	ItemTypeDescription = "description"
	ItemTypeItem        = "item"
	ItemTypeSeparator   = "separator"
	ItemTypeSubtotal    = "subtotal-part"
	ItemTypeSubtotalAll = "subtotal-all"
	ItemTypePageBreak   = "page-break"
)

// InvoiceItem is one position of an invoice. Either Quantity and UnitPrice
// or NetTotal (a lump sum) is set on items of type "item".
type InvoiceItem struct {
	ID                int      `json:"id,omitempty"`
	Type              string   `json:"type"`
	Title             string   `json:"title,omitempty"`
	Description       string   `json:"description,omitempty"`
	Quantity          float64  `json:"quantity,omitempty"`
	Unit              string   `json:"unit,omitempty"`
	UnitPrice         float64  `json:"unit_price,omitempty"`
	NetTotal          float64  `json:"net_total,omitempty"`
	ActivityIDs       []int    `json:"activity_ids,omitempty"`
	ExpenseIDs        []int    `json:"expense_ids,omitempty"`
	ServicePeriodFrom *Date    `json:"service_period_from,omitempty"`
	ServicePeriodTo   *Date    `json:"service_period_to,omitempty"`
	Optional          bool     `json:"optional,omitempty"`
	Tags              []string `json:"tags,omitempty"`
}

// Invoice is an outgoing invoice.
type Invoice struct {
	ID                int            `json:"id"`
	CustomerID        int            `json:"customer_id"`
	ProjectID         int            `json:"project_id"`
	Identifier        string         `json:"identifier"`
	Date              Date           `json:"date"`
	DueDate           Date           `json:"due_date"`
	ServicePeriodFrom Date           `json:"service_period_from"`
	ServicePeriodTo   Date           `json:"service_period_to"`
	Title             string         `json:"title"`
	RecipientAddress  string         `json:"recipient_address"`
	Status            string         `json:"status"`
	Currency          string         `json:"currency"`
	NetTotal          float64        `json:"net_total"`
	Tax               float64        `json:"tax"`
	GrossTotal        float64        `json:"gross_total"`
	Discount          float64        `json:"discount"`
	CashDiscount      float64        `json:"cash_discount"`
	CashDiscountDays  int            `json:"cash_discount_days"`
	Salutation        string         `json:"salutation"`
	Footer            string         `json:"footer"`
	Locked            bool           `json:"locked"`
	Tags              []string       `json:"tags"`
	CustomProperties  map[string]any `json:"custom_properties"`
	Items             []InvoiceItem  `json:"items"`
	Payments          []PaymentRef   `json:"payments"`
	Timestamps
}

// PaymentRef is the abbreviated payment listed on an invoice.
type PaymentRef struct {
	ID        int     `json:"id"`
	Date      Date    `json:"date"`
	PaidTotal float64 `json:"paid_total"`
	Currency  string  `json:"currency"`
}

// InvoiceRef is the abbreviated invoice embedded in payments.
type InvoiceRef struct {
	ID         int    `json:"id"`
	Identifier string `json:"identifier"`
	Title      string `json:"title"`
}

// InvoicePayment is a payment received for an invoice.
type InvoicePayment struct {
	ID            int        `json:"id"`
	Date          Date       `json:"date"`
	Invoice       InvoiceRef `json:"invoice"`
	PaidTotal     float64    `json:"paid_total"`
	Currency      string     `json:"currency"`
	PartiallyPaid bool       `json:"partially_paid"`
	Description   string     `json:"description"`
	Timestamps
}

// InvoicePaymentEntry is the payload of one payment in a bulk create.
type InvoicePaymentEntry struct {
	Date        Date    `json:"date"`
	InvoiceID   int     `json:"invoice_id"`
	PaidTotal   float64 `json:"paid_total"`
	Currency    string  `json:"currency"`
	Description string  `json:"description,omitempty"`
}

// Attachment is a file attached to an invoice.
type Attachment struct {
	ID       int    `json:"id"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Timestamps
}

// OfferItem is one position of an offer.
type OfferItem = InvoiceItem

// Offer is a quote sent to a customer.
type Offer struct {
	ID               int         `json:"id"`
	Identifier       string      `json:"identifier"`
	Date             Date        `json:"date"`
	DueDate          Date        `json:"due_date"`
	Title            string      `json:"title"`
	RecipientAddress string      `json:"recipient_address"`
	Status           string      `json:"status"`
	Currency         string      `json:"currency"`
	NetTotal         float64     `json:"net_total"`
	Tax              float64     `json:"tax"`
	GrossTotal       float64     `json:"gross_total"`
	Discount         float64     `json:"discount"`
	Salutation       string      `json:"salutation"`
	Footer           string      `json:"footer"`
	Tags             []string    `json:"tags"`
	Items            []OfferItem `json:"items"`
	Project          *ProjectRef `json:"project"`
	Deal             *DealRef    `json:"deal"`
	Company          *CompanyRef `json:"company"`
	Timestamps
}

// PurchaseItem is one booking line of a purchase.
type PurchaseItem struct {
	ID          int     `json:"id,omitempty"`
	Title       string  `json:"title"`
	Total       float64 `json:"total"`
	Tax         float64 `json:"tax"`
	TaxIncluded bool    `json:"tax_included"`
	CategoryID  int     `json:"category_id,omitempty"`
}

// Purchase is an incoming invoice or receipt.
type Purchase struct {
	ID                int            `json:"id"`
	Identifier        string         `json:"identifier"`
	ReceiptIdentifier string         `json:"receipt_identifier"`
	Title             string         `json:"title"`
	Info              string         `json:"info"`
	IBAN              string         `json:"iban"`
	Reference         string         `json:"reference"`
	Date              Date           `json:"date"`
	DueDate           Date           `json:"due_date"`
	ServicePeriodFrom Date           `json:"service_period_from"`
	ServicePeriodTo   Date           `json:"service_period_to"`
	Status            string         `json:"status"`
	PaymentMethod     string         `json:"payment_method"`
	NetTotal          float64        `json:"net_total"`
	GrossTotal        float64        `json:"gross_total"`
	Currency          string         `json:"currency"`
	FileURL           string         `json:"file_url"`
	Tags              []string       `json:"tags"`
	CustomProperties  map[string]any `json:"custom_properties"`
	Items             []PurchaseItem `json:"items"`
	Company           *CompanyRef    `json:"company"`
	User              *UserRef       `json:"user"`
	Timestamps
}

// PurchaseCategory is a booking category for purchase items.
type PurchaseCategory struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	CreditAccount string `json:"credit_account"`
	Active        bool   `json:"active"`
	Timestamps
}

// PurchaseDocument is a file attached to a purchase, sent base64 encoded.
type PurchaseDocument struct {
	Filename string `json:"filename"`
	Base64   string `json:"base64"`
}
