package generator

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-multierror"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

// PurchaseItems builds the booking lines of a purchase.
type PurchaseItems struct {
	items  []models.PurchaseItem
	result *multierror.Error
}

// NewPurchaseItems returns an empty purchase builder.
func NewPurchaseItems() *PurchaseItems {
	return &PurchaseItems{}
}

// Item adds a booking line. Tax is a percentage; taxIncluded tells whether
// total is gross.
func (g *PurchaseItems) Item(title string, total, tax float64, taxIncluded bool, categoryID int) {
	item := models.PurchaseItem{
		Title:       title,
		Total:       total,
		Tax:         tax,
		TaxIncluded: taxIncluded,
		CategoryID:  categoryID,
	}
	if err := validation.ValidateStruct(&item,
		validation.Field(&item.Title, validation.Required),
		validation.Field(&item.Total, validation.Required),
		validation.Field(&item.Tax, validation.Min(0.0), validation.Max(100.0)),
	); err != nil {
		g.result = multierror.Append(g.result, fmt.Errorf("item %d: %w", len(g.items)+1, err))
	}
	g.items = append(g.items, item)
}

// Build returns the booking lines, or every validation failure joined.
func (g *PurchaseItems) Build() ([]models.PurchaseItem, error) {
	if len(g.items) == 0 {
		return nil, fmt.Errorf("no items: %w", validation.ErrRequired)
	}
	if err := g.result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return append([]models.PurchaseItem(nil), g.items...), nil
}

// ProjectExpenses builds the payload of a bulk expense creation.
type ProjectExpenses struct {
	entries []models.ProjectExpenseEntry
	result  *multierror.Error
}

// NewProjectExpenses returns an empty expense builder.
func NewProjectExpenses() *ProjectExpenses {
	return &ProjectExpenses{}
}

// Expense adds an expense with default billing flags.
func (g *ProjectExpenses) Expense(date time.Time, title string, quantity float64, unit string, unitPrice, unitCost float64) {
	g.Add(models.ProjectExpenseEntry{
		Date:      models.DateOf(date),
		Title:     title,
		Quantity:  quantity,
		Unit:      unit,
		UnitPrice: unitPrice,
		UnitCost:  unitCost,
	})
}

// Add adds a fully specified expense.
func (g *ProjectExpenses) Add(entry models.ProjectExpenseEntry) {
	if err := validation.ValidateStruct(&entry,
		validation.Field(&entry.Date, validation.By(requireDate)),
		validation.Field(&entry.Title, validation.Required),
		validation.Field(&entry.Quantity, validation.Required),
		validation.Field(&entry.Unit, validation.Required),
		validation.Field(&entry.UnitPrice, validation.Min(0.0)),
		validation.Field(&entry.UnitCost, validation.Min(0.0)),
	); err != nil {
		g.result = multierror.Append(g.result, fmt.Errorf("expense %d: %w", len(g.entries)+1, err))
	}
	g.entries = append(g.entries, entry)
}

// Build returns the expenses, or every validation failure joined.
func (g *ProjectExpenses) Build() ([]models.ProjectExpenseEntry, error) {
	if len(g.entries) == 0 {
		return nil, fmt.Errorf("no expenses: %w", validation.ErrRequired)
	}
	if err := g.result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return append([]models.ProjectExpenseEntry(nil), g.entries...), nil
}

// InvoicePayments builds the payload of a bulk payment creation.
type InvoicePayments struct {
	entries []models.InvoicePaymentEntry
	result  *multierror.Error
}

// NewInvoicePayments returns an empty payment builder.
func NewInvoicePayments() *InvoicePayments {
	return &InvoicePayments{}
}

// Payment adds a payment. invoiceID may be zero for payments not yet
// assigned to an invoice.
func (g *InvoicePayments) Payment(date time.Time, invoiceID int, paidTotal float64, currency, description string) {
	entry := models.InvoicePaymentEntry{
		Date:        models.DateOf(date),
		InvoiceID:   invoiceID,
		PaidTotal:   paidTotal,
		Currency:    currency,
		Description: description,
	}
	if err := validation.ValidateStruct(&entry,
		validation.Field(&entry.Date, validation.By(requireDate)),
		validation.Field(&entry.PaidTotal, validation.Required),
		validation.Field(&entry.Currency, validation.Required, validation.Length(3, 3)),
	); err != nil {
		g.result = multierror.Append(g.result, fmt.Errorf("payment %d: %w", len(g.entries)+1, err))
	}
	g.entries = append(g.entries, entry)
}

// Build returns the payments, or every validation failure joined.
func (g *InvoicePayments) Build() ([]models.InvoicePaymentEntry, error) {
	if len(g.entries) == 0 {
		return nil, fmt.Errorf("no payments: %w", validation.ErrRequired)
	}
	if err := g.result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return append([]models.InvoicePaymentEntry(nil), g.entries...), nil
}

func requireDate(value any) error {
	d, _ := value.(models.Date)
	if d.IsZero() {
		return validation.ErrRequired
	}
	return nil
}
