package generator

import (
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

var day = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

func TestInvoiceItems(t *testing.T) {
	g := NewInvoiceItems()
	g.Title("Website relaunch")
	g.Description("Work done in March")
	g.Item("Design", 10, "h", 120)
	g.LumpPosition("Hosting setup", 500)
	g.Separator()
	g.Subtotal("Phase 1")
	g.PageBreak()
	g.SubtotalAll("Total")
	assert.Equal(t, 8, g.Len())

	items, err := g.Build()
	require.NoError(t, err)
	require.Len(t, items, 8)

	types := make([]string, len(items))
	for i, item := range items {
		types[i] = item.Type
	}
	assert.Equal(t, []string{
		models.ItemTypeTitle,
		models.ItemTypeDescription,
		models.ItemTypeItem,
		models.ItemTypeItem,
		models.ItemTypeSeparator,
		models.ItemTypeSubtotal,
		models.ItemTypePageBreak,
		models.ItemTypeSubtotalAll,
	}, types)

	assert.Equal(t, 10.0, items[2].Quantity)
	assert.Equal(t, "h", items[2].Unit)
	assert.Equal(t, 500.0, items[3].NetTotal)
	assert.False(t, items[2].Optional)
}

func TestInvoiceItemsEmpty(t *testing.T) {
	_, err := NewInvoiceItems().Build()
	assert.ErrorContains(t, err, "no positions")
}

func TestInvoiceItemsCollectsErrors(t *testing.T) {
	g := NewInvoiceItems()
	g.Title("")
	g.Item("Design", 10, "h", 120)
	g.Item("Consulting", 0, "h", 120)
	g.LumpPosition("", 100)

	_, err := g.Build()
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 3)
	assert.Contains(t, merr.Errors[0].Error(), "position 1 (title)")
	assert.Contains(t, merr.Errors[1].Error(), "position 3 (item)")
	assert.Contains(t, merr.Errors[2].Error(), "position 4 (item)")
}

func TestOfferItemsOptional(t *testing.T) {
	g := NewOfferItems()
	g.Item("Design", 10, "h", 120)
	g.OptionalItem("Extra review", 2, "h", 120)
	g.OptionalLumpPosition("Maintenance", 900)

	items, err := g.Build()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.False(t, items[0].Optional)
	assert.True(t, items[1].Optional)
	assert.True(t, items[2].Optional)
	assert.Equal(t, 900.0, items[2].NetTotal)
}

func TestPurchaseItems(t *testing.T) {
	g := NewPurchaseItems()
	g.Item("Office supplies", 119, 19, true, 4)

	items, err := g.Build()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.PurchaseItem{
		Title:       "Office supplies",
		Total:       119,
		Tax:         19,
		TaxIncluded: true,
		CategoryID:  4,
	}, items[0])

	g.Item("Broken tax", 100, 150, false, 4)
	_, err = g.Build()
	assert.ErrorContains(t, err, "item 2")

	_, err = NewPurchaseItems().Build()
	assert.ErrorContains(t, err, "no items")
}

func TestProjectExpenses(t *testing.T) {
	g := NewProjectExpenses()
	g.Expense(day, "Hotel", 2, "nights", 120, 100)
	g.Add(models.ProjectExpenseEntry{
		Date:     models.DateOf(day),
		Title:    "Train",
		Quantity: 1,
		Unit:     "ticket",
	})

	entries, err := g.Build()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2024-03-15", entries[0].Date.String())
	assert.Equal(t, 120.0, entries[0].UnitPrice)

	g.Expense(time.Time{}, "Taxi", 1, "ride", 30, 30)
	_, err = g.Build()
	assert.ErrorContains(t, err, "expense 3")

	_, err = NewProjectExpenses().Build()
	assert.ErrorContains(t, err, "no expenses")
}

func TestInvoicePayments(t *testing.T) {
	g := NewInvoicePayments()
	g.Payment(day, 77, 1190, "EUR", "")
	g.Payment(day, 0, 200, "EUR", "Unassigned")

	payments, err := g.Build()
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, 77, payments[0].InvoiceID)
	assert.Zero(t, payments[1].InvoiceID)

	g.Payment(day, 78, 100, "EURO", "")
	g.Payment(time.Time{}, 78, 0, "EUR", "")
	_, err = g.Build()
	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)

	_, err = NewInvoicePayments().Build()
	assert.ErrorContains(t, err, "no payments")
}
