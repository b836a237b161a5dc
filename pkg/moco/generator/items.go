// Package generator assembles the composite payloads of invoices, offers,
// purchases and bulk calls. Builders collect every invalid position and
// report them together from Build.
package generator

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-multierror"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

// positions holds the line items shared by invoices and offers.
type positions struct {
	items  []models.InvoiceItem
	result *multierror.Error
}

// add appends item. The rules must point into item.
func (p *positions) add(item *models.InvoiceItem, rules ...*validation.FieldRules) {
	if len(rules) > 0 {
		if err := validation.ValidateStruct(item, rules...); err != nil {
			p.result = multierror.Append(p.result,
				fmt.Errorf("position %d (%s): %w", len(p.items)+1, item.Type, err))
		}
	}
	p.items = append(p.items, *item)
}

// Title adds a heading.
func (p *positions) Title(title string) {
	item := models.InvoiceItem{Type: models.ItemTypeTitle, Title: title}
	p.add(&item, validation.Field(&item.Title, validation.Required))
}

// Description adds a free text paragraph.
func (p *positions) Description(text string) {
	item := models.InvoiceItem{Type: models.ItemTypeDescription, Description: text}
	p.add(&item, validation.Field(&item.Description, validation.Required))
}

// Item adds a position priced as quantity times unit price.
func (p *positions) Item(title string, quantity float64, unit string, unitPrice float64) {
	p.item(title, quantity, unit, unitPrice, false)
}

// LumpPosition adds a position with a fixed net total.
func (p *positions) LumpPosition(title string, netTotal float64) {
	p.lump(title, netTotal, false)
}

// Separator adds a horizontal rule.
func (p *positions) Separator() {
	p.add(&models.InvoiceItem{Type: models.ItemTypeSeparator})
}

// Subtotal adds the subtotal of the positions since the previous subtotal.
func (p *positions) Subtotal(title string) {
	p.add(&models.InvoiceItem{Type: models.ItemTypeSubtotal, Title: title})
}

// SubtotalAll adds the subtotal of all previous positions.
func (p *positions) SubtotalAll(title string) {
	p.add(&models.InvoiceItem{Type: models.ItemTypeSubtotalAll, Title: title})
}

// PageBreak starts a new page in the rendered document.
func (p *positions) PageBreak() {
	p.add(&models.InvoiceItem{Type: models.ItemTypePageBreak})
}

// Len returns the number of positions added so far.
func (p *positions) Len() int {
	return len(p.items)
}

func (p *positions) item(title string, quantity float64, unit string, unitPrice float64, optional bool) {
	item := models.InvoiceItem{
		Type:      models.ItemTypeItem,
		Title:     title,
		Quantity:  quantity,
		Unit:      unit,
		UnitPrice: unitPrice,
		Optional:  optional,
	}
	p.add(&item,
		validation.Field(&item.Title, validation.Required),
		validation.Field(&item.Quantity, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&item.UnitPrice, validation.Min(0.0)),
	)
}

func (p *positions) lump(title string, netTotal float64, optional bool) {
	item := models.InvoiceItem{
		Type:     models.ItemTypeItem,
		Title:    title,
		NetTotal: netTotal,
		Optional: optional,
	}
	p.add(&item,
		validation.Field(&item.Title, validation.Required),
		validation.Field(&item.NetTotal, validation.Required),
	)
}

func (p *positions) build() ([]models.InvoiceItem, error) {
	if len(p.items) == 0 {
		return nil, fmt.Errorf("no positions: %w", validation.ErrRequired)
	}
	if err := p.result.ErrorOrNil(); err != nil {
		return nil, err
	}
	out := make([]models.InvoiceItem, len(p.items))
	copy(out, p.items)
	return out, nil
}

// InvoiceItems builds the positions of an invoice.
type InvoiceItems struct {
	positions
}

// NewInvoiceItems returns an empty invoice builder.
func NewInvoiceItems() *InvoiceItems {
	return &InvoiceItems{}
}

// Build returns the positions, or every validation failure joined.
func (g *InvoiceItems) Build() ([]models.InvoiceItem, error) {
	return g.build()
}

// OfferItems builds the positions of an offer. Offers may contain optional
// positions the customer can choose to order.
type OfferItems struct {
	positions
}

// NewOfferItems returns an empty offer builder.
func NewOfferItems() *OfferItems {
	return &OfferItems{}
}

// OptionalItem adds an optional position priced as quantity times unit
// price.
func (g *OfferItems) OptionalItem(title string, quantity float64, unit string, unitPrice float64) {
	g.item(title, quantity, unit, unitPrice, true)
}

// OptionalLumpPosition adds an optional position with a fixed net total.
func (g *OfferItems) OptionalLumpPosition(title string, netTotal float64) {
	g.lump(title, netTotal, true)
}

// Build returns the positions, or every validation failure joined.
func (g *OfferItems) Build() ([]models.OfferItem, error) {
	return g.build()
}
