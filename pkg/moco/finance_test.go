package moco_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco"
	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/generator"
	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/mocotest"
	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

func TestPurchaseList(t *testing.T) {
	client, rec := mocotest.NewClient(t)

	_, err := client.Purchases.List(context.Background(), moco.PurchaseListOptions{
		Dates:  moco.DateRange{From: jan1, To: jan31},
		Status: moco.PurchaseStatusPending,
		Unpaid: true,
	})
	require.NoError(t, err)

	call := rec.Last(t)
	assert.Equal(t, "/purchases", call.Path)
	assert.Equal(t, "2024-01-01", call.Query.Get("start_date"))
	assert.Equal(t, "2024-01-31", call.Query.Get("end_date"))
	assert.Equal(t, "pending", call.Query.Get("status"))
	assert.Equal(t, "true", call.Query.Get("unpaid"))

	_, err = client.Purchases.List(context.Background(), moco.PurchaseListOptions{
		Dates: moco.DateRange{To: jan31},
	})
	var verr *moco.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "start_date/end_date", verr.Field)
	assert.Len(t, rec.Calls(), 1)
}

func TestPurchaseCreate(t *testing.T) {
	client, rec := mocotest.NewClient(t)

	items := generator.NewPurchaseItems()
	items.Item("Hosting", 119, 19, true, 3)
	built, err := items.Build()
	require.NoError(t, err)

	purchase, err := client.Purchases.Create(context.Background(), moco.PurchaseCreate{
		Date:          jan1,
		Currency:      "EUR",
		PaymentMethod: moco.PaymentMethodCreditCard,
		Items:         built,
	})
	require.NoError(t, err)
	require.Len(t, purchase.Items, 1)
	assert.Equal(t, "Hosting", purchase.Items[0].Title)

	params := rec.Last(t).Params()
	assert.Equal(t, "2024-01-01", params["date"])
	assert.Equal(t, "credit_card", params["payment_method"])
	assert.NotContains(t, params, "status")
	assert.NotContains(t, params, "service_period_from")
}

func TestPurchaseCreateServicePeriod(t *testing.T) {
	client, rec := mocotest.NewClient(t)
	ctx := context.Background()

	purchase := moco.PurchaseCreate{
		Date:          jan1,
		Currency:      "EUR",
		PaymentMethod: moco.PaymentMethodCash,
		Items:         []models.PurchaseItem{{Title: "Hosting", Total: 100, Tax: 19}},
		ServicePeriod: moco.DateRange{From: jan1, To: jan31},
	}
	_, err := client.Purchases.Create(ctx, purchase)
	require.NoError(t, err)
	params := rec.Last(t).Params()
	assert.Equal(t, "2024-01-01", params["service_period_from"])
	assert.Equal(t, "2024-01-31", params["service_period_to"])

	purchase.ServicePeriod = moco.DateRange{From: jan1}
	_, err = client.Purchases.Create(ctx, purchase)
	var verr *moco.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "service_period_from/service_period_to", verr.Field)
	assert.ErrorIs(t, err, moco.ErrInvalidDateRange)
	assert.Len(t, rec.Calls(), 1)
}

func TestPurchaseCreateValidation(t *testing.T) {
	client, rec := mocotest.NewClient(t)

	_, err := client.Purchases.Create(context.Background(), moco.PurchaseCreate{
		Date:          jan1,
		Currency:      "EURO",
		PaymentMethod: "barter",
	})
	var verr *moco.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "purchase", verr.Field)
	assert.Empty(t, rec.Calls())
}

func TestPurchaseStatusAndDocument(t *testing.T) {
	client, rec := mocotest.NewClient(t)
	ctx := context.Background()

	require.NoError(t, client.Purchases.UpdateStatus(ctx, 4, moco.PurchaseStatusApproved))
	call := rec.Last(t)
	assert.Equal(t, http.MethodPatch, call.Method)
	assert.Equal(t, "/purchases/4/update_status", call.Path)
	assert.Equal(t, map[string]any{"status": "approved"}, call.Params())

	assert.Error(t, client.Purchases.UpdateStatus(ctx, 4, "paid"))

	require.NoError(t, client.Purchases.StoreDocument(ctx, 4, models.PurchaseDocument{
		Filename: "receipt.pdf",
		Base64:   "JVBERi0=",
	}))
	assert.Equal(t, "/purchases/4/store_document", rec.Last(t).Path)
	assert.Equal(t, map[string]any{
		"file": map[string]any{"filename": "receipt.pdf", "base64": "JVBERi0="},
	}, rec.Last(t).Params())

	assert.Error(t, client.Purchases.StoreDocument(ctx, 4, models.PurchaseDocument{Filename: "x.pdf"}))

	require.NoError(t, client.Purchases.Delete(ctx, 4))
	assert.Len(t, rec.Calls(), 3)
}

func TestPurchaseCategories(t *testing.T) {
	client, rec := mocotest.NewClient(t)

	_, err := client.PurchaseCategories.List(context.Background(), moco.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, "/purchases/categories", rec.Last(t).Path)
	assert.Equal(t, "1", rec.Last(t).Query.Get("page"))

	_, err = client.PurchaseCategories.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "/purchases/categories/2", rec.Last(t).Path)
}

func TestInvoiceList(t *testing.T) {
	client, rec := mocotest.NewClient(t)
	ctx := context.Background()

	_, err := client.Invoices.List(ctx, moco.InvoiceListOptions{
		Dates:  moco.DateRange{From: jan1, To: jan31},
		Status: moco.InvoiceStatusPaid,
	})
	require.NoError(t, err)
	call := rec.Last(t)
	assert.Equal(t, "/invoices", call.Path)
	assert.Equal(t, "2024-01-01", call.Query.Get("date_from"))
	assert.Equal(t, "2024-01-31", call.Query.Get("date_to"))
	assert.Equal(t, "paid", call.Query.Get("status"))

	_, err = client.Invoices.Locked(ctx, moco.InvoiceListOptions{})
	require.NoError(t, err)
	assert.Equal(t, "/invoices/locked", rec.Last(t).Path)

	_, err = client.Invoices.List(ctx, moco.InvoiceListOptions{Status: "lost"})
	assert.Error(t, err)
	_, err = client.Invoices.List(ctx, moco.InvoiceListOptions{Dates: moco.DateRange{From: jan1}})
	assert.ErrorIs(t, err, moco.ErrInvalidDateRange)
	assert.Len(t, rec.Calls(), 2)
}

func TestInvoiceCreate(t *testing.T) {
	client, rec := mocotest.NewClient(t)

	items := generator.NewInvoiceItems()
	items.Title("Website")
	items.Item("Design", 10, "h", 95)
	items.LumpPosition("Hosting", 240)
	built, err := items.Build()
	require.NoError(t, err)

	invoice, err := client.Invoices.Create(context.Background(), moco.InvoiceCreate{
		CustomerID:       12,
		RecipientAddress: "Acme\nMain St 1",
		Date:             jan1,
		DueDate:          jan31,
		Title:            "Invoice",
		Tax:              19,
		Currency:         "EUR",
		Items:            built,
		Status:           moco.InvoiceStatusDraft,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, invoice.CustomerID)
	assert.Len(t, invoice.Items, 3)

	params := rec.Last(t).Params()
	assert.Equal(t, "2024-01-31", params["due_date"])
	assert.Equal(t, "draft", params["status"])
	positions, ok := params["items"].([]any)
	require.True(t, ok)
	assert.Equal(t, "title", positions[0].(map[string]any)["type"])
}

func TestInvoiceCreateServicePeriod(t *testing.T) {
	client, rec := mocotest.NewClient(t)
	ctx := context.Background()

	invoice := moco.InvoiceCreate{
		CustomerID:       12,
		RecipientAddress: "Acme",
		Date:             jan1,
		DueDate:          jan31,
		Title:            "Invoice",
		Currency:         "EUR",
		Items:            []models.InvoiceItem{{Type: "lump_position", Title: "Hosting", NetTotal: 240}},
		ServicePeriod:    moco.DateRange{From: jan1, To: jan31},
	}
	_, err := client.Invoices.Create(ctx, invoice)
	require.NoError(t, err)
	params := rec.Last(t).Params()
	assert.Equal(t, "2024-01-01", params["service_period_from"])
	assert.Equal(t, "2024-01-31", params["service_period_to"])

	invoice.ServicePeriod = moco.DateRange{To: jan31}
	_, err = client.Invoices.Create(ctx, invoice)
	assert.ErrorIs(t, err, moco.ErrInvalidDateRange)
	assert.Len(t, rec.Calls(), 1)
}

func TestInvoiceCreateValidation(t *testing.T) {
	client, rec := mocotest.NewClient(t)

	_, err := client.Invoices.Create(context.Background(), moco.InvoiceCreate{
		CustomerID: 12,
		Title:      "Invoice",
		Status:     moco.InvoiceStatusPaid,
	})
	var verr *moco.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "invoice", verr.Field)
	assert.Empty(t, rec.Calls())
}

func TestInvoicePDF(t *testing.T) {
	client, rec := mocotest.NewClient(t)
	resp := rec.Respond(http.StatusOK, []byte("%PDF-1.4"))
	resp.Header.Set("Content-Type", "application/pdf")

	file, err := client.Invoices.PDF(context.Background(), 77)
	require.NoError(t, err)
	assert.Equal(t, "invoice-77.pdf", file.Filename)
	assert.Equal(t, []byte("%PDF-1.4"), file.Data)

	call := rec.Last(t)
	assert.Equal(t, "/invoices/77.pdf", call.Path)
	assert.Equal(t, "application/pdf", call.Header.Get("Accept"))

	_, err = client.Invoices.TimesheetPDF(context.Background(), 77)
	require.NoError(t, err)
	assert.Equal(t, "/invoices/77/timesheet.pdf", rec.Last(t).Path)
}

func TestInvoiceActions(t *testing.T) {
	client, rec := mocotest.NewClient(t)
	ctx := context.Background()

	require.NoError(t, client.Invoices.UpdateStatus(ctx, 3, moco.InvoiceStatusSent))
	assert.Equal(t, "/invoices/3/update_status", rec.Last(t).Path)
	assert.Equal(t, http.MethodPut, rec.Last(t).Method)

	require.NoError(t, client.Invoices.SendEmail(ctx, 3, moco.InvoiceEmail{
		EmailsTo: []string{"billing@acme.test"},
		Subject:  "Your invoice",
		Text:     "Please find attached",
	}))
	assert.Equal(t, map[string]any{
		"emails_to": []any{"billing@acme.test"},
		"subject":   "Your invoice",
		"text":      "Please find attached",
	}, rec.Last(t).Params())

	err := client.Invoices.SendEmail(ctx, 3, moco.InvoiceEmail{
		EmailsTo: []string{"not-an-address"},
		Subject:  "s",
		Text:     "t",
	})
	assert.Error(t, err)

	_, err = client.Invoices.Timesheet(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "/invoices/3/timesheet", rec.Last(t).Path)

	_, err = client.Invoices.Attachments(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "/invoices/3/attachments", rec.Last(t).Path)

	require.NoError(t, client.Invoices.Delete(ctx, 3))
	assert.Len(t, rec.Calls(), 5)
}

func TestInvoicePayments(t *testing.T) {
	client, rec := mocotest.NewClient(t)
	ctx := context.Background()

	_, err := client.InvoicePayments.List(ctx, moco.InvoicePaymentListOptions{
		Dates:     moco.DateRange{From: jan1, To: jan31},
		InvoiceID: 8,
	})
	require.NoError(t, err)
	call := rec.Last(t)
	assert.Equal(t, "/invoices/payments", call.Path)
	assert.Equal(t, "2024-01-01", call.Query.Get("date_from"))
	assert.Equal(t, "8", call.Query.Get("invoice_id"))

	_, err = client.InvoicePayments.Create(ctx, moco.InvoicePaymentInput{
		Date:      jan1,
		InvoiceID: 8,
		PaidTotal: 100,
		Currency:  "EUR",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"date":       "2024-01-01",
		"invoice_id": float64(8),
		"paid_total": float64(100),
		"currency":   "EUR",
	}, rec.Last(t).Params())

	payments := generator.NewInvoicePayments()
	payments.Payment(jan1, 8, 50, "EUR", "")
	payments.Payment(jan31, 9, 75, "EUR", "Rest")
	entries, err := payments.Build()
	require.NoError(t, err)

	rec.Respond(http.StatusOK, []map[string]any{{"id": 1}, {"id": 2}})
	created, err := client.InvoicePayments.BulkCreate(ctx, entries)
	require.NoError(t, err)
	assert.Len(t, created, 2)
	assert.Equal(t, "/invoices/payments/bulk", rec.Last(t).Path)
	bulk, ok := rec.Last(t).Params()["bulk_data"].([]any)
	require.True(t, ok)
	assert.Len(t, bulk, 2)

	_, err = client.InvoicePayments.BulkCreate(ctx, nil)
	var verr *moco.ValidationError
	assert.ErrorAs(t, err, &verr)

	require.NoError(t, client.InvoicePayments.Delete(ctx, 1))
	assert.Len(t, rec.Calls(), 4)
}

func TestOffers(t *testing.T) {
	client, rec := mocotest.NewClient(t)
	ctx := context.Background()

	_, err := client.Offers.List(ctx, moco.OfferListOptions{
		Dates:  moco.DateRange{From: jan1, To: jan31},
		Status: moco.OfferStatusAccepted,
	})
	require.NoError(t, err)
	assert.Equal(t, "/offers", rec.Last(t).Path)
	assert.Equal(t, "2024-01-01", rec.Last(t).Query.Get("from"))
	assert.Equal(t, "accepted", rec.Last(t).Query.Get("status"))

	items := generator.NewOfferItems()
	items.Item("Workshop", 2, "d", 1200)
	items.OptionalItem("Follow-up", 1, "d", 1200)
	built, err := items.Build()
	require.NoError(t, err)

	offer := moco.OfferCreate{
		DealID:           4,
		RecipientAddress: "Acme",
		Date:             jan1,
		DueDate:          jan31,
		Title:            "Offer",
		Tax:              19,
		Items:            built,
	}
	_, err = client.Offers.Create(ctx, offer)
	require.NoError(t, err)
	params := rec.Last(t).Params()
	assert.Equal(t, float64(4), params["deal_id"])
	assert.NotContains(t, params, "project_id")

	both := offer
	both.ProjectID = 5
	_, err = client.Offers.Create(ctx, both)
	var verr *moco.ValidationError
	assert.ErrorAs(t, err, &verr)

	none := offer
	none.DealID = 0
	_, err = client.Offers.Create(ctx, none)
	assert.ErrorAs(t, err, &verr)

	require.NoError(t, client.Offers.UpdateStatus(ctx, 6, moco.OfferStatusSent))
	assert.Equal(t, "/offers/6/update_status", rec.Last(t).Path)

	_, err = client.Offers.PDF(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, "/offers/6.pdf", rec.Last(t).Path)

	assert.Len(t, rec.Calls(), 4)
}
