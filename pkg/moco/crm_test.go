package moco_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco"
	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/mocotest"
	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

func TestCompanies(t *testing.T) {
	client, rec := mocotest.NewClient(t)
	ctx := context.Background()

	_, err := client.Companies.List(ctx, moco.CompanyListOptions{
		Type: models.CompanyTypeSupplier,
		Term: "acme",
	})
	require.NoError(t, err)
	call := rec.Last(t)
	assert.Equal(t, "/companies", call.Path)
	assert.Equal(t, "supplier", call.Query.Get("type"))
	assert.Equal(t, "acme", call.Query.Get("term"))

	_, err = client.Companies.List(ctx, moco.CompanyListOptions{Type: "partner"})
	var verr *moco.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "type", verr.Field)

	company, err := client.Companies.Create(ctx, moco.CompanyInput{
		Name:     "Acme",
		Type:     models.CompanyTypeCustomer,
		Currency: "CHF",
		Email:    "billing@acme.example",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme", company.Name)
	assert.Equal(t, map[string]any{
		"name":     "Acme",
		"type":     "customer",
		"currency": "CHF",
		"email":    "billing@acme.example",
	}, rec.Last(t).Params())

	// Customers need a currency, suppliers do not.
	_, err = client.Companies.Create(ctx, moco.CompanyInput{Name: "Acme", Type: models.CompanyTypeCustomer})
	assert.ErrorAs(t, err, &verr)
	_, err = client.Companies.Create(ctx, moco.CompanyInput{Name: "Paper Inc", Type: models.CompanyTypeSupplier})
	require.NoError(t, err)

	_, err = client.Companies.Update(ctx, 8, moco.CompanyInput{Email: "not an address"})
	assert.ErrorAs(t, err, &verr)

	_, err = client.Companies.Archive(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, rec.Last(t).Method)
	assert.Equal(t, "/companies/8/archive", rec.Last(t).Path)

	_, err = client.Companies.Unarchive(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, "/companies/8/unarchive", rec.Last(t).Path)
	assert.Len(t, rec.Calls(), 5)
}

func TestContacts(t *testing.T) {
	client, rec := mocotest.NewClient(t)
	ctx := context.Background()

	_, err := client.Contacts.Create(ctx, moco.ContactInput{
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Gender:    "F",
		CompanyID: 8,
		Birthday:  jan1,
	})
	require.NoError(t, err)
	call := rec.Last(t)
	assert.Equal(t, "/contacts/people", call.Path)
	assert.Equal(t, map[string]any{
		"firstname":   "Ada",
		"lastname":    "Lovelace",
		"gender":      "F",
		"customer_id": float64(8),
		"birthday":    "2024-01-01",
	}, call.Params())

	_, err = client.Contacts.Create(ctx, moco.ContactInput{Lastname: "Lovelace"})
	assert.Error(t, err)
	_, err = client.Contacts.Update(ctx, 2, moco.ContactInput{Gender: "X"})
	assert.Error(t, err)

	_, err = client.Contacts.List(ctx, moco.ContactListOptions{Phone: "+41 44"})
	require.NoError(t, err)
	assert.Equal(t, "+41 44", rec.Last(t).Query.Get("phone"))

	require.NoError(t, client.Contacts.Delete(ctx, 2))
	assert.Equal(t, "/contacts/people/2", rec.Last(t).Path)
	assert.Len(t, rec.Calls(), 3)
}

func TestDeals(t *testing.T) {
	client, rec := mocotest.NewClient(t)
	ctx := context.Background()

	input := moco.DealInput{
		Name:           "Relaunch",
		Currency:       "EUR",
		Money:          25000,
		ReminderDate:   jan31,
		UserID:         3,
		DealCategoryID: 1,
		Status:         moco.DealStatusPending,
	}
	_, err := client.Deals.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "/deals", rec.Last(t).Path)
	assert.Equal(t, "2024-01-31", rec.Last(t).Params()["reminder_date"])

	missing := input
	missing.DealCategoryID = 0
	_, err = client.Deals.Create(ctx, missing)
	assert.Error(t, err)

	_, err = client.Deals.Update(ctx, 4, moco.DealInput{Status: "closed"})
	assert.Error(t, err)

	_, err = client.Deals.List(ctx, moco.DealListOptions{Status: moco.DealStatusWon})
	require.NoError(t, err)
	assert.Equal(t, "won", rec.Last(t).Query.Get("status"))

	_, err = client.Deals.List(ctx, moco.DealListOptions{Status: "closed"})
	var verr *moco.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Field)
	assert.Len(t, rec.Calls(), 2)
}

func TestDealCategories(t *testing.T) {
	client, rec := mocotest.NewClient(t)
	ctx := context.Background()

	category, err := client.DealCategories.Create(ctx, "Contact", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, category.Probability)

	_, err = client.DealCategories.Create(ctx, "Contact", 120)
	var verr *moco.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "probability", verr.Field)

	_, err = client.DealCategories.Create(ctx, "", 10)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)

	// Updating only the name leaves the probability out of the body.
	_, err = client.DealCategories.Update(ctx, 2, "Offer sent", nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Offer sent"}, rec.Last(t).Params())

	zero := 0
	_, err = client.DealCategories.Update(ctx, 2, "", &zero)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"probability": float64(0)}, rec.Last(t).Params())

	require.NoError(t, client.DealCategories.Delete(ctx, 2))
	assert.Equal(t, "/deal_categories/2", rec.Last(t).Path)
	assert.Len(t, rec.Calls(), 4)
}

func TestComments(t *testing.T) {
	client, rec := mocotest.NewClient(t)
	ctx := context.Background()

	comment, err := client.Comments.Create(ctx, models.CommentEntry{
		CommentableID:   5,
		CommentableType: moco.EntityProject,
		Text:            "Kickoff done",
	})
	require.NoError(t, err)
	assert.Equal(t, "Kickoff done", comment.Text)

	_, err = client.Comments.Create(ctx, models.CommentEntry{CommentableID: 5, CommentableType: "Ticket", Text: "x"})
	assert.Error(t, err)

	rec.Respond(http.StatusOK, []map[string]any{{"id": 1}, {"id": 2}})
	comments, err := client.Comments.BulkCreate(ctx, moco.EntityCompany, []int{1, 2}, "Newsletter sent")
	require.NoError(t, err)
	assert.Len(t, comments, 2)
	call := rec.Last(t)
	assert.Equal(t, "/comments/bulk", call.Path)
	assert.Equal(t, []any{float64(1), float64(2)}, call.Params()["commentable_ids"])

	_, err = client.Comments.BulkCreate(ctx, moco.EntityCompany, nil, "Newsletter sent")
	assert.Error(t, err)

	_, err = client.Comments.Update(ctx, 1, "")
	assert.Error(t, err)

	_, err = client.Comments.List(ctx, moco.CommentListOptions{
		Dates:           moco.DateRange{From: jan1, To: jan31},
		CommentableType: moco.EntityDeal,
		Manual:          moco.Bool(true),
	})
	require.NoError(t, err)
	q := rec.Last(t).Query
	assert.Equal(t, "2024-01-01", q.Get("date_from"))
	assert.Equal(t, "Deal", q.Get("commentable_type"))
	assert.Equal(t, "true", q.Get("manual"))
	assert.Len(t, rec.Calls(), 3)
}

func TestTaggings(t *testing.T) {
	client, rec := mocotest.NewClient(t)
	ctx := context.Background()

	rec.Respond(http.StatusOK, []string{"Important", "Retainer"})
	tags, err := client.Taggings.Add(ctx, moco.EntityProject, 5, []string{"Retainer"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Important", "Retainer"}, tags)
	call := rec.Last(t)
	assert.Equal(t, http.MethodPatch, call.Method)
	assert.Equal(t, "/taggings/Project/5", call.Path)
	assert.Equal(t, map[string]any{"tags": []any{"Retainer"}}, call.Params())

	// Replacing with nothing clears the tags and still sends a list.
	rec.Respond(http.StatusOK, []string{})
	tags, err = client.Taggings.Replace(ctx, moco.EntityProject, 5, nil)
	require.NoError(t, err)
	assert.Empty(t, tags)
	assert.Equal(t, map[string]any{"tags": []any{}}, rec.Last(t).Params())

	rec.Respond(http.StatusOK, []string{"Important"})
	_, err = client.Taggings.Remove(ctx, moco.EntityProject, 5, []string{"Retainer"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, rec.Last(t).Method)

	_, err = client.Taggings.Remove(ctx, moco.EntityProject, 5, nil)
	assert.Error(t, err)

	_, err = client.Taggings.List(ctx, "Ticket", 5)
	var verr *moco.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "entity", verr.Field)
	assert.Len(t, rec.Calls(), 3)
}
