package moco

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// Endpoint binds a logical operation name to an HTTP verb and a path
// template relative to the API base URL. Placeholders are written as
// {name}.
type Endpoint struct {
	Name   string
	Method string
	Path   string
}

// Expand substitutes every placeholder in the path template.
func (e Endpoint) Expand(params map[string]any) (string, error) {
	var b strings.Builder
	rest := e.Path
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			return "", fmt.Errorf("endpoint %s: unterminated placeholder in %q", e.Name, e.Path)
		}
		end += start

		key := rest[start+1 : end]
		val, ok := params[key]
		if !ok || val == nil {
			return "", fmt.Errorf("endpoint %s: %w: %s", e.Name, ErrMissingPathParam, key)
		}
		s := formatValue(val)
		if s == "" {
			return "", fmt.Errorf("endpoint %s: %w: %s", e.Name, ErrMissingPathParam, key)
		}

		b.WriteString(rest[:start])
		b.WriteString(url.PathEscape(s))
		rest = rest[end+1:]
	}
	return b.String(), nil
}

// LookupEndpoint returns the endpoint registered under name.
func LookupEndpoint(name string) (Endpoint, bool) {
	e, ok := endpoints[name]
	return e, ok
}

// Endpoints returns every registered endpoint sorted by name.
func Endpoints() []Endpoint {
	list := make([]Endpoint, 0, len(endpoints))
	for _, e := range endpoints {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

var endpoints = buildEndpoints([]Endpoint{
	// Activities
	{"activity_getlist", http.MethodGet, "/activities"},
	{"activity_get", http.MethodGet, "/activities/{id}"},
	{"activity_create", http.MethodPost, "/activities"},
	{"activity_bulk_create", http.MethodPost, "/activities/bulk"},
	{"activity_update", http.MethodPut, "/activities/{id}"},
	{"activity_delete", http.MethodDelete, "/activities/{id}"},
	{"activity_start_timer", http.MethodPatch, "/activities/{id}/start_timer"},
	{"activity_stop_timer", http.MethodPatch, "/activities/{id}/stop_timer"},
	{"activity_disregard", http.MethodPost, "/activities/disregard"},

	// Users and HR
	{"user_getlist", http.MethodGet, "/users"},
	{"user_get", http.MethodGet, "/users/{id}"},
	{"user_create", http.MethodPost, "/users"},
	{"user_update", http.MethodPut, "/users/{id}"},
	{"user_delete", http.MethodDelete, "/users/{id}"},
	{"user_performance_report", http.MethodGet, "/users/{id}/performance_report"},

	{"user_presence_getlist", http.MethodGet, "/users/presences"},
	{"user_presence_get", http.MethodGet, "/users/presences/{id}"},
	{"user_presence_create", http.MethodPost, "/users/presences"},
	{"user_presence_update", http.MethodPut, "/users/presences/{id}"},
	{"user_presence_delete", http.MethodDelete, "/users/presences/{id}"},
	{"user_presence_touch", http.MethodPost, "/users/presences/touch"},

	{"user_holiday_getlist", http.MethodGet, "/users/holidays"},
	{"user_holiday_get", http.MethodGet, "/users/holidays/{id}"},
	{"user_holiday_create", http.MethodPost, "/users/holidays"},
	{"user_holiday_update", http.MethodPut, "/users/holidays/{id}"},
	{"user_holiday_delete", http.MethodDelete, "/users/holidays/{id}"},

	{"user_employment_getlist", http.MethodGet, "/users/employments"},
	{"user_employment_get", http.MethodGet, "/users/employments/{id}"},

	{"unit_getlist", http.MethodGet, "/units"},
	{"unit_get", http.MethodGet, "/units/{id}"},
	{"unit_create", http.MethodPost, "/units"},
	{"unit_update", http.MethodPut, "/units/{id}"},
	{"unit_delete", http.MethodDelete, "/units/{id}"},

	{"schedule_getlist", http.MethodGet, "/schedules"},
	{"schedule_get", http.MethodGet, "/schedules/{id}"},
	{"schedule_create", http.MethodPost, "/schedules"},
	{"schedule_update", http.MethodPut, "/schedules/{id}"},
	{"schedule_delete", http.MethodDelete, "/schedules/{id}"},

	{"planning_entry_getlist", http.MethodGet, "/planning_entries"},
	{"planning_entry_get", http.MethodGet, "/planning_entries/{id}"},
	{"planning_entry_create", http.MethodPost, "/planning_entries"},
	{"planning_entry_update", http.MethodPut, "/planning_entries/{id}"},
	{"planning_entry_delete", http.MethodDelete, "/planning_entries/{id}"},

	// Purchases
	{"purchase_getlist", http.MethodGet, "/purchases"},
	{"purchase_get", http.MethodGet, "/purchases/{id}"},
	{"purchase_create", http.MethodPost, "/purchases"},
	{"purchase_delete", http.MethodDelete, "/purchases/{id}"},
	{"purchase_update_status", http.MethodPatch, "/purchases/{id}/update_status"},
	{"purchase_store_document", http.MethodPatch, "/purchases/{id}/store_document"},

	{"purchase_category_getlist", http.MethodGet, "/purchases/categories"},
	{"purchase_category_get", http.MethodGet, "/purchases/categories/{id}"},

	// Invoices
	{"invoice_getlist", http.MethodGet, "/invoices"},
	{"invoice_get", http.MethodGet, "/invoices/{id}"},
	{"invoice_pdf", http.MethodGet, "/invoices/{id}.pdf"},
	{"invoice_timesheet", http.MethodGet, "/invoices/{id}/timesheet"},
	{"invoice_timesheet_pdf", http.MethodGet, "/invoices/{id}/timesheet.pdf"},
	{"invoice_locked", http.MethodGet, "/invoices/locked"},
	{"invoice_create", http.MethodPost, "/invoices"},
	{"invoice_update_status", http.MethodPut, "/invoices/{id}/update_status"},
	{"invoice_send_email", http.MethodPost, "/invoices/{id}/send_email"},
	{"invoice_delete", http.MethodDelete, "/invoices/{id}"},
	{"invoice_attachments", http.MethodGet, "/invoices/{id}/attachments"},

	{"invoice_payment_getlist", http.MethodGet, "/invoices/payments"},
	{"invoice_payment_get", http.MethodGet, "/invoices/payments/{id}"},
	{"invoice_payment_create", http.MethodPost, "/invoices/payments"},
	{"invoice_payment_create_bulk", http.MethodPost, "/invoices/payments/bulk"},
	{"invoice_payment_update", http.MethodPut, "/invoices/payments/{id}"},
	{"invoice_payment_delete", http.MethodDelete, "/invoices/payments/{id}"},

	// Offers
	{"offer_getlist", http.MethodGet, "/offers"},
	{"offer_get", http.MethodGet, "/offers/{id}"},
	{"offer_pdf", http.MethodGet, "/offers/{id}.pdf"},
	{"offer_create", http.MethodPost, "/offers"},
	{"offer_update_status", http.MethodPut, "/offers/{id}/update_status"},

	// Projects
	{"project_getlist", http.MethodGet, "/projects"},
	{"project_get", http.MethodGet, "/projects/{id}"},
	{"project_create", http.MethodPost, "/projects"},
	{"project_update", http.MethodPut, "/projects/{id}"},
	{"project_delete", http.MethodDelete, "/projects/{id}"},
	{"project_archive", http.MethodPut, "/projects/{id}/archive"},
	{"project_unarchive", http.MethodPut, "/projects/{id}/unarchive"},
	{"project_report", http.MethodGet, "/projects/{id}/report"},
	{"project_assigned", http.MethodGet, "/projects/assigned"},

	{"project_task_getlist", http.MethodGet, "/projects/{project_id}/tasks"},
	{"project_task_get", http.MethodGet, "/projects/{project_id}/tasks/{id}"},
	{"project_task_create", http.MethodPost, "/projects/{project_id}/tasks"},
	{"project_task_update", http.MethodPut, "/projects/{project_id}/tasks/{id}"},
	{"project_task_delete", http.MethodDelete, "/projects/{project_id}/tasks/{id}"},

	{"project_expense_getall", http.MethodGet, "/projects/expenses"},
	{"project_expense_getlist", http.MethodGet, "/projects/{project_id}/expenses"},
	{"project_expense_get", http.MethodGet, "/projects/{project_id}/expenses/{id}"},
	{"project_expense_create", http.MethodPost, "/projects/{project_id}/expenses"},
	{"project_expense_create_bulk", http.MethodPost, "/projects/{project_id}/expenses/bulk"},
	{"project_expense_update", http.MethodPut, "/projects/{project_id}/expenses/{id}"},
	{"project_expense_delete", http.MethodDelete, "/projects/{project_id}/expenses/{id}"},
	{"project_expense_disregard", http.MethodPost, "/projects/{project_id}/expenses/disregard"},

	{"project_contract_getlist", http.MethodGet, "/projects/{project_id}/contracts"},
	{"project_contract_get", http.MethodGet, "/projects/{project_id}/contracts/{id}"},
	{"project_contract_create", http.MethodPost, "/projects/{project_id}/contracts"},
	{"project_contract_update", http.MethodPut, "/projects/{project_id}/contracts/{id}"},
	{"project_contract_delete", http.MethodDelete, "/projects/{project_id}/contracts/{id}"},

	{"project_recurring_expense_getlist", http.MethodGet, "/projects/{project_id}/recurring_expenses"},
	{"project_recurring_expense_get", http.MethodGet, "/projects/{project_id}/recurring_expenses/{id}"},
	{"project_recurring_expense_create", http.MethodPost, "/projects/{project_id}/recurring_expenses"},
	{"project_recurring_expense_update", http.MethodPut, "/projects/{project_id}/recurring_expenses/{id}"},
	{"project_recurring_expense_delete", http.MethodDelete, "/projects/{project_id}/recurring_expenses/{id}"},

	{"project_payment_schedule_getlist", http.MethodGet, "/projects/{project_id}/payment_schedules"},
	{"project_payment_schedule_get", http.MethodGet, "/projects/{project_id}/payment_schedules/{id}"},
	{"project_payment_schedule_create", http.MethodPost, "/projects/{project_id}/payment_schedules"},
	{"project_payment_schedule_update", http.MethodPut, "/projects/{project_id}/payment_schedules/{id}"},
	{"project_payment_schedule_delete", http.MethodDelete, "/projects/{project_id}/payment_schedules/{id}"},

	// CRM
	{"company_getlist", http.MethodGet, "/companies"},
	{"company_get", http.MethodGet, "/companies/{id}"},
	{"company_create", http.MethodPost, "/companies"},
	{"company_update", http.MethodPut, "/companies/{id}"},
	{"company_archive", http.MethodPut, "/companies/{id}/archive"},
	{"company_unarchive", http.MethodPut, "/companies/{id}/unarchive"},

	{"contact_getlist", http.MethodGet, "/contacts/people"},
	{"contact_get", http.MethodGet, "/contacts/people/{id}"},
	{"contact_create", http.MethodPost, "/contacts/people"},
	{"contact_update", http.MethodPut, "/contacts/people/{id}"},
	{"contact_delete", http.MethodDelete, "/contacts/people/{id}"},

	{"deal_getlist", http.MethodGet, "/deals"},
	{"deal_get", http.MethodGet, "/deals/{id}"},
	{"deal_create", http.MethodPost, "/deals"},
	{"deal_update", http.MethodPut, "/deals/{id}"},
	{"deal_delete", http.MethodDelete, "/deals/{id}"},

	{"deal_category_getlist", http.MethodGet, "/deal_categories"},
	{"deal_category_get", http.MethodGet, "/deal_categories/{id}"},
	{"deal_category_create", http.MethodPost, "/deal_categories"},
	{"deal_category_update", http.MethodPut, "/deal_categories/{id}"},
	{"deal_category_delete", http.MethodDelete, "/deal_categories/{id}"},

	{"comment_getlist", http.MethodGet, "/comments"},
	{"comment_get", http.MethodGet, "/comments/{id}"},
	{"comment_create", http.MethodPost, "/comments"},
	{"comment_create_bulk", http.MethodPost, "/comments/bulk"},
	{"comment_update", http.MethodPut, "/comments/{id}"},
	{"comment_delete", http.MethodDelete, "/comments/{id}"},

	{"tagging_getlist", http.MethodGet, "/taggings/{entity}/{id}"},
	{"tagging_add", http.MethodPatch, "/taggings/{entity}/{id}"},
	{"tagging_replace", http.MethodPut, "/taggings/{entity}/{id}"},
	{"tagging_remove", http.MethodDelete, "/taggings/{entity}/{id}"},

	// Account
	{"hourly_rate_get", http.MethodGet, "/account/hourly_rates"},
	{"fixed_cost_getlist", http.MethodGet, "/account/fixed_costs"},

	{"session_authenticate", http.MethodPost, "/session"},
	{"session_verify", http.MethodGet, "/session"},
})

func buildEndpoints(list []Endpoint) map[string]Endpoint {
	m := make(map[string]Endpoint, len(list))
	for _, e := range list {
		if _, dup := m[e.Name]; dup {
			panic("moco: duplicate endpoint " + e.Name)
		}
		m[e.Name] = e
	}
	return m
}
