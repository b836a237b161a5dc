// Package moco is a client for the Moco REST API (https://{domain}.mocoapp.com/api/v1).
//
// # Overview
//
// Every operation is registered in a static endpoint table under a logical
// name such as "activity_getlist" or "project_task_update". The resource
// services hanging off Client (Activities, Invoices, Projects, ...) build
// the query or JSON body of an operation and pass it to Client.Do, which
// expands the path template, authenticates and hands the request to a
// Requestor.
//
// # Conventions
//
//   - List operations send page=1 unless another page is requested.
//   - Sorting is sent as sort_by="<field> <order>", ascending by default.
//   - Date pairs (from/to, date_from/date_to, ...) must be given together.
//     A single end fails with a *ValidationError before any request is made.
//   - Dates are sent as 2006-01-02.
//
// # Rate limiting
//
// HTTPRequestor pauses for a fixed delay (one second by default) before
// every request. The pause does not adapt to earlier calls. Retrying 429
// responses is off unless Config.RateLimitRetries is set.
//
// # Example
//
//	client, err := moco.NewClient(&moco.Config{
//		Domain: "example",
//		APIKey: os.Getenv("MOCO_API_KEY"),
//	})
//	if err != nil {
//		return err
//	}
//
//	page, err := client.Activities.List(ctx, moco.ActivityListOptions{
//		Dates: moco.DateRange{From: from, To: to},
//	})
//
// # Errors
//
// Non-2xx responses are returned as *APIError. errors.Is matches them
// against ErrUnauthorized, ErrForbidden, ErrNotFound, ErrUnprocessable,
// ErrRateLimited and ErrServer.
package moco
