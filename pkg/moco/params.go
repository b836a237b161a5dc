package moco

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

// DateLayout is the calendar date format Moco uses on the wire.
const DateLayout = "2006-01-02"

// Params holds the query or body values of a single call.
type Params map[string]any

// Set stores v under key unless v is unset: nil, a nil pointer, an empty
// string, slice or map, or a zero value. Non-nil pointers are always kept,
// which is how an explicit false or 0 is sent.
func (p Params) Set(key string, v any) Params {
	if isUnset(v) {
		return p
	}
	p[key] = normalize(v)
	return p
}

// Put stores v under key unconditionally.
func (p Params) Put(key string, v any) Params {
	p[key] = normalize(v)
	return p
}

// normalize turns times into calendar dates so they encode as 2006-01-02
// in JSON bodies as well as in query strings.
func normalize(v any) any {
	switch val := v.(type) {
	case time.Time:
		return models.DateOf(val)
	case *time.Time:
		if val == nil {
			return nil
		}
		return models.DateOf(*val)
	}
	return v
}

// Merge copies every entry of other into p, overwriting existing keys.
func (p Params) Merge(other Params) Params {
	for k, v := range other {
		p[k] = v
	}
	return p
}

// Values encodes the params as a query string.
func (p Params) Values() url.Values {
	values := url.Values{}
	for k, v := range p {
		if s := formatValue(v); s != "" {
			values.Set(k, s)
		}
	}
	return values
}

func isUnset(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	case reflect.Slice, reflect.Map:
		return rv.Len() == 0
	}
	return rv.IsZero()
}

// formatValue renders a parameter for a query string or a path segment.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.Format(DateLayout)
	case []string:
		return strings.Join(val, ",")
	case []int:
		parts := make([]string, len(val))
		for i, n := range val {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, ",")
	case fmt.Stringer:
		return val.String()
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		return formatValue(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}

// SortOrder is the direction part of a sort parameter.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// FormatSort combines a field name and an order into Moco's sort_by value.
// The order defaults to ascending.
func FormatSort(field string, order SortOrder) (string, error) {
	if order == "" {
		order = SortAsc
	}
	if err := validation.Validate(string(order),
		validation.In(string(SortAsc), string(SortDesc)),
	); err != nil {
		return "", &ValidationError{Field: "sort_order", Err: err}
	}
	return fmt.Sprintf("%s %s", field, order), nil
}

// ListOptions carries the pagination and sort parameters shared by every
// list operation.
type ListOptions struct {
	// Page to fetch. Defaults to 1.
	Page int

	// SortBy names the field to sort by. Empty leaves ordering to Moco.
	SortBy string

	// SortOrder defaults to ascending.
	SortOrder SortOrder
}

func (o ListOptions) apply(p Params) error {
	page := o.Page
	if page < 1 {
		page = 1
	}
	p.Put("page", page)

	if o.SortBy != "" {
		sort, err := FormatSort(o.SortBy, o.SortOrder)
		if err != nil {
			return err
		}
		p.Put("sort_by", sort)
	}
	return nil
}

// DateRange is an optional pair of dates. Either both ends are set or
// neither is.
type DateRange struct {
	From time.Time
	To   time.Time
}

// IsZero reports whether neither end of the range is set.
func (r DateRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// Validate fails when exactly one end of the range is set.
func (r DateRange) Validate() error {
	if r.From.IsZero() != r.To.IsZero() {
		return ErrInvalidDateRange
	}
	return nil
}

func (r DateRange) apply(p Params, fromKey, toKey string) error {
	if err := r.Validate(); err != nil {
		return &ValidationError{Field: fromKey + "/" + toKey, Err: err}
	}
	p.Set(fromKey, r.From)
	p.Set(toKey, r.To)
	return nil
}

// Bool returns a pointer to b, for optional boolean fields.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to n, for optional integer fields.
func Int(n int) *int { return &n }

// Float returns a pointer to f, for optional numeric fields.
func Float(f float64) *float64 { return &f }

// String returns a pointer to s, for optional string fields.
func String(s string) *string { return &s }
