package moco

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

// Response is the successful result of Client.Do.
type Response struct {
	Endpoint   string
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Empty reports whether the response carries no body.
func (r *Response) Empty() bool {
	return len(r.Body) == 0
}

// Decode unmarshals the body into out. An empty body leaves out unchanged.
func (r *Response) Decode(out any) error {
	if r.Empty() {
		return nil
	}
	if err := json.Unmarshal(r.Body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", r.Endpoint, err)
	}
	return nil
}

// Record decodes the body as a single JSON object.
func (r *Response) Record() (models.Record, error) {
	var rec models.Record
	if err := r.Decode(&rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Records decodes the body as a JSON array of objects.
func (r *Response) Records() ([]models.Record, error) {
	var recs []models.Record
	if err := r.Decode(&recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// Listing is one page of a list endpoint. Page, PerPage and Total come from
// the X-Page, X-Per-Page and X-Total headers and stay zero when absent.
type Listing[T any] struct {
	Items   []T
	Page    int
	PerPage int
	Total   int
}

// HasNext reports whether a page after this one exists.
func (l *Listing[T]) HasNext() bool {
	if l.PerPage <= 0 || l.Page <= 0 {
		return false
	}
	return l.Page*l.PerPage < l.Total
}

// NextPage returns the number of the following page.
func (l *Listing[T]) NextPage() int {
	return l.Page + 1
}

// All fetches pages starting at page 1 until the last one and returns the
// concatenated items.
func All[T any](ctx context.Context, fetch func(ctx context.Context, page int) (*Listing[T], error)) ([]T, error) {
	var items []T
	page := 1
	for {
		listing, err := fetch(ctx, page)
		if err != nil {
			return nil, err
		}
		items = append(items, listing.Items...)
		if !listing.HasNext() {
			return items, nil
		}
		page = listing.NextPage()
	}
}

// File is a binary download such as an invoice PDF. Filename never
// contains a directory component.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

func decodeObject[T any](resp *Response) (*T, error) {
	var out T
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func decodeSlice[T any](resp *Response) ([]T, error) {
	var out []T
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeListing[T any](resp *Response) (*Listing[T], error) {
	items, err := decodeSlice[T](resp)
	if err != nil {
		return nil, err
	}
	return &Listing[T]{
		Items:   items,
		Page:    headerInt(resp.Header, "X-Page"),
		PerPage: headerInt(resp.Header, "X-Per-Page"),
		Total:   headerInt(resp.Header, "X-Total"),
	}, nil
}

func decodeFile(resp *Response, fallbackName string) *File {
	f := &File{
		Filename:    fallbackName,
		ContentType: resp.Header.Get("Content-Type"),
		Data:        resp.Body,
	}
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			if name := baseFilename(params["filename"]); name != "" {
				f.Filename = name
			}
		}
	}
	return f
}

// baseFilename strips any directory from a server supplied file name and
// returns "" when nothing usable is left.
func baseFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	switch name {
	case ".", "..", "/":
		return ""
	}
	return name
}

func headerInt(h http.Header, key string) int {
	if h == nil {
		return 0
	}
	n, err := strconv.Atoi(h.Get(key))
	if err != nil {
		return 0
	}
	return n
}
