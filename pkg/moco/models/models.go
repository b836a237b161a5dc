// Package models contains the records returned by the Moco API.
//
// Field names follow the API's JSON keys. Keys that would collide with
// reserved words elsewhere (from, to, type) are plain Go fields here.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date encoded as 2006-01-02.
type Date struct {
	time.Time
}

// NewDate returns the date for the given year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a 2006-01-02 string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// MarshalText keeps text encoders (yaml, flags) on the date layout instead
// of the timestamp layout of the embedded time.Time.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`""`)) {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	// Some endpoints return full timestamps where a date is expected.
	if len(s) > len(dateLayout) {
		t, err := time.Parse(time.RFC3339, s)
		if err == nil {
			*d = DateOf(t)
			return nil
		}
		s = s[:len(dateLayout)]
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	*d = parsed
	return nil
}

// UserRef is the abbreviated user embedded in other records.
type UserRef struct {
	ID        int    `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// ProjectRef is the abbreviated project embedded in other records.
type ProjectRef struct {
	ID         int    `json:"id"`
	Identifier string `json:"identifier,omitempty"`
	Name       string `json:"name"`
	Billable   bool   `json:"billable,omitempty"`
}

// TaskRef is the abbreviated project task embedded in activities.
type TaskRef struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Billable bool   `json:"billable,omitempty"`
}

// CompanyRef is the abbreviated company (customer, supplier or organization).
type CompanyRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// UnitRef is the abbreviated unit (team) of a user.
type UnitRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DealRef is the abbreviated deal embedded in projects and offers.
type DealRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CategoryRef is the abbreviated category of a deal or purchase.
type CategoryRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Timestamps are shared by every record Moco stores.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
