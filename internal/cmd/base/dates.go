package base

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco"
)

// ParseDate accepts any common date notation ("2024-03-01", "03/01/2024",
// "March 1, 2024"). An empty string yields the zero time.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// ParseDateRange parses both ends of a range. Whether the pair is
// complete is left to the client.
func ParseDateRange(from, to string) (moco.DateRange, error) {
	var (
		r   moco.DateRange
		err error
	)
	if r.From, err = ParseDate(from); err != nil {
		return r, err
	}
	if r.To, err = ParseDate(to); err != nil {
		return r, err
	}
	return r, nil
}
