package models

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Record is an untyped JSON object, used for endpoints without a typed
// model and for the raw console output.
type Record map[string]any

// Decode copies the record into out, matching fields by their json tags.
func (r Record) Decode(out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Squash:           true,
		Result:           out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			dateHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(map[string]any(r)); err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}
	return nil
}

// ID returns the numeric id of the record, or 0.
func (r Record) ID() int {
	switch id := r["id"].(type) {
	case float64:
		return int(id)
	case int:
		return id
	}
	return 0
}

// String returns the string value of key, or "".
func (r Record) String(key string) string {
	if s, ok := r[key].(string); ok {
		return s
	}
	return ""
}

var dateType = reflect.TypeOf(Date{})

func dateHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != dateType {
		return data, nil
	}
	switch from.Kind() {
	case reflect.String:
		s := data.(string)
		if s == "" {
			return Date{}, nil
		}
		var d Date
		if err := d.UnmarshalJSON([]byte(`"` + s + `"`)); err != nil {
			return nil, err
		}
		return d, nil
	case reflect.Invalid:
		return Date{}, nil
	}
	return data, nil
}
