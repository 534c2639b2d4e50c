// Package payload validates and normalises the JSON document barrage emits on
// every tick.
package payload

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// ErrInvalid is returned for text that is not a single JSON value.
var ErrInvalid = errors.New("invalid JSON payload")

// Parse validates text as JSON and returns it in compact form.
func Parse(text string) (jsontext.Value, error) {
	v := jsontext.Value(strings.TrimSpace(text))
	if !v.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalid, text)
	}
	if err := v.Compact(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return v, nil
}

// FromValue marshals a decoded value, such as one read from a config file,
// into compact JSON with object members in sorted order.
func FromValue(v any) (jsontext.Value, error) {
	b, err := json.Marshal(v, json.Deterministic(true))
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return jsontext.Value(b), nil
}
