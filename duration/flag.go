package duration

import (
	"time"

	"github.com/spf13/pflag"
)

// Flag is a pflag.Value that accepts the grammar understood by Parse.
type Flag struct {
	d    time.Duration
	text string
}

var _ pflag.Value = (*Flag)(nil)

// NewFlag returns a Flag holding d.
func NewFlag(d time.Duration) *Flag {
	return &Flag{d: d}
}

// Set parses text with Parse and keeps it for String.
func (f *Flag) Set(text string) error {
	d, err := Parse(text)
	if err != nil {
		return err
	}
	f.d = d
	f.text = text
	return nil
}

// String returns the text last passed to Set, or the formatted duration.
func (f *Flag) String() string {
	if f.text != "" {
		return f.text
	}
	if f.d == 0 {
		return ""
	}
	return f.d.String()
}

// Type names the flag value in usage output.
func (f *Flag) Type() string {
	return "duration"
}

// Duration returns the current value.
func (f *Flag) Duration() time.Duration {
	return f.d
}
