package env

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// ErrMissingVar indicates a required variable that is absent or empty.
var ErrMissingVar = errors.New("missing required environment variable")

// Reader provides typed accessors over a Source.
type Reader struct {
	src Source
}

// NewReader returns a Reader over src.
func NewReader(src Source) *Reader {
	return &Reader{src: src}
}

// Get returns the raw value of key, or def when the variable is absent.
// A variable set to the empty string is returned as "".
func (r *Reader) Get(key, def string) string {
	v, ok := r.src.Lookup(key)
	if !ok {
		return def
	}
	return v
}

// Required returns the value of key, failing when the variable is absent
// or set to the empty string.
func (r *Reader) Required(key string) (string, error) {
	v, ok := r.src.Lookup(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingVar, key)
	}
	return v, nil
}

// Float parses key as a float64. Absent variables, unparsable values and
// values that parse to NaN all yield def.
func (r *Reader) Float(key string, def float64) float64 {
	v, ok := r.src.Lookup(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) {
		return def
	}
	return f
}

// Bool reads key as a boolean. A present value is true only when it equals
// "true" or "1" after lower-casing; every other present value is false.
// Absent variables yield def.
func (r *Reader) Bool(key string, def bool) bool {
	v, ok := r.src.Lookup(key)
	if !ok {
		return def
	}
	return IsTrue(v)
}

// JSON parses key as an arbitrary JSON document. Absent variables and parse
// failures yield def; the parse error is not surfaced.
func (r *Reader) JSON(key string, def any) any {
	v, ok := r.src.Lookup(key)
	if !ok {
		return def
	}
	var out any
	if err := json.Unmarshal([]byte(v), &out); err != nil {
		return def
	}
	return out
}

// IsTrue reports whether raw is a true value: "true" or "1", case
// insensitive. "yes", "on" and friends are false.
func IsTrue(raw string) bool {
	switch strings.ToLower(raw) {
	case "true", "1":
		return true
	}
	return false
}

// Process-environment reader behind the package-level accessors.
var std = NewReader(System())

// Get reads key from the process environment, or def when unset.
func Get(key, def string) string {
	return std.Get(key, def)
}

// Required reads key from the process environment, failing when it is
// unset or empty.
func Required(key string) (string, error) {
	return std.Required(key)
}

// MustGet is Required for process startup: it panics when key is unset
// or empty.
func MustGet(key string) string {
	v, err := std.Required(key)
	if err != nil {
		panic(err)
	}
	return v
}

// Float reads key from the process environment as a float64.
func Float(key string, def float64) float64 {
	return std.Float(key, def)
}

// Bool reads key from the process environment as a boolean.
func Bool(key string, def bool) bool {
	return std.Bool(key, def)
}

// JSON reads key from the process environment as a JSON document.
func JSON(key string, def any) any {
	return std.JSON(key, def)
}
