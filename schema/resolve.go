package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/gobeaver/envkit/env"
)

// Resolution errors, matchable with errors.Is.
var (
	ErrMissingVar   = errors.New("required variable missing")
	ErrInvalidValue = errors.New("invalid value")
	ErrBadFloat     = errors.New("not a number")
	ErrBadJSON      = errors.New("invalid JSON")
)

// Option adjusts Resolve and Validate behavior.
type Option func(*options)

type options struct {
	log *zap.Logger
}

// WithLogger traces per-key resolution outcomes at Debug level.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

func applyOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func (o options) debug(msg string, fields ...zap.Field) {
	if o.log != nil {
		o.log.Debug(msg, fields...)
	}
}

// Resolve reads every schema variable from src in declaration order and
// returns the typed configuration. The first problem aborts with a nil
// Config: a missing required variable (under Strict), a rejected validator,
// a transform error, or a Float/JSON coercion failure. An absent or empty
// optional variable takes its Default verbatim, or is omitted when there is
// none.
func Resolve(src env.Source, s *Schema, opts ...Option) (Config, error) {
	o := applyOptions(opts)
	cfg := make(Config, len(s.vars))

	for _, v := range s.vars {
		name := s.Name(v.Key)
		raw, ok := src.Lookup(name)

		if !ok || raw == "" {
			if v.Rule.Required && s.Strict {
				return nil, fmt.Errorf("%w: %s", ErrMissingVar, name)
			}
			if v.Rule.Default != nil {
				cfg[v.Key] = v.Rule.Default
				o.debug("using default", zap.String("key", v.Key), zap.String("var", name))
				continue
			}
			o.debug("unset", zap.String("key", v.Key), zap.String("var", name))
			continue
		}

		if v.Rule.Validate != nil && !v.Rule.Validate(raw) {
			return nil, fmt.Errorf("%w for %s", ErrInvalidValue, name)
		}

		if v.Rule.Transform != nil {
			val, err := v.Rule.Transform(raw)
			if err != nil {
				return nil, fmt.Errorf("transform %s: %w", name, err)
			}
			cfg[v.Key] = val
			o.debug("transformed", zap.String("key", v.Key), zap.String("var", name))
			continue
		}

		val, err := coerce(raw, v.Rule.Type, name)
		if err != nil {
			return nil, err
		}
		cfg[v.Key] = val
		o.debug("resolved", zap.String("key", v.Key), zap.String("var", name))
	}

	return cfg, nil
}

// coerce converts a present raw value per the declared type. Unlike the
// fail-soft accessors in package env, Float and JSON parse failures here
// are fatal.
func coerce(raw string, t Type, name string) (any, error) {
	switch t {
	case Float:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrBadFloat, name, raw)
		}
		return f, nil
	case Bool:
		return env.IsTrue(raw), nil
	case JSON:
		var out any
		if err := json.Unmarshal([]byte(raw), &out); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrBadJSON, name, err)
		}
		return out, nil
	default:
		return raw, nil
	}
}
