package schema

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/gobeaver/envkit/env"
)

// LoadOptions controls Load.
type LoadOptions struct {
	// Prefix is prepended verbatim to every tag name (e.g. "MYAPP_").
	Prefix string

	// Source overrides the process environment, mainly for tests. When
	// set, no .env file is read.
	Source env.Source

	// Logger traces each populated variable at Debug level.
	Logger *zap.Logger
}

// Load populates a struct from environment variables using `env` field
// tags. Tags take the form `env:"NAME"` with optional comma-separated
// options: "default:value" supplies a fallback for an unset or empty
// variable, and "required" makes that case an error instead.
//
// Supported field types are string, bool, int, int64, float64 and
// time.Duration; fields of other types or without a tag are left untouched.
// Booleans follow the environment convention of this module: true only for
// "true" or "1", case insensitive.
//
// When reading the process environment, a .env file in the working
// directory is loaded first if present; a missing file is not an error.
func Load(cfg any, opts ...LoadOptions) error {
	var o LoadOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Source == nil {
		// Best-effort .env pickup, the development convenience path.
		_ = godotenv.Load()
		o.Source = env.System()
	}

	rv := reflect.ValueOf(cfg)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("schema: Load wants a pointer to a struct, got %T", cfg)
	}

	v := rv.Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("env")
		if tag == "" {
			continue
		}
		name, def, required := parseTag(tag)
		name = o.Prefix + name

		raw, ok := o.Source.Lookup(name)
		if !ok || raw == "" {
			if required {
				return fmt.Errorf("%w: %s", ErrMissingVar, name)
			}
			if def == "" {
				continue
			}
			raw = def
		}

		if o.Logger != nil {
			o.Logger.Debug("load env", zap.String("var", name), zap.String("value", raw))
		}

		if err := setField(v.Field(i), raw); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

// parseTag splits an env tag into variable name, default and required flag.
func parseTag(tag string) (name, def string, required bool) {
	parts := strings.Split(tag, ",")
	name = parts[0]
	for _, p := range parts[1:] {
		switch {
		case p == "required":
			required = true
		case strings.HasPrefix(p, "default:"):
			def = strings.TrimPrefix(p, "default:")
		}
	}
	return name, def, required
}

func setField(field reflect.Value, raw string) error {
	// time.Duration before the int kinds, it is an int64 underneath.
	if field.Type() == reflect.TypeOf(time.Duration(0)) {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		field.Set(reflect.ValueOf(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		field.SetFloat(f)
	case reflect.Bool:
		field.SetBool(env.IsTrue(raw))
	default:
		// Unsupported kinds are skipped, not errors.
	}
	return nil
}
