package schema

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/gobeaver/envkit/env"
)

// Validate walks the schema like Resolve but never stops and never fails:
// every finding is collected into the Result. Hard errors are missing
// required variables, rejected validators, and unparsable Float or JSON
// values. An optional variable that is unset with no default is only a
// warning. Transforms are not evaluated. Intended as a dry-run companion to
// Resolve for startup diagnostics.
func Validate(src env.Source, s *Schema, opts ...Option) Result {
	o := applyOptions(opts)
	var res Result

	for _, v := range s.vars {
		name := s.Name(v.Key)
		raw, ok := src.Lookup(name)

		if !ok || raw == "" {
			if v.Rule.Required {
				res.Errors = append(res.Errors, fmt.Sprintf("required variable %s is not set", name))
				o.debug("missing required", zap.String("var", name))
			} else if v.Rule.Default == nil {
				res.Warnings = append(res.Warnings, fmt.Sprintf("optional variable %s is not set and has no default", name))
			}
			continue
		}

		if v.Rule.Validate != nil && !v.Rule.Validate(raw) {
			res.Errors = append(res.Errors, fmt.Sprintf("invalid value for %s", name))
			o.debug("validator rejected", zap.String("var", name))
			continue
		}

		if v.Rule.Transform != nil {
			continue
		}

		switch v.Rule.Type {
		case Float:
			if _, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err != nil {
				res.Errors = append(res.Errors, fmt.Sprintf("%s is not a number: %q", name, raw))
			}
		case JSON:
			var out any
			if err := json.Unmarshal([]byte(raw), &out); err != nil {
				res.Errors = append(res.Errors, fmt.Sprintf("%s is not valid JSON", name))
			}
		}
	}

	res.Valid = len(res.Errors) == 0
	return res
}
