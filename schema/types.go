package schema

// Type selects the coercion applied to a present raw value. String is the
// zero value and passes the raw string through unchanged.
type Type string

const (
	String Type = "string"
	Float  Type = "float"
	Bool   Type = "bool"
	JSON   Type = "json"
)

// Rule describes how one logical key resolves.
type Rule struct {
	// Required makes an absent or empty variable fatal under a strict
	// schema.
	Required bool

	// Default is used verbatim, with no coercion, when the variable is
	// absent or empty. A nil Default leaves the key out of the result.
	Default any

	// Type selects the coercion for a present value. Ignored when
	// Transform is set.
	Type Type

	// Validate, when set, must accept the raw string before any coercion
	// or transform runs.
	Validate func(raw string) bool

	// Transform, when set, produces the resolved value from the raw
	// string. Its error aborts resolution.
	Transform func(raw string) (any, error)
}

// Var pairs a logical key with its rule.
type Var struct {
	Key  string
	Rule Rule
}

// Schema declares the variables of one configuration, in order.
type Schema struct {
	// Prefix, when non-empty, joins with each logical key via "_" to form
	// the actual environment name.
	Prefix string

	// Strict makes missing required variables fatal in Resolve. NewSchema
	// enables it.
	Strict bool

	vars []Var
}

// NewSchema returns an empty strict Schema with the given prefix.
func NewSchema(prefix string) *Schema {
	return &Schema{Prefix: prefix, Strict: true}
}

// Var appends a rule for key, preserving declaration order, and returns the
// schema for chaining.
func (s *Schema) Var(key string, rule Rule) *Schema {
	s.vars = append(s.vars, Var{Key: key, Rule: rule})
	return s
}

// Vars returns the declared variables in declaration order.
func (s *Schema) Vars() []Var {
	return s.vars
}

// Name returns the actual environment name for a logical key.
func (s *Schema) Name(key string) string {
	if s.Prefix != "" {
		return s.Prefix + "_" + key
	}
	return key
}

// Config is a resolved configuration keyed by logical key. Keys that
// resolved to no value (optional, unset, no default) are absent from the
// map.
type Config map[string]any

// Lookup returns the resolved value for key and whether it is present.
func (c Config) Lookup(key string) (any, bool) {
	v, ok := c[key]
	return v, ok
}

// String returns the value of key when it is a string, else def.
func (c Config) String(key, def string) string {
	if v, ok := c[key].(string); ok {
		return v
	}
	return def
}

// Float returns the value of key when it is a float64, else def.
func (c Config) Float(key string, def float64) float64 {
	if v, ok := c[key].(float64); ok {
		return v
	}
	return def
}

// Bool returns the value of key when it is a bool, else def.
func (c Config) Bool(key string, def bool) bool {
	if v, ok := c[key].(bool); ok {
		return v
	}
	return def
}

// Result collects every finding of Validate. Valid is true when Errors is
// empty; Warnings alone do not invalidate a configuration.
type Result struct {
	Valid    bool
	Errors   []string
	Warnings []string
}
