// Package feature resolves boolean feature flags from the environment.
package feature

import "github.com/gobeaver/envkit/env"

// Flag binds a flag name to its environment variable and default state.
type Flag struct {
	Var     string
	Default bool
}

// Resolve evaluates every flag against src. A present value enables the
// flag only when it is "true" or "1" (case insensitive); any other present
// value disables it. Absent variables keep the default.
func Resolve(src env.Source, flags map[string]Flag) map[string]bool {
	out := make(map[string]bool, len(flags))
	for name, f := range flags {
		raw, ok := src.Lookup(f.Var)
		if !ok {
			out[name] = f.Default
			continue
		}
		out[name] = env.IsTrue(raw)
	}
	return out
}

// Enabled reports whether name is on; unknown names are off.
func Enabled(flags map[string]bool, name string) bool {
	return flags[name]
}
