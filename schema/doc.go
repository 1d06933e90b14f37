// Package schema resolves a declared set of environment variables into a
// typed configuration.
//
// A Schema maps logical keys to per-variable rules: required or optional, a
// default, a coercion type, and optional validator and transform hooks. The
// logical key combines with the schema prefix to form the actual variable
// name looked up in the environment.
//
//	s := schema.NewSchema("APP").
//	    Var("PORT", schema.Rule{Type: schema.Float, Default: 8080.0}).
//	    Var("DATABASE_URL", schema.Rule{Required: true}).
//	    Var("DEBUG", schema.Rule{Type: schema.Bool, Default: false})
//
//	cfg, err := schema.Resolve(env.System(), s)
//	if err != nil {
//	    log.Fatal(err) // e.g. required variable missing: APP_DATABASE_URL
//	}
//	port := cfg.Float("PORT", 0)
//
// Resolve is fail-fast: the first missing required variable, failed
// validator, transform error or coercion failure aborts with no partial
// result. Validate walks the same schema without stopping and reports every
// finding at once, separating hard errors from unset-optional warnings; use
// it for startup diagnostics before Resolve.
//
// Declared types are contractual: a variable declared Float that holds
// "abc" fails Resolve, while the fail-soft accessors in package env would
// silently fall back. Defaults are used verbatim without coercion.
//
// # Struct Loading
//
// Load populates a struct from `env` field tags, for callers that prefer a
// typed struct over a Config map:
//
//	type Config struct {
//	    DatabaseURL string        `env:"DATABASE_URL,required"`
//	    Port        int           `env:"PORT,default:8080"`
//	    Timeout     time.Duration `env:"TIMEOUT,default:30s"`
//	}
//
//	var cfg Config
//	err := schema.Load(&cfg, schema.LoadOptions{Prefix: "APP_"})
//
// Load silently reads a .env file from the working directory first, so
// development environments need no shell exports.
package schema
