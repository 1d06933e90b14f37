// Package env provides typed access to environment variables through an
// explicit read-only snapshot.
//
// The snapshot is modeled by the Source interface, which distinguishes a
// variable that is absent from one that is set to the empty string. The
// process environment is wired in at the edge with System, and tests supply
// a Map literal instead:
//
//	src := env.Map{"PORT": "8080", "DEBUG": "1"}
//	r := env.NewReader(src)
//	port := r.Float("PORT", 3000)  // 8080
//	debug := r.Bool("DEBUG", false) // true
//
// Package-level functions read the process environment directly for the
// common case:
//
//	dsn, err := env.Required("DATABASE_URL")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// Every accessor except Required and MustGet is fail-soft: an absent
// variable, an unparsable number, or malformed JSON silently yields the
// caller-supplied default. Required returns an error naming the variable
// when it is absent or empty; MustGet panics with that error and is meant
// for process startup.
package env
