package env

import "os"

// Source is a read-only snapshot of named string values. Lookup reports
// whether the name is set at all; a set-but-empty value returns ("", true),
// which is distinct from absent ("", false).
type Source interface {
	Lookup(name string) (string, bool)
}

// Map is a literal Source backed by a plain map, for tests and for hosts
// that assemble their own snapshot.
type Map map[string]string

// Lookup implements Source.
func (m Map) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

type systemSource struct{}

func (systemSource) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// System returns a Source backed by the process environment. The library
// only ever reads through it.
func System() Source {
	return systemSource{}
}
