// Package pricing assembles per-route price tables from environment
// variables and optional YAML table files.
package pricing

import (
	"math"
	"strconv"
	"strings"

	"github.com/gobeaver/envkit/env"
)

// Parse float-parses a raw price, returning fallback when the value is
// empty, unparsable or NaN. No rounding and no currency validation.
func Parse(raw string, fallback float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) {
		return fallback
	}
	return f
}

// Price binds a logical price key to its environment variable and default
// amount.
type Price struct {
	Var     string  `yaml:"var"`
	Default float64 `yaml:"default"`
}

// Resolve reads every price from src, falling back to the declared default
// when the variable is unset or unparsable.
func Resolve(src env.Source, prices map[string]Price) map[string]float64 {
	out := make(map[string]float64, len(prices))
	for key, p := range prices {
		raw, _ := p.lookup(src)
		out[key] = Parse(raw, p.Default)
	}
	return out
}

func (p Price) lookup(src env.Source) (string, bool) {
	if p.Var == "" {
		return "", false
	}
	return src.Lookup(p.Var)
}

// Route declares one priced path.
type Route struct {
	Path        string `yaml:"path"`
	PriceKey    string `yaml:"price_key"`
	Description string `yaml:"description"`
}

// RoutePrice is a priced route entry.
type RoutePrice struct {
	Path        string  `json:"path"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

// RouteMap joins routes with resolved prices, keyed by path. A route whose
// PriceKey has no entry in prices silently maps to price 0.
func RouteMap(routes []Route, prices map[string]float64) map[string]RoutePrice {
	out := make(map[string]RoutePrice, len(routes))
	for _, r := range routes {
		out[r.Path] = RoutePrice{
			Path:        r.Path,
			Price:       prices[r.PriceKey],
			Description: r.Description,
		}
	}
	return out
}

// Lookup returns the price for path; the second return is false when the
// path is not mapped.
func Lookup(m map[string]RoutePrice, path string) (float64, bool) {
	rp, ok := m[path]
	return rp.Price, ok
}
