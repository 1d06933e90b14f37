package pricing

import (
	"reflect"
	"testing"

	"github.com/gobeaver/envkit/env"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		fallback float64
		expected float64
	}{
		{name: "decimal price", raw: "4.99", fallback: 1, expected: 4.99},
		{name: "integer price", raw: "10", fallback: 1, expected: 10},
		{name: "zero is a valid price", raw: "0", fallback: 1, expected: 0},
		{name: "empty falls back", raw: "", fallback: 1, expected: 1},
		{name: "unparsable falls back", raw: "free", fallback: 1, expected: 1},
		{name: "NaN falls back", raw: "NaN", fallback: 1, expected: 1},
		{name: "no rounding applied", raw: "0.333333", fallback: 1, expected: 0.333333},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.raw, tt.fallback); got != tt.expected {
				t.Errorf("Parse(%q, %v) = %v, want %v", tt.raw, tt.fallback, got, tt.expected)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	prices := map[string]Price{
		"basic":   {Var: "PRICE_BASIC", Default: 0.99},
		"premium": {Var: "PRICE_PREMIUM", Default: 4.99},
		"broken":  {Var: "PRICE_BROKEN", Default: 2.50},
		"unbound": {Default: 7},
	}
	src := env.Map{
		"PRICE_BASIC":  "1.49",
		"PRICE_BROKEN": "n/a",
	}

	got := Resolve(src, prices)
	want := map[string]float64{
		"basic":   1.49, // env override
		"premium": 4.99, // unset, default
		"broken":  2.50, // unparsable, default
		"unbound": 7,    // no variable bound, default
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
}

func TestRouteMap(t *testing.T) {
	routes := []Route{
		{Path: "/a", PriceKey: "basic", Description: "entry tier"},
		{Path: "/b", PriceKey: "missing"},
	}
	prices := map[string]float64{"basic": 0.99}

	got := RouteMap(routes, prices)
	want := map[string]RoutePrice{
		"/a": {Path: "/a", Price: 0.99, Description: "entry tier"},
		"/b": {Path: "/b", Price: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RouteMap() = %v, want %v", got, want)
	}
}

func TestRouteMapMissingKeyIsZeroNotError(t *testing.T) {
	got := RouteMap([]Route{{Path: "/a", PriceKey: "missing"}}, map[string]float64{})
	want := map[string]RoutePrice{"/a": {Path: "/a", Price: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RouteMap() = %v, want %v", got, want)
	}
}

func TestLookup(t *testing.T) {
	m := map[string]RoutePrice{
		"/a": {Path: "/a", Price: 2.5},
	}

	if price, ok := Lookup(m, "/a"); !ok || price != 2.5 {
		t.Errorf("Lookup(/a) = %v, %v; want 2.5, true", price, ok)
	}
	if price, ok := Lookup(m, "/nope"); ok || price != 0 {
		t.Errorf("Lookup(/nope) = %v, %v; want 0, false", price, ok)
	}
}
