package pricing

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gobeaver/envkit/env"
)

// Table is a price table declared in a YAML file:
//
//	prices:
//	  basic:
//	    var: PRICE_BASIC
//	    default: 0.99
//	  premium:
//	    var: PRICE_PREMIUM
//	    default: 4.99
//	routes:
//	  - path: /v1/convert
//	    price_key: basic
//	    description: single conversion
//
// Environment values override the file defaults at resolution time.
type Table struct {
	Prices map[string]Price `yaml:"prices"`
	Routes []Route          `yaml:"routes"`
}

// LoadTable reads and parses a YAML price table.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read price table: %w", err)
	}
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse price table %s: %w", path, err)
	}
	return &t, nil
}

// Resolve produces the table's route map: prices come from src with the
// file defaults as fallback, then join with the declared routes.
func (t *Table) Resolve(src env.Source) map[string]RoutePrice {
	return RouteMap(t.Routes, Resolve(src, t.Prices))
}
