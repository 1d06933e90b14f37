package pricing

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gobeaver/envkit/env"
)

const tableYAML = `
prices:
  basic:
    var: PRICE_BASIC
    default: 0.99
  premium:
    var: PRICE_PREMIUM
    default: 4.99
routes:
  - path: /v1/convert
    price_key: basic
    description: single conversion
  - path: /v1/batch
    price_key: premium
  - path: /healthz
    price_key: free
`

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prices.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTable(t *testing.T) {
	tbl, err := LoadTable(writeTable(t, tableYAML))
	if err != nil {
		t.Fatalf("LoadTable() failed: %v", err)
	}

	if len(tbl.Prices) != 2 || len(tbl.Routes) != 3 {
		t.Fatalf("table = %d prices, %d routes; want 2, 3", len(tbl.Prices), len(tbl.Routes))
	}
	if p := tbl.Prices["premium"]; p.Var != "PRICE_PREMIUM" || p.Default != 4.99 {
		t.Errorf("premium = %+v, want var PRICE_PREMIUM default 4.99", p)
	}
}

func TestLoadTableMissingFile(t *testing.T) {
	if _, err := LoadTable(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadTable() on a missing file did not fail")
	}
}

func TestLoadTableBadYAML(t *testing.T) {
	if _, err := LoadTable(writeTable(t, "prices: [broken")); err == nil {
		t.Error("LoadTable() on malformed YAML did not fail")
	}
}

func TestTableResolveEnvOverridesFileDefault(t *testing.T) {
	tbl, err := LoadTable(writeTable(t, tableYAML))
	if err != nil {
		t.Fatalf("LoadTable() failed: %v", err)
	}

	got := tbl.Resolve(env.Map{"PRICE_BASIC": "1.25"})
	want := map[string]RoutePrice{
		"/v1/convert": {Path: "/v1/convert", Price: 1.25, Description: "single conversion"},
		"/v1/batch":   {Path: "/v1/batch", Price: 4.99},
		"/healthz":    {Path: "/healthz", Price: 0}, // price key undeclared
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
}
