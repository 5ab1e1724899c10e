package importer

import (
	"os"
	"path/filepath"
	"testing"
	"traysheet/product"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestConvert_AssignsRowOrdinalsInInputOrder(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	path := writeFile(t, "products.csv", []byte(
		"Handle,Title,Variant SKU,Variant Price,Variant Grams,Variant Weight Unit,Published\n"+
			"blue-shirt,Blue Shirt,101,49.90,0.5,kg,true\n"+
			",,,,,,false\n"+
			"red-hat,Red Hat,oops,10,120,g,\n",
	))

	records, err := Read(path, "", cfg)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	result := Convert(records, cfg)

	if result.RowsRead != 3 || len(result.Rows) != 3 {
		t.Fatalf("unexpected counts: read=%d rows=%d", result.RowsRead, len(result.Rows))
	}

	first := result.Rows[0]
	if first.Get(product.ProductID) != product.Int(101) ||
		first.Get(product.WeightGrams) != product.Float(500) ||
		first.Get(product.Active) != product.String("S") ||
		first.Get(product.SEOURL) != product.String("blue-shirt") {
		t.Fatalf("unexpected first row: %+v", first)
	}

	second := result.Rows[1]
	if second.Get(product.Name) != product.String("Product 2") {
		t.Fatalf("unexpected placeholder name: %+v", second.Get(product.Name))
	}
	if second.Get(product.ProductID) != product.Int(1003) {
		t.Fatalf("unexpected generated id: %+v", second.Get(product.ProductID))
	}
	if second.Get(product.Active) != product.String("N") {
		t.Fatalf("unexpected active marker: %+v", second.Get(product.Active))
	}

	third := result.Rows[2]
	if third.Get(product.ProductID) != product.Int(1004) {
		t.Fatalf("unexpected generated id: %+v", third.Get(product.ProductID))
	}
	if third.Get(product.WeightGrams) != product.Float(120) {
		t.Fatalf("unexpected weight: %+v", third.Get(product.WeightGrams))
	}

	wantWarnings := []string{
		"Warning: Missing ID in row 3, using 1003 instead",
		"Warning: Empty product name in row 3, using 'Product 2' instead",
		"Warning: Non-numeric ID in row 4, using 1004 instead",
	}
	if len(result.Warnings) != len(wantWarnings) {
		t.Fatalf("unexpected warnings: %+v", result.Warnings)
	}
	for i, want := range wantWarnings {
		if got := result.Warnings[i].String(); got != want {
			t.Fatalf("unexpected warning %d: want %q, got %q", i, want, got)
		}
	}
}

func TestConvert_OutputInvariants(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	records := []Record{
		testRecord(map[string]string{"Variant Inventory Qty": "-4", "Variant Price": "abc", "Published": "FALSE"}),
		testRecord(map[string]string{"Quantity": "3.7", "Cost per item": "2.5"}),
		testRecord(map[string]string{}),
	}

	result := Convert(records, cfg)
	for i, row := range result.Rows {
		stock := row.Get(product.Stock)
		if stock.Kind != product.KindInt || stock.Int < 0 {
			t.Fatalf("row %d: unexpected stock %+v", i, stock)
		}
		for _, field := range []product.Field{product.SalePrice, product.CostPrice} {
			if v := row.Get(field); v.Kind != product.KindFloat || v.Float < 0 {
				t.Fatalf("row %d: unexpected %s %+v", i, field, v)
			}
		}
		active := row.Get(product.Active).Str
		if active != "S" && active != "N" {
			t.Fatalf("row %d: unexpected active marker %q", i, active)
		}
		if id := row.Get(product.ProductID); id.Kind != product.KindInt {
			t.Fatalf("row %d: unexpected id %+v", i, id)
		}
	}
}

func TestConvert_Empty(t *testing.T) {
	t.Parallel()

	result := Convert(nil, testConfig(t))
	if result.RowsRead != 0 || len(result.Rows) != 0 || len(result.Warnings) != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestInferFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   string
		format string
		want   string
	}{
		{path: "products.csv", want: "csv"},
		{path: "products.txt", want: "csv"},
		{path: "products.XLSX", want: "excel"},
		{path: "products.xlsm", want: "excel"},
		{path: "products.dat", format: "excel", want: "excel"},
	}

	for _, tc := range tests {
		if got := InferFormat(tc.path, tc.format); got != tc.want {
			t.Fatalf("unexpected format for %s: want %s, got %s", tc.path, tc.want, got)
		}
	}
}
