package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"traysheet/product"
)

func TestDefaults_MatchTemplateMapping(t *testing.T) {
	t.Parallel()

	cfg, err := Defaults()
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}

	id := cfg.MappingFor(product.ProductID)
	if id.Primary != "Variant SKU" {
		t.Fatalf("unexpected product_id primary: %q", id.Primary)
	}
	if !reflect.DeepEqual(id.Fallbacks, []string{"Product ID", "SKU", "ID"}) {
		t.Fatalf("unexpected product_id fallbacks: %v", id.Fallbacks)
	}
	if got := cfg.MappingFor(product.SupplierReference).Primary; got != "Handle" {
		t.Fatalf("unexpected supplier_reference primary: %q", got)
	}
	if got := cfg.MappingFor(product.Stock); got.Primary != "" || len(got.Fallbacks) != 0 {
		t.Fatalf("expected stock to have no mapping, got %+v", got)
	}
	if cfg.Defaults.LeadTime != "5" || cfg.Defaults.ProductIDOffset != 1000 {
		t.Fatalf("unexpected defaults: %+v", cfg.Defaults)
	}
	if cfg.Defaults.ActiveMarker != "S" || cfg.Defaults.InactiveMarker != "N" {
		t.Fatalf("unexpected markers: %+v", cfg.Defaults)
	}
	if !reflect.DeepEqual(cfg.Columns.Stock, []string{"Variant Inventory Qty", "Quantity", "Stock", "Inventory"}) {
		t.Fatalf("unexpected stock columns: %v", cfg.Columns.Stock)
	}
	if cfg.Output.MinColumnWidth != 12 || cfg.Output.ColumnPadding != 2 {
		t.Fatalf("unexpected output widths: %+v", cfg.Output)
	}
}

func TestValidateYAMLContent_ExampleIsValid(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte(ExampleYAML()))
	if err != nil {
		t.Fatalf("expected example config to validate: %v", err)
	}
	if cfg.Output.SheetName != "Worksheet" {
		t.Fatalf("unexpected sheet name: %q", cfg.Output.SheetName)
	}
}

func TestValidateYAMLContent_OverridesMergeWithDefaults(t *testing.T) {
	t.Parallel()

	content := []byte(`mapping:
  name:
    fallbacks: ["Nome"]
defaults:
  lead_time: 10
`)

	cfg, err := ValidateYAMLContent(content)
	if err != nil {
		t.Fatalf("expected config to validate: %v", err)
	}
	name := cfg.MappingFor(product.Name)
	if name.Primary != "Title" {
		t.Fatalf("expected default primary to survive, got %q", name.Primary)
	}
	if !reflect.DeepEqual(name.Fallbacks, []string{"Nome"}) {
		t.Fatalf("unexpected name fallbacks: %v", name.Fallbacks)
	}
	if cfg.Defaults.LeadTime != "10" {
		t.Fatalf("unexpected lead time: %q", cfg.Defaults.LeadTime)
	}
}

func TestValidateYAMLContent_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown mapping key",
			content: "mapping:\n  colour:\n    primary: \"Color\"\n",
			wantErr: "mapping.colour: is not a target field",
		},
		{
			name:    "stock mapped through table",
			content: "mapping:\n  stock:\n    primary: \"Qty\"\n",
			wantErr: "mapping.stock: is read from columns.*",
		},
		{
			name:    "same markers",
			content: "defaults:\n  inactive_marker: \"S\"\n",
			wantErr: "defaults.inactive_marker: must differ",
		},
		{
			name:    "long delimiter",
			content: "csv:\n  delimiter: \";;\"\n",
			wantErr: "csv.delimiter: must be exactly 1 character(s)",
		},
		{
			name:    "unsupported encoding",
			content: "csv:\n  encoding: \"ebcdic\"\n",
			wantErr: "csv.encoding: must be one of",
		},
		{
			name:    "extension without dot",
			content: "output:\n  extension: \"xlsx\"\n",
			wantErr: "output.extension: must start with \".\"",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ValidateYAMLContent([]byte(tc.content))
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestProblems_ListsEveryRejectedKey(t *testing.T) {
	t.Parallel()

	content := "mapping:\n  colour:\n    primary: \"Color\"\n  name:\n    primary: \"\"\n    fallbacks: [\"\"]\n" +
		"csv:\n  delimiter: \";;\"\n"
	_, err := ValidateYAMLContent([]byte(content))
	if err == nil {
		t.Fatalf("expected validation error")
	}

	got := make([]string, 0)
	for _, problem := range Problems(err) {
		got = append(got, problem.Key)
	}
	want := []string{"csv.delimiter", "mapping.colour", "mapping.name.fallbacks[0]"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected problem keys: want %v, got %v", want, got)
	}

	if Problems(fmt.Errorf("read config content: %w", errors.New("broken"))) != nil {
		t.Fatalf("expected no problems for a non-validation error")
	}
}
