package config

import (
	"bytes"
	"fmt"
	"traysheet/product"

	"github.com/spf13/viper"
)

const (
	KeyMapping = "mapping"

	KeyColumnsStock        = "columns.stock"
	KeyColumnsAvailability = "columns.availability"
	KeyColumnsTitle        = "columns.title"
	KeyColumnsHandle       = "columns.handle"
	KeyColumnsWeightUnit   = "columns.weight_unit"

	KeyDefaultsLeadTime          = "defaults.lead_time"
	KeyDefaultsProductIDOffset   = "defaults.product_id_offset"
	KeyDefaultsNamePrefix        = "defaults.name_prefix"
	KeyDefaultsActiveMarker      = "defaults.active_marker"
	KeyDefaultsInactiveMarker    = "defaults.inactive_marker"
	KeyDefaultsKilogramUnit      = "defaults.kilogram_unit"
	KeyDefaultsKilogramThreshold = "defaults.kilogram_threshold"
	KeyDefaultsGramsPerKilogram  = "defaults.grams_per_kilogram"

	KeyCSVDelimiter     = "csv.delimiter"
	KeyCSVEncoding      = "csv.encoding"
	KeyCSVMissingValues = "csv.missing_values"

	KeyOutputSheetName      = "output.sheet_name"
	KeyOutputExtension      = "output.extension"
	KeyOutputMinColumnWidth = "output.min_column_width"
	KeyOutputColumnPadding  = "output.column_padding"

	EnvPrefix = "TRAYSHEET"
)

type Config struct {
	Mapping  map[string]ColumnMapping `mapstructure:"mapping"`
	Columns  ColumnsConfig            `mapstructure:"columns"`
	Defaults DefaultsConfig           `mapstructure:"defaults"`
	CSV      CSVConfig                `mapstructure:"csv"`
	Output   OutputConfig             `mapstructure:"output"`
}

// ColumnMapping lists the source columns tried for one target field.
// Primary is tried before any fallback.
type ColumnMapping struct {
	Primary   string   `mapstructure:"primary"`
	Fallbacks []string `mapstructure:"fallbacks"`
}

// ColumnsConfig names source columns that some normalization rules read
// directly from the record instead of going through the mapping table.
type ColumnsConfig struct {
	Stock        []string `mapstructure:"stock" validate:"required,min=1,dive,required"`
	Availability string   `mapstructure:"availability" validate:"required"`
	Title        string   `mapstructure:"title" validate:"required"`
	Handle       string   `mapstructure:"handle" validate:"required"`
	WeightUnit   string   `mapstructure:"weight_unit" validate:"required"`
}

type DefaultsConfig struct {
	LeadTime          string  `mapstructure:"lead_time" validate:"required"`
	ProductIDOffset   int64   `mapstructure:"product_id_offset" validate:"gte=0"`
	NamePrefix        string  `mapstructure:"name_prefix" validate:"required"`
	ActiveMarker      string  `mapstructure:"active_marker" validate:"required"`
	InactiveMarker    string  `mapstructure:"inactive_marker" validate:"required,nefield=ActiveMarker"`
	KilogramUnit      string  `mapstructure:"kilogram_unit" validate:"required"`
	KilogramThreshold float64 `mapstructure:"kilogram_threshold" validate:"gt=0"`
	GramsPerKilogram  float64 `mapstructure:"grams_per_kilogram" validate:"gt=0"`
}

type CSVConfig struct {
	Delimiter     string   `mapstructure:"delimiter" validate:"required,len=1"`
	Encoding      string   `mapstructure:"encoding" validate:"required,oneof=utf-8 utf-16 windows-1252 iso-8859-1"`
	MissingValues []string `mapstructure:"missing_values"`
}

type OutputConfig struct {
	SheetName      string  `mapstructure:"sheet_name" validate:"required,max=31"`
	Extension      string  `mapstructure:"extension" validate:"required,startswith=."`
	MinColumnWidth float64 `mapstructure:"min_column_width" validate:"gt=0,lte=255"`
	ColumnPadding  float64 `mapstructure:"column_padding" validate:"gte=0"`
}

// MissingValues mirrors the strings a pandas CSV reader treats as NaN by
// default, so exports that worked with the original converter keep working.
var MissingValues = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

var defaultMapping = map[product.Field]ColumnMapping{
	product.SupplierReference: {Primary: "Handle"},
	product.ProductID:         {Primary: "Variant SKU", Fallbacks: []string{"Product ID", "SKU", "ID"}},
	product.Name:              {Primary: "Title", Fallbacks: []string{"Product Title", "Product Name"}},
	product.SalePrice:         {Primary: "Variant Price", Fallbacks: []string{"Price", "Sale Price", "Variant Compare At Price"}},
	product.CostPrice:         {Primary: "Cost per item"},
	product.Stock:             {},
	product.Active:            {Primary: "Published"},
	product.LeadTime:          {},
	product.SEOURL:            {Primary: "Handle"},
	product.SEOKeywords:       {Primary: "Tags"},
	product.WeightGrams:       {Primary: "Variant Grams", Fallbacks: []string{"Weight", "Weight (g)", "Product Weight"}},
	product.DescriptionHTML:   {Primary: "Body (HTML)", Fallbacks: []string{"Description", "Product Description", "HTML Description"}},
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// Defaults returns the built-in configuration without reading any file.
func Defaults() (*Config, error) {
	local := viper.New()
	setDefaults(local)
	return loadAndValidateFromViper(local)
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// MappingFor returns the source columns configured for field.
func (c Config) MappingFor(field product.Field) ColumnMapping {
	return c.Mapping[field.Key()]
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# traysheet configuration
#
# mapping.<field>.primary is tried first, then fallbacks in order.
# Fields: supplier_reference, product_id, name, sale_price, cost_price,
# stock, active, lead_time, seo_url, seo_keywords, weight_grams,
# description_html
mapping:
  product_id:
    primary: "Variant SKU"
    fallbacks: ["Product ID", "SKU", "ID"]
  name:
    primary: "Title"
    fallbacks: ["Product Title", "Product Name"]

columns:
  stock: ["Variant Inventory Qty", "Quantity", "Stock", "Inventory"]
  availability: "Availability"
  title: "Title"
  handle: "Handle"
  weight_unit: "Variant Weight Unit"

defaults:
  lead_time: "5"
  product_id_offset: 1000
  name_prefix: "Product "
  active_marker: "S"
  inactive_marker: "N"
  kilogram_unit: "kg"
  kilogram_threshold: 10
  grams_per_kilogram: 1000

csv:
  delimiter: ","
  encoding: "utf-8"

output:
  sheet_name: "Worksheet"
  extension: ".xls"
  min_column_width: 12
  column_padding: 2
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	problems, err := structProblems(cfg)
	if err != nil {
		return nil, err
	}
	problems = append(problems, mappingProblems(cfg.Mapping)...)
	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	for field, mapping := range defaultMapping {
		prefix := KeyMapping + "." + field.Key()
		v.SetDefault(prefix+".primary", mapping.Primary)
		v.SetDefault(prefix+".fallbacks", mapping.Fallbacks)
	}

	v.SetDefault(KeyColumnsStock, []string{"Variant Inventory Qty", "Quantity", "Stock", "Inventory"})
	v.SetDefault(KeyColumnsAvailability, "Availability")
	v.SetDefault(KeyColumnsTitle, "Title")
	v.SetDefault(KeyColumnsHandle, "Handle")
	v.SetDefault(KeyColumnsWeightUnit, "Variant Weight Unit")

	v.SetDefault(KeyDefaultsLeadTime, "5")
	v.SetDefault(KeyDefaultsProductIDOffset, 1000)
	v.SetDefault(KeyDefaultsNamePrefix, "Product ")
	v.SetDefault(KeyDefaultsActiveMarker, "S")
	v.SetDefault(KeyDefaultsInactiveMarker, "N")
	v.SetDefault(KeyDefaultsKilogramUnit, "kg")
	v.SetDefault(KeyDefaultsKilogramThreshold, 10.0)
	v.SetDefault(KeyDefaultsGramsPerKilogram, 1000.0)

	v.SetDefault(KeyCSVDelimiter, ",")
	v.SetDefault(KeyCSVEncoding, "utf-8")
	v.SetDefault(KeyCSVMissingValues, MissingValues)

	v.SetDefault(KeyOutputSheetName, "Worksheet")
	v.SetDefault(KeyOutputExtension, ".xls")
	v.SetDefault(KeyOutputMinColumnWidth, 12.0)
	v.SetDefault(KeyOutputColumnPadding, 2.0)
}
