package importer

import (
	"fmt"
	"traysheet/config"
	"traysheet/product"
)

// FirstDataRow is the sheet row of the first product; row 1 holds headers.
const FirstDataRow = 2

// Warning is a diagnostic raised when a required field had to be replaced
// by a generated value.
type Warning struct {
	Row     int
	Field   product.Field
	Message string
}

func (w Warning) String() string {
	return "Warning: " + w.Message
}

// Mapper turns source records into rows of the Tray product template.
type Mapper struct {
	cfg config.Config
}

func NewMapper(cfg config.Config) *Mapper {
	return &Mapper{cfg: cfg}
}

// Resolve returns the first usable value among the columns mapped to field,
// primary column first, then fallbacks in order.
func (m *Mapper) Resolve(record Record, field product.Field) (string, bool) {
	mapping := m.cfg.MappingFor(field)
	if mapping.Primary != "" {
		if cell := record.Lookup(mapping.Primary); cell.Usable() {
			return cell.Raw, true
		}
	}
	for _, column := range mapping.Fallbacks {
		if cell := record.Lookup(column); cell.Usable() {
			return cell.Raw, true
		}
	}
	return "", false
}

// Map converts one record. row is the sheet row the product will occupy
// and feeds the generated names and ids.
func (m *Mapper) Map(record Record, row int) (product.Row, []Warning) {
	var (
		out      product.Row
		warnings []Warning
	)
	for _, field := range product.Fields() {
		value, warning := m.normalize(record, field, row)
		out.Set(field, value)
		if warning != "" {
			warnings = append(warnings, Warning{Row: row, Field: field, Message: warning})
		}
	}
	return out, warnings
}

func (m *Mapper) normalize(record Record, field product.Field, row int) (product.Value, string) {
	switch field {
	case product.Stock:
		return m.stock(record), ""
	case product.Active:
		return m.active(record), ""
	case product.SalePrice, product.CostPrice:
		return m.price(record, field), ""
	case product.SEOURL:
		return m.seoURL(record), ""
	case product.LeadTime:
		return m.leadTime(record), ""
	case product.WeightGrams:
		return m.weight(record), ""
	case product.Name:
		return m.name(record, row)
	case product.ProductID:
		return m.productID(record, row)
	default:
		raw, ok := m.Resolve(record, field)
		if !ok {
			return product.Value{}, ""
		}
		return product.String(raw), ""
	}
}

func (m *Mapper) name(record Record, row int) (product.Value, string) {
	if raw, ok := m.Resolve(record, product.Name); ok && !isBlank(raw) {
		return product.String(raw), ""
	}

	var name string
	if handle := record.Lookup(m.cfg.Columns.Handle); handle.NotMissing() {
		name = m.cfg.Defaults.NamePrefix + handle.Raw
	} else {
		name = fmt.Sprintf("%s%d", m.cfg.Defaults.NamePrefix, row-1)
	}
	return product.String(name), fmt.Sprintf("Empty product name in row %d, using '%s' instead", row, name)
}

func (m *Mapper) productID(record Record, row int) (product.Value, string) {
	generated := int64(row) + m.cfg.Defaults.ProductIDOffset

	raw, ok := m.Resolve(record, product.ProductID)
	if !ok {
		return product.Int(generated), fmt.Sprintf("Missing ID in row %d, using %d instead", row, generated)
	}
	if id, ok := parseDecimalCommaInt(raw); ok {
		return product.Int(id), ""
	}
	return product.Int(generated), fmt.Sprintf("Non-numeric ID in row %d, using %d instead", row, generated)
}
