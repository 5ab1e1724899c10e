package importer

import (
	"strings"
	"traysheet/product"
	"unicode"
)

// stock reads the quantity columns directly, skipping the mapping table, and
// takes the first one that parses as a number.
func (m *Mapper) stock(record Record) product.Value {
	for _, column := range m.cfg.Columns.Stock {
		cell := record.Lookup(column)
		if !cell.NotMissing() {
			continue
		}
		quantity, ok := parseInt(cell.Raw)
		if !ok {
			continue
		}
		if quantity < 0 {
			quantity = 0
		}
		return product.Int(quantity)
	}
	return product.Int(0)
}

func (m *Mapper) active(record Record) product.Value {
	raw, ok := m.Resolve(record, product.Active)
	if !ok || strings.EqualFold(raw, "true") {
		return product.String(m.cfg.Defaults.ActiveMarker)
	}
	return product.String(m.cfg.Defaults.InactiveMarker)
}

func (m *Mapper) price(record Record, field product.Field) product.Value {
	raw, ok := m.Resolve(record, field)
	if !ok {
		return product.Float(0)
	}
	price, ok := parseFloat(raw)
	if !ok {
		return product.Float(0)
	}
	return product.Float(price)
}

// seoURL keeps a mapped URL as is and otherwise derives one from the raw
// title column. The normalized product name is not used.
func (m *Mapper) seoURL(record Record) product.Value {
	if raw, ok := m.Resolve(record, product.SEOURL); ok {
		return product.String(raw)
	}
	if title := record.Lookup(m.cfg.Columns.Title); title.NotMissing() {
		return product.String(Slugify(title.Raw))
	}
	return product.Value{}
}

// leadTime checks only whether the availability column exists. A present
// but missing cell stays unset; the default applies only when the column is
// not in the source at all.
func (m *Mapper) leadTime(record Record) product.Value {
	cell := record.Lookup(m.cfg.Columns.Availability)
	switch {
	case cell.State == CellAbsent:
		return product.String(m.cfg.Defaults.LeadTime)
	case cell.NotMissing():
		return product.String(cell.Raw)
	default:
		return product.Value{}
	}
}

func (m *Mapper) weight(record Record) product.Value {
	raw, ok := m.Resolve(record, product.WeightGrams)
	if !ok {
		return product.Value{}
	}
	weight, ok := parseFloat(raw)
	if !ok {
		return product.Float(0)
	}

	// Small values paired with a kilogram unit are kilograms.
	if weight < m.cfg.Defaults.KilogramThreshold {
		unit := record.Lookup(m.cfg.Columns.WeightUnit)
		if unit.NotMissing() && strings.EqualFold(unit.Raw, m.cfg.Defaults.KilogramUnit) {
			weight *= m.cfg.Defaults.GramsPerKilogram
		}
	}
	return product.Float(weight)
}

// Slugify lowercases title, turns spaces, slashes and underscores into
// hyphens and drops everything that is not a letter, digit or hyphen.
func Slugify(title string) string {
	lowered := strings.ToLower(title)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r == ' ' || r == '/' || r == '_' || r == '-':
			b.WriteRune('-')
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
