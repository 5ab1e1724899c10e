package product

// Field is one column of the Tray product import template.
type Field int

const (
	SupplierReference Field = iota
	ProductID
	Name
	SalePrice
	CostPrice
	Stock
	Active
	LeadTime
	SEOURL
	SEOKeywords
	WeightGrams
	DescriptionHTML
)

// NumFields is the width of the target schema.
const NumFields = 12

var fieldDefs = [NumFields]struct {
	key    string
	header string
}{
	{"supplier_reference", "Referência (código fornecedor)"},
	{"product_id", "Código do produto (ID Tray)"},
	{"name", "Nome do produto"},
	{"sale_price", "Preço de venda em reais"},
	{"cost_price", "Preço de custo em reais"},
	{"stock", "Estoque do produto"},
	{"active", "Exibir produto ativo"},
	{"lead_time", "Prazo de disponibilidade"},
	{"seo_url", "SEO - Endereço do produto (URL)"},
	{"seo_keywords", "SEO - Palavras chaves do produto"},
	{"weight_grams", "Peso do produto (gramas)"},
	{"description_html", "HTML da descrição completa"},
}

// Fields returns all target fields in schema order.
func Fields() []Field {
	fields := make([]Field, NumFields)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

// Headers returns the display names of the target fields in schema order.
func Headers() []string {
	headers := make([]string, NumFields)
	for _, field := range Fields() {
		headers[field] = field.Header()
	}
	return headers
}

// FieldByKey looks up a field by its configuration key.
func FieldByKey(key string) (Field, bool) {
	for i, def := range fieldDefs {
		if def.key == key {
			return Field(i), true
		}
	}
	return 0, false
}

func (f Field) Valid() bool {
	return f >= 0 && int(f) < NumFields
}

// Key is the snake_case identifier used in configuration files.
func (f Field) Key() string {
	if !f.Valid() {
		return ""
	}
	return fieldDefs[f].key
}

func (f Field) Header() string {
	if !f.Valid() {
		return ""
	}
	return fieldDefs[f].header
}

func (f Field) String() string {
	return f.Key()
}
