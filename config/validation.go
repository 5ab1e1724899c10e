package config

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"traysheet/product"

	"github.com/go-playground/validator/v10"
)

// Problem is one rejected configuration key.
type Problem struct {
	Key    string
	Reason string
}

func (p Problem) String() string {
	return p.Key + ": " + p.Reason
}

// ValidationError lists every rejected key of a configuration, in the order
// struct fields then mapping entries.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Problems))
	for i, problem := range e.Problems {
		parts[i] = problem.String()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Problems returns the rejected keys carried by err, or nil when err is not
// a validation failure.
func Problems(err error) []Problem {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Problems
	}
	return nil
}

func newValidator() *validator.Validate {
	validate := validator.New()
	// Report config keys (csv.delimiter) instead of Go field names.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

func structProblems(cfg Config) ([]Problem, error) {
	err := newValidator().Struct(cfg)
	if err == nil {
		return nil, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	problems := make([]Problem, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		// Namespace is "Config.csv.delimiter"; drop the type name.
		_, key, _ := strings.Cut(fieldErr.Namespace(), ".")
		problems = append(problems, Problem{Key: key, Reason: describeTag(fieldErr)})
	}
	return problems, nil
}

func describeTag(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "len":
		return fmt.Sprintf("must be exactly %s character(s)", fieldErr.Param())
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fieldErr.Param(), " ", ", ")
	case "nefield":
		return "must differ from defaults.active_marker"
	case "startswith":
		return fmt.Sprintf("must start with %q", fieldErr.Param())
	case "gt":
		return "must be greater than " + fieldErr.Param()
	case "gte":
		return "must be at least " + fieldErr.Param()
	case "lte", "max":
		return "must be at most " + fieldErr.Param()
	case "min":
		return "needs at least " + fieldErr.Param() + " entry"
	default:
		return fmt.Sprintf("failed %q check", fieldErr.Tag())
	}
}

func mappingProblems(mapping map[string]ColumnMapping) []Problem {
	keys := make([]string, 0, len(mapping))
	for key := range mapping {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var problems []Problem
	for _, key := range keys {
		columns := mapping[key]
		prefix := KeyMapping + "." + key
		field, ok := product.FieldByKey(strings.ToLower(key))
		if !ok {
			problems = append(problems, Problem{Key: prefix, Reason: "is not a target field"})
			continue
		}
		if field == product.Stock || field == product.LeadTime {
			if strings.TrimSpace(columns.Primary) != "" || len(columns.Fallbacks) > 0 {
				problems = append(problems, Problem{Key: prefix, Reason: "is read from columns.* and cannot be mapped"})
			}
			continue
		}
		for i, fallback := range columns.Fallbacks {
			if strings.TrimSpace(fallback) == "" {
				problems = append(problems, Problem{Key: fmt.Sprintf("%s.fallbacks[%d]", prefix, i), Reason: "is empty"})
			}
		}
	}

	for _, field := range product.Fields() {
		if field == product.Stock || field == product.LeadTime {
			continue
		}
		columns := mapping[field.Key()]
		if strings.TrimSpace(columns.Primary) == "" && len(columns.Fallbacks) == 0 {
			problems = append(problems, Problem{Key: KeyMapping + "." + field.Key(), Reason: "needs a primary or fallback column"})
		}
	}
	return problems
}
