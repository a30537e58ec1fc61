// Package product defines the validated product record and the question
// records derived from it. A Product is constructed once per run from raw
// JSON input and is read-only for every downstream consumer.
package product

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Product is the validated product record. All string and list fields are
// non-empty and trimmed after a successful Parse; callers must not mutate a
// Product once built.
type Product struct {
	Name          string   `json:"name"`
	Concentration string   `json:"concentration"`
	SkinTypes     []string `json:"skin_types"`
	Ingredients   []string `json:"ingredients"`
	Benefits      []string `json:"benefits"`
	Usage         string   `json:"usage"`
	SideEffects   string   `json:"side_effects"`
	Price         float64  `json:"price"`
}

// FieldError describes a single invalid input field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError collects every offending field of a raw product record.
// The run must surface all field errors at once, not just the first.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "product validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Reason
	}
	return "product validation failed: " + strings.Join(parts, "; ")
}

// Parse decodes raw JSON into a Product and validates it. On validation
// failure the returned error is a *ValidationError listing every bad field.
func Parse(raw []byte) (*Product, error) {
	var p Product
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode product JSON: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// New validates a Product built in code and returns a trimmed copy.
func New(p Product) (*Product, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// validate trims all fields in place and collects field errors.
func (p *Product) validate() error {
	var ve ValidationError

	checkString := func(field string, v *string) {
		*v = strings.TrimSpace(*v)
		if *v == "" {
			ve.Fields = append(ve.Fields, FieldError{Field: field, Reason: "must not be empty"})
		}
	}
	checkList := func(field string, v *[]string) {
		trimmed := make([]string, 0, len(*v))
		for _, s := range *v {
			if s = strings.TrimSpace(s); s != "" {
				trimmed = append(trimmed, s)
			}
		}
		*v = trimmed
		if len(trimmed) == 0 {
			ve.Fields = append(ve.Fields, FieldError{Field: field, Reason: "must contain at least one entry"})
		}
	}

	checkString("name", &p.Name)
	checkString("concentration", &p.Concentration)
	checkList("skin_types", &p.SkinTypes)
	checkList("ingredients", &p.Ingredients)
	checkList("benefits", &p.Benefits)
	checkString("usage", &p.Usage)
	checkString("side_effects", &p.SideEffects)
	if p.Price <= 0 {
		ve.Fields = append(ve.Fields, FieldError{Field: "price", Reason: "must be greater than zero"})
	}

	if len(ve.Fields) > 0 {
		return &ve
	}
	return nil
}

// HasIngredient reports whether any ingredient contains the given substring,
// case-insensitively. Blocks use this for ingredient-conditional content.
func (p *Product) HasIngredient(substr string) bool {
	substr = strings.ToLower(substr)
	for _, ing := range p.Ingredients {
		if strings.Contains(strings.ToLower(ing), substr) {
			return true
		}
	}
	return false
}

// HasSkinType reports whether the skin-type list contains the given label,
// case-insensitively.
func (p *Product) HasSkinType(label string) bool {
	for _, st := range p.SkinTypes {
		if strings.EqualFold(st, label) {
			return true
		}
	}
	return false
}
