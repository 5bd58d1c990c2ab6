// Package script turns an analysis result into an automation script
// body: one statement per line, "set <selector> to <value>" per field
// followed by "click <submit>" per form. Generation is pure and
// deterministic.
package script

import (
	"fmt"
	"strings"

	"github.com/mpetrun5/formscout/internal/analyzer"
	"github.com/mpetrun5/formscout/internal/dom"
)

// sampleValues are the placeholder inputs used when no explicit values
// are supplied, keyed by field type.
var sampleValues = map[dom.FieldType]string{
	dom.FieldText:     "defaultText",
	dom.FieldEmail:    "test@example.com",
	dom.FieldPassword: "password",
	dom.FieldTextarea: "This is a default textarea input.",
	dom.FieldOther:    "defaultValue",
}

// Generate emits the script body with placeholder values derived from
// each field's type. Same input, byte-identical output.
func Generate(res *analyzer.PageResult) string {
	return GenerateWith(res, nil)
}

// GenerateWith emits the script body, preferring the supplied
// per-selector values over the type-derived placeholders. Fields
// without an id or name cannot be addressed and are omitted.
func GenerateWith(res *analyzer.PageResult, values map[string]string) string {
	if res == nil || !res.Success {
		return ""
	}

	var b strings.Builder
	for i, form := range res.Forms {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, field := range form.Fields {
			selector := field.Selector()
			if selector == "" {
				continue
			}
			value, ok := values[selector]
			if !ok {
				value = sampleValue(field)
			}
			fmt.Fprintf(&b, "set %s to %s\n", selector, value)
		}
		fmt.Fprintf(&b, "click %s\n", form.SubmitButton)
	}
	return b.String()
}

// sampleValue derives a placeholder for one field: checkboxes are
// checked, choice fields take their first option, everything else maps
// by type.
func sampleValue(field dom.Field) string {
	switch field.Type {
	case dom.FieldCheckbox:
		return "checked"
	case dom.FieldRadio, dom.FieldSelect:
		if len(field.Options) > 0 {
			return field.Options[0]
		}
		return ""
	default:
		if v, ok := sampleValues[field.Type]; ok {
			return v
		}
		return sampleValues[dom.FieldOther]
	}
}
