package dom

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// fieldSelector matches every input-bearing descendant the inspector
// cares about, in document order.
const fieldSelector = "input, textarea, select"

// InspectFields walks one form-like container and returns a descriptor
// per input-bearing descendant, preserving document order. Elements whose
// attributes cannot be read (stale or detached nodes) are skipped; the
// walk never aborts the whole form. Hidden inputs are skipped.
//
// Checkbox and radio inputs sharing the same name are merged into a
// single field whose options collect each control's value (or label when
// the value is empty).
func InspectFields(form Element) []Field {
	fields := []Field{}

	controls, err := form.Find(fieldSelector)
	if err != nil {
		log.Warn().Err(err).Msg("could not enumerate form controls")
		return fields
	}

	for i, el := range controls {
		field, ok := inspectControl(form, el)
		if !ok {
			log.Debug().Int("index", i).Msg("skipping unreadable form control")
			continue
		}
		if field == nil {
			continue // hidden input
		}

		// Merge checkbox/radio groups that share a name.
		if field.Type == FieldCheckbox || field.Type == FieldRadio {
			if merged := mergeChoice(fields, *field); merged {
				continue
			}
		}

		fields = append(fields, *field)
	}

	return fields
}

// inspectControl builds a Field from one control. The second return is
// false when the element could not be read at all; a nil Field with true
// means the element was read but intentionally skipped.
func inspectControl(form, el Element) (*Field, bool) {
	tag, err := el.Tag()
	if err != nil {
		return nil, false
	}

	typeAttr, _, err := el.Attr("type")
	if err != nil {
		return nil, false
	}
	if tag == "input" && typeAttr == "hidden" {
		return nil, true
	}

	name, _, err := el.Attr("name")
	if err != nil {
		return nil, false
	}
	id, _, err := el.Attr("id")
	if err != nil {
		return nil, false
	}
	placeholder, _, _ := el.Attr("placeholder")

	fieldType := Classify(tag, typeAttr)

	field := Field{
		Name:        name,
		ID:          id,
		Type:        fieldType,
		Label:       resolveLabel(form, el, id, fieldType, placeholder),
		Required:    isRequired(el),
		Options:     []string{},
		Placeholder: placeholder,
	}

	switch fieldType {
	case FieldSelect:
		field.Options = selectOptions(el)
	case FieldCheckbox, FieldRadio:
		field.Options = append(field.Options, choiceOption(el, field.Label))
	}

	return &field, true
}

// mergeChoice folds a checkbox/radio control into an existing group with
// the same name and type. Returns true when merged.
func mergeChoice(fields []Field, field Field) bool {
	if field.Name == "" {
		return false
	}
	for i := range fields {
		if fields[i].Name == field.Name && fields[i].Type == field.Type {
			fields[i].Options = append(fields[i].Options, field.Options...)
			return true
		}
	}
	return false
}

// resolveLabel finds the human-visible label for a control. The fallback
// chain is a default policy, not a strict contract: explicit label[for]
// association, then the wrapping <label> for checkbox/radio, then
// aria-label, then the placeholder.
func resolveLabel(form, el Element, id string, fieldType FieldType, placeholder string) string {
	if id != "" {
		if labels, err := form.Find(fmt.Sprintf("label[for=%q]", id)); err == nil && len(labels) > 0 {
			if text, err := labels[0].Text(); err == nil && strings.TrimSpace(text) != "" {
				return strings.TrimSpace(text)
			}
		}
	}

	// Checkboxes and radios are commonly wrapped in their label, with
	// the visible text next to the input.
	if fieldType == FieldCheckbox || fieldType == FieldRadio {
		if parent, err := el.Parent(); err == nil && parent != nil {
			if tag, err := parent.Tag(); err == nil && tag == "label" {
				if text, err := parent.Text(); err == nil && strings.TrimSpace(text) != "" {
					return strings.TrimSpace(text)
				}
			}
		}
	}

	if aria, ok, err := el.Attr("aria-label"); err == nil && ok && strings.TrimSpace(aria) != "" {
		return strings.TrimSpace(aria)
	}

	return placeholder
}

// isRequired reports whether the control exposes a required or
// aria-required attribute.
func isRequired(el Element) bool {
	if _, ok, err := el.Attr("required"); err == nil && ok {
		return true
	}
	if v, ok, err := el.Attr("aria-required"); err == nil && ok && v != "false" {
		return true
	}
	return false
}

// selectOptions collects the option texts of a select, in document order.
func selectOptions(sel Element) []string {
	options := []string{}
	opts, err := sel.Find("option")
	if err != nil {
		return options
	}
	for _, opt := range opts {
		text, err := opt.Text()
		if err != nil {
			continue
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			options = append(options, trimmed)
		}
	}
	return options
}

// choiceOption returns the option string for one checkbox/radio control:
// its value attribute, or its label when the value is empty.
func choiceOption(el Element, label string) string {
	if value, ok, err := el.Attr("value"); err == nil && ok && value != "" {
		return value
	}
	return label
}

// SubmitLabel resolves the visible label of a form's submit control:
// the first submit button's text, then a submit input's value, then any
// button's text, defaulting to "Submit".
func SubmitLabel(form Element) string {
	if buttons, err := form.Find(`button[type="submit"]`); err == nil && len(buttons) > 0 {
		if text, err := buttons[0].Text(); err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text)
		}
	}
	if inputs, err := form.Find(`input[type="submit"]`); err == nil && len(inputs) > 0 {
		if value, ok, err := inputs[0].Attr("value"); err == nil && ok && value != "" {
			return value
		}
	}
	if buttons, err := form.Find("button"); err == nil && len(buttons) > 0 {
		if text, err := buttons[0].Text(); err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text)
		}
	}
	return "Submit"
}
