// Package dom inspects form markup and produces normalized field
// descriptors. The inspection logic is pure and operates on the Element
// capability interface, so it runs unchanged against a live go-rod page
// or a static goquery document.
package dom

// Element is the minimal read-only view of a DOM node that the inspector
// needs. Implementations must tolerate stale or detached nodes by
// returning an error rather than panicking.
type Element interface {
	// Tag returns the lowercase tag name.
	Tag() (string, error)
	// Attr returns the attribute value and whether the attribute is
	// present. A present-but-empty attribute returns ("", true, nil).
	Attr(name string) (string, bool, error)
	// Text returns the visible text content of the node.
	Text() (string, error)
	// Find returns the descendants matching a CSS selector, in document
	// order.
	Find(selector string) ([]Element, error)
	// Parent returns the parent element, or nil at the document root.
	Parent() (Element, error)
}

// FieldType is the normalized classification of a form control.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldPassword FieldType = "password"
	FieldCheckbox FieldType = "checkbox"
	FieldRadio    FieldType = "radio"
	FieldSelect   FieldType = "select"
	FieldTextarea FieldType = "textarea"
	FieldOther    FieldType = "other"
)

// Field describes one form control. Immutable once built.
type Field struct {
	Name        string    `json:"name"`
	ID          string    `json:"id"`
	Type        FieldType `json:"type"`
	Label       string    `json:"label"`
	Required    bool      `json:"required"`
	Options     []string  `json:"options"`
	Placeholder string    `json:"placeholder"`
}

// Selector returns the identifier used in generated scripts: the id when
// present, otherwise the name.
func (f Field) Selector() string {
	if f.ID != "" {
		return f.ID
	}
	return f.Name
}

// IsChoice reports whether the field carries an options list.
func (f Field) IsChoice() bool {
	switch f.Type {
	case FieldSelect, FieldRadio, FieldCheckbox:
		return true
	}
	return false
}

// Classify maps a tag name and input type attribute onto a FieldType.
// Unknown input kinds map to FieldOther rather than failing.
func Classify(tag, typeAttr string) FieldType {
	switch tag {
	case "select":
		return FieldSelect
	case "textarea":
		return FieldTextarea
	case "input":
		switch typeAttr {
		case "", "text":
			return FieldText
		case "email":
			return FieldEmail
		case "password":
			return FieldPassword
		case "checkbox":
			return FieldCheckbox
		case "radio":
			return FieldRadio
		default:
			return FieldOther
		}
	}
	return FieldOther
}
