package dom

import (
	"github.com/go-rod/rod"
)

// rodElement adapts a live rod element to the Element interface.
type rodElement struct {
	el *rod.Element
}

// FromRod wraps a rod element for inspection.
func FromRod(el *rod.Element) Element {
	return rodElement{el: el}
}

func (r rodElement) Tag() (string, error) {
	obj, err := r.el.Eval(`() => this.tagName.toLowerCase()`)
	if err != nil {
		return "", err
	}
	return obj.Value.Str(), nil
}

func (r rodElement) Attr(name string) (string, bool, error) {
	value, err := r.el.Attribute(name)
	if err != nil {
		return "", false, err
	}
	if value == nil {
		return "", false, nil
	}
	return *value, true, nil
}

func (r rodElement) Text() (string, error) {
	return r.el.Text()
}

func (r rodElement) Find(selector string) ([]Element, error) {
	matches, err := r.el.Elements(selector)
	if err != nil {
		return nil, err
	}
	elements := make([]Element, 0, len(matches))
	for _, m := range matches {
		elements = append(elements, rodElement{el: m})
	}
	return elements, nil
}

func (r rodElement) Parent() (Element, error) {
	parent, err := r.el.Parent()
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, nil
	}
	return rodElement{el: parent}, nil
}
