package dom

import (
	"io"

	"github.com/PuerkitoBio/goquery"
)

// gqElement adapts a goquery selection (a single node) to the Element
// interface. Used for static HTML analysis and as the test double for
// the inspector.
type gqElement struct {
	sel *goquery.Selection
}

// FromSelection wraps a goquery selection. Only the first node of the
// selection is considered.
func FromSelection(sel *goquery.Selection) Element {
	return gqElement{sel: sel.First()}
}

// ParseHTML parses a static HTML document and returns its root element,
// ready for inspection without a browser.
func ParseHTML(r io.Reader) (Element, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return gqElement{sel: doc.Selection}, nil
}

func (g gqElement) Tag() (string, error) {
	return goquery.NodeName(g.sel), nil
}

func (g gqElement) Attr(name string) (string, bool, error) {
	value, ok := g.sel.Attr(name)
	return value, ok, nil
}

func (g gqElement) Text() (string, error) {
	return g.sel.Text(), nil
}

func (g gqElement) Find(selector string) ([]Element, error) {
	var elements []Element
	g.sel.Find(selector).Each(func(_ int, s *goquery.Selection) {
		elements = append(elements, gqElement{sel: s})
	})
	return elements, nil
}

func (g gqElement) Parent() (Element, error) {
	parent := g.sel.Parent()
	if parent.Length() == 0 {
		return nil, nil
	}
	return gqElement{sel: parent}, nil
}
