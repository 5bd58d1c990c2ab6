package analyzer

import (
	"github.com/mpetrun5/formscout/internal/dom"
)

// Form describes one detected form and its fields, in document order.
type Form struct {
	Name         string      `json:"name"`
	ID           string      `json:"id"`
	Fields       []dom.Field `json:"fields"`
	SubmitButton string      `json:"submit_button"`
}

// PageResult is the outcome of analyzing one page. It is well-formed
// even when the analysis failed: Error is non-nil exactly when Success
// is false, and in that case Forms and Screenshots are empty.
type PageResult struct {
	Success     bool     `json:"success"`
	URL         string   `json:"url"`
	Forms       []Form   `json:"forms"`
	Screenshots []string `json:"screenshots"`
	Error       *string  `json:"error"`
}

// newResult returns an empty, not-yet-successful result for a URL.
func newResult(url string) *PageResult {
	return &PageResult{
		URL:         url,
		Forms:       []Form{},
		Screenshots: []string{},
	}
}

// Failed builds the whole-page failure result described in the error
// handling policy: success false, empty forms and screenshots, and a
// human-readable message.
func Failed(url, message string) *PageResult {
	res := newResult(url)
	res.Error = &message
	return res
}
