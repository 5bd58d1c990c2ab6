package analyzer

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/mpetrun5/formscout/internal/dom"
)

// AnalyzeHTML extracts forms from a static HTML document without a
// browser. No screenshots are taken. The same failure policy applies:
// parse errors produce a failed PageResult, unreadable forms are
// skipped.
func AnalyzeHTML(r io.Reader, url string) *PageResult {
	root, err := dom.ParseHTML(r)
	if err != nil {
		log.Error().Err(err).Msg("HTML parse failed")
		return Failed(url, fmt.Sprintf("HTML parse failed: %v", err))
	}

	res := newResult(url)

	forms, err := root.Find("form")
	if err != nil {
		return Failed(url, fmt.Sprintf("form enumeration failed: %v", err))
	}

	for i, el := range forms {
		form, err := buildForm(el)
		if err != nil {
			log.Warn().Err(err).Int("form", i).Msg("skipping unreadable form")
			continue
		}
		res.Forms = append(res.Forms, *form)
	}

	res.Success = true
	return res
}
