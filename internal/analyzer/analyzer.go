// Package analyzer drives the page-level form collection: navigate,
// enumerate forms, inspect fields, capture screenshots, aggregate.
package analyzer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mpetrun5/formscout/internal/browser"
	"github.com/mpetrun5/formscout/internal/dom"
	"github.com/mpetrun5/formscout/internal/screenshot"
)

// Config holds the collector settings.
type Config struct {
	// FormSelector matches form-like containers (default "form").
	FormSelector string
}

// Analyzer collects forms from live pages through a browser session.
// The session is owned by the caller and must outlive the analyzer.
type Analyzer struct {
	session *browser.Session
	shots   *screenshot.Manager
	cfg     Config
}

// New builds an analyzer on top of an open browser session. The
// screenshot manager may be nil to skip captures.
func New(session *browser.Session, shots *screenshot.Manager, cfg Config) *Analyzer {
	if cfg.FormSelector == "" {
		cfg.FormSelector = "form"
	}
	return &Analyzer{session: session, shots: shots, cfg: cfg}
}

// AnalyzePage loads a URL and extracts every form on it. It never
// returns a Go error for analysis failures: navigation problems produce
// a failed PageResult, and unreadable forms are skipped with a log
// entry.
func (a *Analyzer) AnalyzePage(ctx context.Context, url string) *PageResult {
	log.Info().Str("url", url).Msg("analyzing page")

	if err := a.session.Navigate(ctx, url); err != nil {
		navErr := &NavigationError{URL: url, Err: err}
		log.Error().Err(navErr).Msg("page analysis failed")
		return Failed(url, navErr.Error())
	}

	res := newResult(url)

	a.capture(res, "full_page")

	formElements, err := a.session.Forms(a.cfg.FormSelector)
	if err != nil {
		log.Error().Err(err).Msg("form enumeration failed")
		return Failed(url, fmt.Sprintf("form enumeration failed: %v", err))
	}

	for i, el := range formElements {
		form, err := buildForm(dom.FromRod(el))
		if err != nil {
			log.Warn().Err(err).Int("form", i).Msg("skipping unreadable form")
			continue
		}
		res.Forms = append(res.Forms, *form)
		a.capture(res, fmt.Sprintf("form_%d", i))
	}

	res.Success = true
	log.Info().Int("forms", len(res.Forms)).Msg("page analysis complete")
	return res
}

// capture takes a screenshot and records its path. Capture failures are
// logged and otherwise ignored; they never fail the analysis.
func (a *Analyzer) capture(res *PageResult, name string) {
	if a.shots == nil {
		return
	}
	data, err := a.session.Screenshot()
	if err != nil {
		log.Warn().Err(err).Str("name", name).Msg("screenshot capture failed")
		return
	}
	path, err := a.shots.Save(data, name)
	if err != nil {
		log.Warn().Err(err).Str("name", name).Msg("screenshot save failed")
		return
	}
	res.Screenshots = append(res.Screenshots, path)
}

// buildForm reads one form container into a descriptor. Attribute reads
// on the container itself may fail on stale nodes; that surfaces as an
// ElementReadError so the caller can skip the form.
func buildForm(form dom.Element) (*Form, error) {
	name, _, err := form.Attr("name")
	if err != nil {
		return nil, &ElementReadError{What: "form name", Err: err}
	}
	id, _, err := form.Attr("id")
	if err != nil {
		return nil, &ElementReadError{What: "form id", Err: err}
	}

	return &Form{
		Name:         name,
		ID:           id,
		Fields:       dom.InspectFields(form),
		SubmitButton: dom.SubmitLabel(form),
	}, nil
}
