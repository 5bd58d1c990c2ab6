// Package browser owns the lifetime of a rod browser session. The
// session is a scoped resource: callers open it before analysis and must
// close it on all exit paths.
package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rs/zerolog/log"
)

// Options configures the browser session.
type Options struct {
	Headless   bool
	Width      int
	Height     int
	NavTimeout time.Duration
	ProfileDir string // Chrome/Chromium profile directory for authenticated sessions
}

// Session wraps a rod browser and a single page.
type Session struct {
	browser *rod.Browser
	page    *rod.Page
	opts    Options
}

// Open launches a browser and prepares a blank page with the configured
// viewport.
func Open(opts Options) (*Session, error) {
	if opts.NavTimeout == 0 {
		opts.NavTimeout = 30 * time.Second
	}

	path, _ := launcher.LookPath()
	l := launcher.New().
		Bin(path).
		Headless(opts.Headless).
		Set("disable-infobars").
		Set("no-sandbox")

	if opts.ProfileDir != "" {
		l = l.UserDataDir(opts.ProfileDir)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	page, err := b.Page(proto.TargetCreateTarget{})
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	if opts.Width > 0 && opts.Height > 0 {
		err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
			Width:             opts.Width,
			Height:            opts.Height,
			DeviceScaleFactor: 1.0,
			Mobile:            false,
		})
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("failed to set viewport: %w", err)
		}
	}

	log.Debug().Bool("headless", opts.Headless).Msg("browser session opened")

	return &Session{browser: b, page: page, opts: opts}, nil
}

// Navigate loads a URL and waits for the page to settle. Load timeouts
// and connection failures surface as an error; the caller decides how to
// record them.
func (s *Session) Navigate(ctx context.Context, url string) error {
	page := s.page.Context(ctx).Timeout(s.opts.NavTimeout)

	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("failed to navigate: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("failed to wait for page load: %w", err)
	}

	// Don't block forever on pages with continuous animations.
	waitForStableWithTimeout(s.page, 300*time.Millisecond, 5*time.Second)
	return nil
}

// waitForStableWithTimeout waits until the page has stopped changing for
// stability, giving up after maxWait.
func waitForStableWithTimeout(page *rod.Page, stability, maxWait time.Duration) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = page.WaitStable(stability)
	}()

	select {
	case <-done:
	case <-time.After(maxWait):
	}
}

// Forms returns the elements matching the form selector, in document
// order.
func (s *Session) Forms(selector string) ([]*rod.Element, error) {
	elements, err := s.page.Elements(selector)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate forms: %w", err)
	}
	return elements, nil
}

// Screenshot captures the current viewport as PNG bytes.
func (s *Session) Screenshot() ([]byte, error) {
	data, err := s.page.Screenshot(false, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to take screenshot: %w", err)
	}
	return data, nil
}

// Page exposes the underlying rod page for element inspection.
func (s *Session) Page() *rod.Page {
	return s.page
}

// Close releases the page and the browser. Safe to call once on any exit
// path.
func (s *Session) Close() {
	if s.page != nil {
		s.page.Close()
		s.page = nil
	}
	if s.browser != nil {
		s.browser.Close()
		s.browser = nil
	}
	log.Debug().Msg("browser session closed")
}
