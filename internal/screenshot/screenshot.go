// Package screenshot stores page captures on disk and prepares
// compressed variants for LLM context.
package screenshot

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
	"github.com/rs/zerolog/log"
)

// Manager writes screenshots into a single directory, created on demand.
type Manager struct {
	dir string
}

// NewManager creates the storage directory if it does not exist.
func NewManager(dir string) (*Manager, error) {
	if dir == "" {
		dir = "form_screenshots"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create screenshot directory: %w", err)
	}
	return &Manager{dir: dir}, nil
}

// Dir returns the storage directory.
func (m *Manager) Dir() string {
	return m.dir
}

// Save writes PNG bytes under a sanitized name and returns the file
// path. Name collisions get a short random suffix instead of
// overwriting an earlier capture.
func (m *Manager) Save(data []byte, name string) (string, error) {
	base := sanitizeName(name)
	path := filepath.Join(m.dir, base+".png")

	if _, err := os.Stat(path); err == nil {
		path = filepath.Join(m.dir, fmt.Sprintf("%s_%s.png", base, uuid.New().String()[:8]))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to save screenshot: %w", err)
	}

	log.Debug().Str("path", path).Msg("screenshot saved")
	return path, nil
}

// Thumbnail downscales a PNG capture to maxWidth and re-encodes it as
// JPEG. A 1920px PNG shrinks by roughly an order of magnitude, which
// keeps vision prompts cheap.
func Thumbnail(data []byte, maxWidth uint, quality int) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode screenshot: %w", err)
	}

	if maxWidth == 0 {
		maxWidth = 800
	}
	if quality <= 0 {
		quality = 60
	}

	if uint(img.Bounds().Dx()) > maxWidth {
		img = resize.Resize(maxWidth, 0, img, resize.Bilinear)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeName keeps letters, digits, dashes and underscores; spaces
// become underscores. An empty result falls back to "screenshot".
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r == ' ':
			b.WriteRune('_')
		case r == '-' || r == '_':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "screenshot"
	}
	return b.String()
}
