package content

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/go-enry/go-enry/v2"
	"github.com/mobil-koeln/hoverscroll/internal/cache"
	"github.com/mobil-koeln/hoverscroll/internal/logging"
)

// MaxFileSize caps how much of a file is loaded into the viewport.
const MaxFileSize = 8 << 20

const (
	highlightFormatter = "terminal256"
	highlightStyle     = "monokai"
)

var (
	// ErrNotRegular indicates the path is a directory or device
	ErrNotRegular = errors.New("not a regular file")

	// ErrBinary indicates the file looks like binary data
	ErrBinary = errors.New("binary file")

	// ErrTooLarge indicates the file exceeds MaxFileSize
	ErrTooLarge = errors.New("file too large")
)

// DemoItems returns n list entries like the ones in the demo list. The first
// entry is doubled so the list overflows horizontally.
func DemoItems(n int) []string {
	items := make([]string, n)
	for i := range items {
		v := "example list item"
		if i == 0 {
			v += v
		}
		items[i] = fmt.Sprintf("%s-%d", v, i)
	}
	return items
}

// JoinItems lays items out one per row with a one-cell left padding.
func JoinItems(items []string) string {
	var b strings.Builder
	for i, item := range items {
		b.WriteString(" ")
		b.WriteString(item)
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// File is a loaded text file ready to be shown in a viewport.
type File struct {
	Path     string
	Language string
	Text     string
}

// Cache stores highlighted renders between runs.
type Cache interface {
	Get(key string) (string, bool)
	Set(key, text string) error
}

// Loader reads files for display.
type Loader struct {
	Highlight bool
	Cache     Cache // optional, used only when highlighting
}

// Load reads path without a cache. With highlight set, the text is
// syntax-highlighted for a 256-color terminal.
func Load(path string, highlight bool) (File, error) {
	return Loader{Highlight: highlight}.Load(path)
}

// Load reads path and highlights it when configured.
func (l Loader) Load(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return File{}, fmt.Errorf("%s: %w", path, ErrNotRegular)
	}
	if info.Size() > MaxFileSize {
		return File{}, fmt.Errorf("%s (%d bytes): %w", path, info.Size(), ErrTooLarge)
	}

	// #nosec G304 -- the user asked to view this file
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if enry.IsBinary(data) {
		return File{}, fmt.Errorf("%s: %w", path, ErrBinary)
	}

	f := File{
		Path:     path,
		Language: enry.GetLanguage(filepath.Base(path), data),
		Text:     string(data),
	}
	if l.Highlight && f.Text != "" {
		text, err := l.highlight(f.Language, f.Text)
		if err != nil {
			return f, err
		}
		f.Text = text
	}
	return f, nil
}

func (l Loader) highlight(language, src string) (string, error) {
	if l.Cache == nil {
		return Highlight(language, src)
	}

	key := cache.Key(highlightFormatter, highlightStyle, language, src)
	if text, ok := l.Cache.Get(key); ok {
		return text, nil
	}
	text, err := Highlight(language, src)
	if err != nil {
		return "", err
	}
	if err := l.Cache.Set(key, text); err != nil {
		logging.WithError(err, "highlight cache")
	}
	return text, nil
}

// Highlight renders src with ANSI colors using the lexer for language. An
// unknown language falls back to plain-text lexing.
func Highlight(language, src string) (string, error) {
	var buf bytes.Buffer
	lexer := strings.ToLower(language)
	if err := quick.Highlight(&buf, src, lexer, highlightFormatter, highlightStyle); err != nil {
		return "", fmt.Errorf("failed to highlight: %w", err)
	}
	return buf.String(), nil
}
