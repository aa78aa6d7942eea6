package logging

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/mobil-koeln/hoverscroll/internal/testutil"
)

func TestLevelString(t *testing.T) {
	testutil.AssertEqual(t, LevelDebug.String(), "DEBUG")
	testutil.AssertEqual(t, LevelError.String(), "ERROR")
	testutil.AssertEqual(t, Level(42).String(), "UNKNOWN")
}

func TestSetOutput_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, LevelInfo)
	defer func() { _ = Close() }()

	Debug("hidden %d", 1)
	Info("drag started on %s", "vertical")
	Warn("careful")

	out := buf.String()
	testutil.AssertNotContains(t, out, "hidden")
	testutil.AssertContains(t, out, "INFO: drag started on vertical")
	testutil.AssertContains(t, out, "WARN: careful")
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, LevelDebug)
	defer func() { _ = Close() }()

	WithError(nil, "ignored")
	WithError(errors.New("boom"), "watch")

	testutil.AssertNotContains(t, buf.String(), "ignored")
	testutil.AssertContains(t, buf.String(), "ERROR: watch: boom")
}

func TestNoLoggerIsSilent(t *testing.T) {
	_ = Close()
	Info("nobody listens")
	testutil.AssertEqual(t, Path(), "")
}

func TestInitialize_WritesFile(t *testing.T) {
	dir := t.TempDir()
	testutil.AssertNil(t, Initialize(dir, LevelDebug))

	Debug("mounted widget %d", 7)
	path := Path()
	testutil.AssertTrue(t, strings.HasPrefix(path, dir))
	testutil.AssertNil(t, Close())

	data, err := os.ReadFile(path)
	testutil.AssertNil(t, err)
	testutil.AssertContains(t, string(data), "mounted widget 7")
}
