package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/mobil-koeln/hoverscroll/internal/config"
	"github.com/mobil-koeln/hoverscroll/internal/output"
	"github.com/mobil-koeln/hoverscroll/internal/testutil"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func missingConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "config.json")
}

func TestGeometryCommand_JSON(t *testing.T) {
	out, err := execute(t, "geometry",
		"--config", missingConfig(t),
		"--client", "300", "--scroll", "600", "--offset", "300", "--json")
	testutil.AssertNil(t, err)

	var reports []output.AxisReport
	testutil.AssertNil(t, json.Unmarshal([]byte(out), &reports))
	testutil.AssertLen(t, reports, 2)
	testutil.AssertEqual(t, reports[0].Axis, "vertical")
	testutil.AssertEqual(t, reports[0].ThumbSize, 150)
	testutil.AssertEqual(t, reports[0].ThumbOffset, 150)
	testutil.AssertFalse(t, reports[1].Visible)
}

func TestGeometryCommand_Table(t *testing.T) {
	out, err := execute(t, "geometry",
		"--config", missingConfig(t), "--color", "never", "--json=false",
		"--client", "10", "--scroll", "40", "--offset", "0",
		"--width", "20", "--scroll-width", "80", "--left", "0")
	testutil.AssertNil(t, err)

	testutil.AssertContains(t, out, "AXIS")
	testutil.AssertContains(t, out, "vertical")
	testutil.AssertContains(t, out, "horizontal")
	testutil.AssertNotContains(t, out, "hidden")
}

func TestGeometryCommand_OffsetOutOfRange(t *testing.T) {
	_, err := execute(t, "geometry",
		"--config", missingConfig(t),
		"--client", "300", "--scroll", "600", "--offset", "301")
	testutil.AssertError(t, err)
	testutil.AssertContains(t, err.Error(), "outside [0, 300]")
}

func TestConfigShow_FileAndFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := config.Default()
	cfg.HideDelayMs = 500
	testutil.AssertNil(t, config.Save(path, cfg))

	out, err := execute(t, "config", "show", "--config", path, "--min-thumb", "2")
	testutil.AssertNil(t, err)

	var got config.Config
	testutil.AssertNil(t, json.Unmarshal([]byte(out), &got))
	testutil.AssertEqual(t, got.HideDelayMs, 500)
	testutil.AssertEqual(t, got.MinThumb, 2)
	testutil.AssertEqual(t, got.SettleDelayMs, config.Default().SettleDelayMs)
}

func TestConfigShow_InvalidOverride(t *testing.T) {
	_, err := execute(t, "config", "show", "--config", missingConfig(t), "--hide-delay=-5")
	testutil.AssertError(t, err)
	testutil.AssertContains(t, err.Error(), "hide_delay_ms")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")

	out, err := execute(t, "config", "init", "--config", path, "--force=false")
	testutil.AssertNil(t, err)
	testutil.AssertContains(t, out, "Wrote")

	_, err = os.Stat(path)
	testutil.AssertNil(t, err)

	_, err = execute(t, "config", "init", "--config", path, "--force=false")
	testutil.AssertError(t, err)
	testutil.AssertContains(t, err.Error(), "already exists")

	_, err = execute(t, "config", "init", "--config", path, "--force")
	testutil.AssertNil(t, err)
}
