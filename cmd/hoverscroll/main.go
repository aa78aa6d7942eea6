package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mobil-koeln/hoverscroll/internal/cache"
	"github.com/mobil-koeln/hoverscroll/internal/config"
	"github.com/mobil-koeln/hoverscroll/internal/content"
	"github.com/mobil-koeln/hoverscroll/internal/geometry"
	"github.com/mobil-koeln/hoverscroll/internal/logging"
	"github.com/mobil-koeln/hoverscroll/internal/output"
	"github.com/mobil-koeln/hoverscroll/internal/tui"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

const highlightCacheTTL = 7 * 24 * time.Hour

func main() {
	err := rootCmd.Execute()
	_ = logging.Close()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hoverscroll",
	Short: "Scrollable terminal panels with auto-hiding, draggable scrollbars",
	Long: `hoverscroll shows content in a scrollable terminal panel whose
scrollbar thumbs appear while you hover or scroll and fade out after a
short delay. Thumbs can be dragged with the mouse.

Features:
  - Vertical and horizontal thumbs sized to the visible share of the content
  - Drag, mouse wheel (shift for horizontal) and keyboard scrolling
  - File viewer with syntax highlighting and live reload
  - Thumb geometry calculator for scripting

Quick Start:
  1. Demo list:              hoverscroll (or hoverscroll demo)
  2. View a file:            hoverscroll view main.go --highlight
  3. Follow a growing file:  hoverscroll view app.log --follow
  4. Compute thumb geometry: hoverscroll geometry --client 300 --scroll 600`,
	Version:           version,
	PersistentPreRunE: setupLogging,
	RunE:              runDemo,
}

// Global flags
var (
	flagConfig      string
	flagHideDelay   int
	flagSettleDelay int
	flagMinThumb    int
	flagLogDir      string
	flagDebug       bool
	flagColor       string
	flagNoCache     bool
)

// Command flags
var (
	flagItems       int
	flagFollow      bool
	flagHighlight   bool
	flagClient      int
	flagScroll      int
	flagOffset      int
	flagWidth       int
	flagScrollWidth int
	flagLeft        int
	flagTrack       bool
	flagJSON        bool
	flagForce       bool
)

func init() {
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(geometryCmd)
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default $XDG_CONFIG_HOME/hoverscroll/config.json)")
	rootCmd.PersistentFlags().IntVar(&flagHideDelay, "hide-delay", 0, "Thumb auto-hide delay in milliseconds")
	rootCmd.PersistentFlags().IntVar(&flagSettleDelay, "settle-delay", 0, "Scroll settle delay in milliseconds")
	rootCmd.PersistentFlags().IntVar(&flagMinThumb, "min-thumb", 0, "Smallest thumb drawn for an overflowing axis")
	rootCmd.PersistentFlags().StringVar(&flagLogDir, "log-dir", "", "Write logs to this directory")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Disable the highlight cache")

	rootCmd.Flags().IntVarP(&flagItems, "items", "n", 30, "Number of demo list items")
	demoCmd.Flags().IntVarP(&flagItems, "items", "n", 30, "Number of demo list items")

	viewCmd.Flags().BoolVarP(&flagFollow, "follow", "f", false, "Reload the file when it changes")
	viewCmd.Flags().BoolVar(&flagHighlight, "highlight", false, "Syntax-highlight the file")

	geometryCmd.Flags().IntVar(&flagClient, "client", 0, "Visible height in cells")
	geometryCmd.Flags().IntVar(&flagScroll, "scroll", 0, "Content height in cells")
	geometryCmd.Flags().IntVar(&flagOffset, "offset", 0, "Vertical scroll offset")
	geometryCmd.Flags().IntVar(&flagWidth, "width", 0, "Visible width in cells")
	geometryCmd.Flags().IntVar(&flagScrollWidth, "scroll-width", 0, "Content width in cells")
	geometryCmd.Flags().IntVar(&flagLeft, "left", 0, "Horizontal scroll offset")
	geometryCmd.Flags().BoolVar(&flagTrack, "track", false, "Draw the track with the thumb")
	geometryCmd.Flags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	_ = geometryCmd.MarkFlagRequired("client")
	_ = geometryCmd.MarkFlagRequired("scroll")

	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing config file")
}

// setupLogging opens the log file when --log-dir or --debug is given.
func setupLogging(cmd *cobra.Command, args []string) error {
	if !flagDebug && flagLogDir == "" {
		return nil
	}
	dir := flagLogDir
	if dir == "" {
		dir = config.DefaultLogDir()
	}
	level := logging.LevelInfo
	if flagDebug {
		level = logging.LevelDebug
	}
	if err := logging.Initialize(dir, level); err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	logging.Info("hoverscroll %s: %s", version, cmd.CommandPath())
	return nil
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.DefaultPath()
}

// loadConfig reads the config file and applies flag overrides on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath())
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("hide-delay") {
		cfg.HideDelayMs = flagHideDelay
	}
	if flags.Changed("settle-delay") {
		cfg.SettleDelayMs = flagSettleDelay
	}
	if flags.Changed("min-thumb") {
		cfg.MinThumb = flagMinThumb
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// runProgram runs a full-screen program with mouse motion reporting, which
// the panel needs for hover and drag.
func runProgram(model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Show the demo list",
	Long: `Show a list of items in a scroll panel. The first item is twice as
long as the others so the list overflows in both directions.

Keyboard:
  j/k, h/l, arrows   Scroll
  pgup/pgdn, g/G     Page, top, bottom
  a                  Append the next demo item
  i                  Add a custom item
  u                  Unmount / mount the panel
  ?                  Toggle help
  q                  Quit

Mouse:
  Hover the panel to show the thumbs, drag a thumb to scroll.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Show a file in a scroll panel",
	Long: `Show a text file in a scroll panel.

Examples:
  hoverscroll view README.md
  hoverscroll view main.go --highlight
  hoverscroll view app.log --follow`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

var geometryCmd = &cobra.Command{
	Use:   "geometry",
	Short: "Compute scrollbar thumb geometry",
	Long: `Compute the thumb size and offset for a viewport.

Examples:
  hoverscroll geometry --client 300 --scroll 600
  hoverscroll geometry --client 300 --scroll 600 --offset 300 --track
  hoverscroll geometry --client 10 --scroll 40 --width 20 --scroll-width 80 --json`,
	Args: cobra.NoArgs,
	RunE: runGeometry,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if flagItems < 0 {
		return fmt.Errorf("--items must not be negative")
	}

	model := tui.NewList(cfg, content.DemoItems(flagItems), zone.New())
	return runProgram(model)
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	loader := newLoader()
	f, err := loader.Load(path)
	if err != nil {
		return err
	}

	var watcher *content.Watcher
	if flagFollow {
		watcher, err = content.NewWatcher(path)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		defer func() { _ = watcher.Close() }()

		ctx, cancel := output.SignalContext(context.Background())
		defer cancel()
		go func() {
			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logging.WithError(err, "file watcher stopped")
			}
		}()
	}

	model := tui.NewFile(cfg, f, loader, watcher, zone.New())
	return runProgram(model)
}

// newLoader builds the file loader. The highlight cache is best effort: when
// it cannot be opened, files are highlighted on every load.
func newLoader() content.Loader {
	loader := content.Loader{Highlight: flagHighlight}
	if !flagHighlight || flagNoCache {
		return loader
	}

	c, err := cache.NewFileCache(cache.DefaultDir(), highlightCacheTTL)
	if err != nil {
		logging.WithError(err, "highlight cache disabled")
		return loader
	}
	if err := c.Cleanup(); err != nil {
		logging.WithError(err, "highlight cache cleanup")
	}
	loader.Cache = c
	return loader
}

func runGeometry(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	m := geometry.Metrics{
		ClientHeight: flagClient,
		ScrollHeight: flagScroll,
		ScrollTop:    flagOffset,
		ClientWidth:  flagWidth,
		ScrollWidth:  flagScrollWidth,
		ScrollLeft:   flagLeft,
	}
	if err := validateMetrics(m); err != nil {
		return err
	}

	reports := output.Report(m, cfg.MinThumb)
	if flagJSON {
		return output.RenderJSON(cmd.OutOrStdout(), reports)
	}
	output.RenderGeometry(cmd.OutOrStdout(), reports, output.TableOptions{
		Colors:    output.NewColors(output.ParseColorMode(flagColor)),
		ShowTrack: flagTrack,
	})
	return nil
}

// validateMetrics rejects negative extents and offsets outside the scroll
// range.
func validateMetrics(m geometry.Metrics) error {
	for _, a := range geometry.Axes {
		e := m.Extent(a)
		if e.Client < 0 || e.Scroll < 0 {
			return fmt.Errorf("%s extents must not be negative", a)
		}
		if e.Offset < 0 || e.Offset > e.MaxOffset() {
			return fmt.Errorf("%s offset %d outside [0, %d]", a, e.Offset, e.MaxOffset())
		}
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath()
	if _, err := os.Stat(path); err == nil && !flagForce {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}
	if err := config.Save(path, config.Default()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}
