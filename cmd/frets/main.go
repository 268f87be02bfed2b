// Package main provides the CLI entrypoint for frets.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/frets/internal/chart"
	"github.com/verte-zerg/frets/internal/config"
	"github.com/verte-zerg/frets/internal/fretboard"
	"github.com/verte-zerg/frets/internal/model"
	"github.com/verte-zerg/frets/internal/server"
	"github.com/verte-zerg/frets/internal/theory"
	"github.com/verte-zerg/frets/internal/tui"
)

const (
	defaultKey   = string(theory.KeyG)
	defaultColor = chart.ColorAuto
	debugEnv     = "FRETS_DEBUG"
)

var (
	rootKey        string
	rootDegrees    bool
	rootPentatonic bool

	showKey        string
	showChord      string
	showDegrees    bool
	showPentatonic bool
	showColor      string
	showJSON       bool
	showFind       string

	chordsKey string
	scaleKey  string

	serveAddr     string
	serveAllowAll bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "frets",
		Short:         "Banjo fretboard explorer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runExploreCmd,
	}

	rootCmd.Flags().StringVar(&rootKey, "key", defaultKey, "key to start in (G, C or D)")
	rootCmd.Flags().BoolVar(&rootDegrees, "degrees", false, "show scale degrees instead of note names")
	rootCmd.Flags().BoolVar(&rootPentatonic, "pentatonic", false, "limit degrees to the major pentatonic")

	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newChordsCmd())
	rootCmd.AddCommand(newScaleCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runExploreCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "key", &rootKey, fileCfg.Display.Key)
	applyBoolConfig(cmd, "degrees", &rootDegrees, fileCfg.Display.ShowDegrees)
	applyBoolConfig(cmd, "pentatonic", &rootPentatonic, fileCfg.Display.Pentatonic)

	cfg, err := buildConfig(rootKey, rootDegrees, rootPentatonic, defaultColor)
	if err != nil {
		return err
	}

	closeLog, err := setupDebugLog()
	if err != nil {
		return err
	}
	defer closeLog()

	program := tea.NewProgram(tui.NewModel(cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the fretboard",
		Args:  cobra.NoArgs,
		RunE:  runShowCmd,
	}
	cmd.Flags().StringVar(&showKey, "key", defaultKey, "key (G, C or D)")
	cmd.Flags().StringVar(&showChord, "chord", "", "chord to highlight, e.g. Am")
	cmd.Flags().BoolVar(&showDegrees, "degrees", false, "show scale degrees instead of note names")
	cmd.Flags().BoolVar(&showPentatonic, "pentatonic", false, "limit degrees to the major pentatonic")
	cmd.Flags().StringVar(&showColor, "color", defaultColor, "color output: auto, always or never")
	cmd.Flags().BoolVar(&showJSON, "json", false, "print the grid as JSON")
	cmd.Flags().StringVar(&showFind, "find", "", "list every position of a pitch, e.g. Bb")
	return cmd
}

func runShowCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "key", &showKey, fileCfg.Display.Key)
	applyBoolConfig(cmd, "degrees", &showDegrees, fileCfg.Display.ShowDegrees)
	applyBoolConfig(cmd, "pentatonic", &showPentatonic, fileCfg.Display.Pentatonic)
	applyStringConfig(cmd, "color", &showColor, fileCfg.Display.Color)

	cfg, err := buildConfig(showKey, showDegrees, showPentatonic, showColor)
	if err != nil {
		return err
	}
	sel := model.NewSelection(cfg)
	if showChord != "" {
		chord, err := cfg.Key.Chord(showChord)
		if err != nil {
			return fmt.Errorf("invalid --chord: %w", err)
		}
		sel = sel.WithChord(chord.Name)
	}
	var find theory.Pitch
	if showFind != "" {
		find, err = theory.ParsePitch(showFind)
		if err != nil {
			return fmt.Errorf("invalid --find: %w", err)
		}
	}
	grid := fretboard.FromSelection(sel)

	out := cmd.OutOrStdout()
	if showJSON {
		return server.EncodeGrid(out, grid, find)
	}
	useColor, err := chart.ResolveColor(cfg.Color, out)
	if err != nil {
		return err
	}
	if err := chart.RenderGrid(out, grid, chart.Options{Color: useColor}); err != nil {
		return fmt.Errorf("failed to render fretboard: %w", err)
	}
	if find == "" {
		return nil
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := chart.RenderPositions(out, grid, find); err != nil {
		return fmt.Errorf("failed to write positions: %w", err)
	}
	return nil
}

func newChordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chords",
		Short: "List the chords of a key",
		Args:  cobra.NoArgs,
		RunE:  runChordsCmd,
	}
	cmd.Flags().StringVar(&chordsKey, "key", defaultKey, "key (G, C or D)")
	return cmd
}

func runChordsCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "key", &chordsKey, fileCfg.Display.Key)
	key, err := theory.ParseKey(chordsKey)
	if err != nil {
		return fmt.Errorf("invalid --key: %w", err)
	}
	if err := chart.RenderChords(cmd.OutOrStdout(), key); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newScaleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scale",
		Short: "List the scale degrees of a key",
		Args:  cobra.NoArgs,
		RunE:  runScaleCmd,
	}
	cmd.Flags().StringVar(&scaleKey, "key", defaultKey, "key (G, C or D)")
	return cmd
}

func runScaleCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "key", &scaleKey, fileCfg.Display.Key)
	key, err := theory.ParseKey(scaleKey)
	if err != nil {
		return fmt.Errorf("invalid --key: %w", err)
	}
	if err := chart.RenderScale(cmd.OutOrStdout(), key); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve fretboard grids over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServeCmd,
	}
	cmd.Flags().StringVar(&serveAddr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().BoolVar(&serveAllowAll, "allow-all-origins", false, "allow cross-origin requests from any origin")
	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "addr", &serveAddr, fileCfg.Server.Addr)
	applyBoolConfig(cmd, "allow-all-origins", &serveAllowAll, fileCfg.Server.AllowAll)
	if strings.TrimSpace(serveAddr) == "" {
		return fmt.Errorf("--addr must not be empty")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(model.ServerConfig{Addr: serveAddr, AllowAll: serveAllowAll})
	logErrf("Listening on http://%s\n", srv.Addr())
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// setupDebugLog routes the standard logger to a file while the TUI owns the
// terminal. FRETS_DEBUG=1 uses the state directory; any other value is a path.
func setupDebugLog() (func(), error) {
	target := strings.TrimSpace(os.Getenv(debugEnv))
	if target == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if target == "1" {
		target = config.DefaultDebugLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create debug log directory: %w", err)
	}
	f, err := tea.LogToFile(target, "frets")
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return func() {
		if cerr := f.Close(); cerr != nil {
			logErrf("failed to close debug log: %v\n", cerr)
		}
	}, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# frets configuration
# Uncomment a value to enable it. CLI flags override config values.

[display]
# key = %q              # Starting key: G, C or D
# degrees = false         # Show scale degrees instead of note names
# pentatonic = false      # Limit degrees to the major pentatonic (applies once degrees are on)
# color = %q         # Color for "frets show": auto, always or never

[server]
# addr = %q           # Listen address for "frets serve"
# allow-all-origins = false  # Allow cross-origin requests from any origin
`,
		defaultKey,
		defaultColor,
		server.DefaultAddr,
	)
}

func buildConfig(key string, degrees, pentatonic bool, color string) (model.Config, error) {
	k, err := theory.ParseKey(key)
	if err != nil {
		return model.Config{}, fmt.Errorf("invalid --key: %w", err)
	}
	cfg := model.Config{
		Key:         k,
		ShowDegrees: degrees,
		Pentatonic:  pentatonic,
		Color:       color,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg model.Config) error {
	switch strings.ToLower(strings.TrimSpace(cfg.Color)) {
	case "", chart.ColorAuto, chart.ColorAlways, chart.ColorNever:
	default:
		return fmt.Errorf("--color must be auto, always or never")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
