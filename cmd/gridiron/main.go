// Package main provides the CLI entrypoint for gridiron.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/gridiron/internal/config"
	"github.com/verte-zerg/gridiron/internal/journal"
	"github.com/verte-zerg/gridiron/internal/logger"
	"github.com/verte-zerg/gridiron/internal/model"
	"github.com/verte-zerg/gridiron/internal/report"
	"github.com/verte-zerg/gridiron/internal/session"
	"github.com/verte-zerg/gridiron/internal/tui"
)

const (
	defaultView     = string(model.ViewTracker)
	defaultLogLevel = "info"
)

var (
	trackerView string
	logLevel    string
	logFile     string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gridiron",
		Short:         "CFB dynasty roster tracker",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTrackerCmd,
	}

	rootCmd.Flags().StringVar(&trackerView, "view", defaultView, "initial view (tracker, summary, totals, development, offense, defense)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file (default: logging disabled)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newPositionsCmd())

	return rootCmd
}

func runTrackerCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "view", &trackerView, fileCfg.Tracker.View)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.Log.File)

	view, err := model.ParseView(trackerView)
	if err != nil {
		return fmt.Errorf("invalid --view value: %w", err)
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("gridiron needs an interactive terminal")
	}

	log, err := logger.New(logLevel, logFile)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer log.Sync()

	j, err := journal.Open()
	if err != nil {
		return fmt.Errorf("failed to open session journal: %w", err)
	}
	defer func() {
		if cerr := j.Close(); cerr != nil {
			logErrf("failed to close session journal: %v\n", cerr)
		}
	}()

	log.Info("session started", "view", view)
	sess := session.New(log, j, view)
	program := tea.NewProgram(tui.NewModel(sess, log), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	t := report.BuildTotals(sess.Roster())
	log.Info("session ended", "team_total", t.Team)
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

func newPositionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "positions",
		Short: "List roster positions and player options",
		Args:  cobra.NoArgs,
		RunE:  runPositionsCmd,
	}
}

func runPositionsCmd(cmd *cobra.Command, _ []string) error {
	if err := report.RenderOptions(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
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

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# gridiron configuration
# Uncomment a value to enable it. CLI flags override config values.

[tracker]
# view = %q          # Initial view: tracker, summary, totals, development, offense, defense

[log]
# level = %q            # debug, info, warn, error
# file = %q
`,
		defaultView,
		defaultLogLevel,
		config.DefaultLogPath(),
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
