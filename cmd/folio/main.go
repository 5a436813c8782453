package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/folio/internal/app"
	"github.com/marcus/folio/internal/config"
	"github.com/marcus/folio/internal/content"
	"github.com/marcus/folio/internal/nav"
	"github.com/marcus/folio/internal/styles"
	"github.com/marcus/folio/internal/theme"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is set via ldflags at build time.
var Version = ""

const (
	logFile      = "folio.log"
	defaultWidth = 80
)

type options struct {
	configPath  string
	contentPath string
	themeName   string
	debug       bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "folio",
		Short:         "A portfolio you browse in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file")
	root.PersistentFlags().StringVar(&opts.contentPath, "content", "", "portfolio content file (json or yaml)")
	root.PersistentFlags().StringVar(&opts.themeName, "theme", "", "theme for this session: dark or light")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	root.AddCommand(newPrintCmd(opts), newVersionCmd())
	return root
}

func newPrintCmd(opts *options) *cobra.Command {
	var (
		section string
		width   int
	)
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Render the page once to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := nav.ParseSection(section)
			if err != nil {
				return err
			}
			cfg, site, err := loadAll(opts)
			if err != nil {
				return err
			}
			if width <= 0 {
				width = terminalWidth(cmd.OutOrStdout())
			}
			return printPage(cmd.OutOrStdout(), cfg, site, width, from)
		},
	}
	cmd.Flags().StringVar(&section, "section", "home", "section to start from: home, about, projects or contact")
	cmd.Flags().IntVar(&width, "width", 0, "page width (defaults to the terminal width)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of folio",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "folio %s\n", effectiveVersion(Version))
		},
	}
}

func runTUI(cmd *cobra.Command, opts *options) error {
	cfg, site, err := loadAll(opts)
	if err != nil {
		return err
	}

	// Without a terminal there is nothing to scroll: print the page instead.
	out := cmd.OutOrStdout()
	if f, ok := out.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		return printPage(out, cfg, site, defaultWidth, nav.Home)
	}

	logger, closeLog := setupLogger(opts.debug)
	defer closeLog()

	watcher, err := config.NewWatcher(config.ConfigPath())
	if err != nil {
		logger.Warn("config watcher unavailable", "err", err)
		watcher = nil
	}

	model, err := app.New(cfg, site, theme.NewConfigStore(cfg),
		app.WithLogger(logger),
		app.WithWatcher(watcher),
	)
	if err != nil {
		return err
	}

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	logger.Info("starting", "version", effectiveVersion(Version), "content", cfg.Content.Path)
	if _, err := tea.NewProgram(model, progOpts...).Run(); err != nil {
		return fmt.Errorf("running application: %w", err)
	}
	return nil
}

// loadAll loads the config and the content, applying command-line
// overrides.
func loadAll(opts *options) (*config.Config, *content.Site, error) {
	if opts.configPath != "" {
		config.SetConfigPath(opts.configPath)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	if opts.themeName != "" {
		mode, err := theme.ParseMode(opts.themeName)
		if err != nil {
			return nil, nil, err
		}
		cfg.UI.Theme = string(mode)
	}
	if opts.contentPath != "" {
		cfg.Content.Path = opts.contentPath
	}

	site, err := content.LoadOrDefault(cfg.Content.Path)
	if err != nil {
		return nil, nil, err
	}
	return cfg, site, nil
}

func printPage(w io.Writer, cfg *config.Config, site *content.Site, width int, from nav.Section) error {
	mode, err := theme.ParseMode(cfg.UI.Theme)
	if err != nil {
		mode = theme.Dark
	}
	styles.Apply(mode)
	return app.Print(w, cfg, site, mode, width, from)
}

func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultWidth
}

// setupLogger logs to a file next to the config, since the TUI owns the
// terminal. If the file can't be opened logs are discarded.
func setupLogger(debugLogs bool) (*slog.Logger, func()) {
	level := slog.LevelInfo
	if debugLogs {
		level = slog.LevelDebug
	}

	dir := config.ConfigDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }
}

// effectiveVersion returns v, or a version derived from the build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return "devel+" + s.Value[:7]
		}
	}
	return "devel"
}
