package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/pagedots/internal/config"
	"github.com/alexisbeaulieu97/pagedots/internal/logger"
	"github.com/alexisbeaulieu97/pagedots/internal/tui"
	"github.com/alexisbeaulieu97/pagedots/internal/ui/components"
)

type demoOptions struct {
	watch   bool
	logFile string
}

var isTerminal = func(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

var errNotTerminal = errors.New("demo requires an interactive terminal")

func newDemoCmd(app *appContext) *cobra.Command {
	opts := demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive carousel demo",
		Long: `Run the interactive carousel demo.

Use ←/→ to move between pages, click a dot to jump to it and press ? for help.
With --watch the configuration file is reloaded whenever it changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runDemo(cmd.Context(), app, opts)
			if err != nil {
				app.log.Error(err, "demo failed")
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Reload the configuration file when it changes")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write demo logs to this file")

	return cmd
}

func runDemo(ctx context.Context, app *appContext, opts demoOptions) error {
	if opts.watch && strings.TrimSpace(app.flags.configPath) == "" {
		return fmt.Errorf("--watch requires --config")
	}
	if !isTerminal(os.Stdout.Fd()) {
		return errNotTerminal
	}

	cfg, err := app.loadConfig()
	if err != nil {
		return err
	}

	profile, err := components.ProfileByName(cfg.Platform.Profile)
	if err != nil {
		return err
	}
	profile.Apply()

	tuiLog, closeLog, err := demoLogger(app, opts.logFile, cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	zones := zone.New()
	defer zones.Close()

	model, err := tui.NewModel(tui.Options{Config: cfg, Profile: profile, Zones: zones, Logger: tuiLog})
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	if opts.watch {
		watcher, err := config.NewWatcher(app.flags.configPath, config.DefaultReloadDebounce)
		if err != nil {
			return err
		}
		defer watcher.Close()

		go func() {
			_ = watcher.Run(ctx, func(cfg *config.File, err error) {
				program.Send(tui.ConfigReloadedMsg{Config: cfg, Err: err})
			})
		}()
		tuiLog.WithFields(map[string]any{"path": watcher.Path()}).Info("watching config")
	}

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}

// demoLogger returns the logger the TUI writes to. The terminal belongs to
// the program, so logs go to logFile (or the config's log.file) or nowhere.
func demoLogger(app *appContext, logFile string, settings config.Log) (*logger.Logger, func(), error) {
	path := strings.TrimSpace(logFile)
	if path == "" {
		path = strings.TrimSpace(settings.File)
	}
	if path == "" {
		return logger.Nop(), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	level := settings.Level
	if app.flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: settings.HumanReadable && !app.flags.logJSON,
		Writer:        f,
	})
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}

	return log.WithFields(map[string]any{"session": app.session}), func() { _ = f.Close() }, nil
}
