package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pagedots/internal/config"
	"github.com/alexisbeaulieu97/pagedots/internal/logger"
)

// appContext carries state shared by every subcommand of one invocation.
type appContext struct {
	flags   *rootFlags
	log     *logger.Logger
	session string
}

func (a *appContext) setup(cmd *cobra.Command) error {
	level := "info"
	if a.flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: !a.flags.logJSON,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	a.log, a.session = log.WithSession()
	a.log = a.log.WithFields(map[string]any{"command": cmd.Name()})
	return nil
}

// loadConfig reads --config when given and falls back to the defaults.
func (a *appContext) loadConfig() (*config.File, error) {
	path := strings.TrimSpace(a.flags.configPath)
	if path == "" {
		cfg := config.Default()
		return &cfg, nil
	}

	if err := validateConfigPath(path); err != nil {
		return nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		a.log.Error(err, "config rejected")
		return nil, err
	}

	a.log.WithFields(map[string]any{"path": path}).Debug("config loaded")
	return cfg, nil
}
