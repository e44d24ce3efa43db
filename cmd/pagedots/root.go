package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	logJSON    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &appContext{flags: flags}

	cmd := &cobra.Command{
		Use:           "pagedots",
		Short:         "pagedots renders compact page indicators and infinite carousels in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.logJSON, "log-json", false, "Write logs as JSON instead of console text")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML or TOML configuration file")

	cmd.AddCommand(newDemoCmd(app))
	cmd.AddCommand(newLayoutCmd(app))
	cmd.AddCommand(newInflateCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
