package cmd

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

type rootOptions struct {
	configPath string
	logLevel   string
	app        *app
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "remedy",
		Short:         "remedy: syslog-driven network remediation",
		Long:          "remedy reads device syslog, records each distinct event once, and runs diagnostic routines against the affected switch over an interactive CLI session.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !needsApp(cmd) {
				return nil
			}

			app, err := wireApp(opts)
			if err != nil {
				return err
			}
			opts.app = app
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if opts.app == nil {
				return nil
			}

			err := opts.app.Close()
			opts.app = nil
			return err
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $HOME/.config/remedy/config.toml)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newIngestCmd(opts),
		newRemediateCmd(opts),
		newRunCmd(opts),
		newWatchCmd(opts),
		newEventsCmd(opts),
	)

	return rootCmd
}

const skipWireAnnotation = "remedy/skip-wire"

func needsApp(cmd *cobra.Command) bool {
	_, skip := cmd.Annotations[skipWireAnnotation]
	return !skip
}
