package main

import (
	"github.com/spf13/cobra"

	"github.com/handiism/album-catalog/internal/app"
)

type rootFlags struct {
	configPath string
	source     string
	theme      string
	verbose    bool
	logFile    string
}

func (f *rootFlags) appOptions(cmd *cobra.Command) app.Options {
	return app.Options{
		ConfigPath: f.configPath,
		Source:     f.source,
		Verbose:    f.verbose,
		LogFile:    f.logFile,
		Stderr:     cmd.ErrOrStderr(),
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "catalog",
		Short:         "Browse an album catalog in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Settings file (default ~/.config/album-catalog/config.yaml)")
	cmd.PersistentFlags().StringVarP(&flags.source, "source", "s", "", "Catalog JSON location, an http(s) URL or a file path")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Start with this theme (light or dark) and save it")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Log destination; '-' writes to stderr (default <state_dir>/catalog.log)")

	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
