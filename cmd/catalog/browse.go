package main

import (
	"github.com/spf13/cobra"

	"github.com/handiism/album-catalog/internal/app"
	"github.com/handiism/album-catalog/internal/theme"
)

func newBrowseCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive catalog browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, rootFlags)
		},
	}
}

func runBrowse(cmd *cobra.Command, flags *rootFlags) error {
	a, err := openApp(cmd, flags)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Browse(cmd.Context())
}

// openApp starts the application services and applies --theme.
func openApp(cmd *cobra.Command, flags *rootFlags) (*app.App, error) {
	var forced theme.Theme
	if flags.theme != "" {
		t, err := theme.ParseStrict(flags.theme)
		if err != nil {
			return nil, newCommandError("start", "reading --theme", err, "Use --theme light or --theme dark.")
		}
		forced = t
	}

	a, err := app.New(cmd.Context(), flags.appOptions(cmd))
	if err != nil {
		return nil, newCommandError("start", "loading settings", err, "Check the settings file and the --source value.")
	}

	if forced != "" {
		// The theme is still applied when saving fails.
		_, _ = a.Theme.Set(cmd.Context(), forced)
	}
	return a, nil
}
