package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/handiism/album-catalog/internal/theme"
)

func newThemeCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle|reset]",
		Short:     "Show or change the saved theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "toggle", "reset"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, rootFlags)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := cmd.Context()
			current := a.Theme.Current()

			if len(args) == 1 {
				switch args[0] {
				case "toggle":
					current, err = a.Theme.Toggle(ctx)
				case "reset":
					current, err = a.Theme.Reset(ctx)
				default:
					var t theme.Theme
					t, err = theme.ParseStrict(args[0])
					if err != nil {
						return newCommandError("change theme", "reading argument", err, "Use light, dark, toggle or reset.")
					}
					current, err = a.Theme.Set(ctx, t)
				}
				if err != nil {
					return newCommandError("change theme", "saving preference", err, "Check that the state directory is writable.")
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", current.Icon(), current)
			return nil
		},
	}
}
