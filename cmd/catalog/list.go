package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/handiism/album-catalog/internal/catalog"
	"github.com/handiism/album-catalog/internal/catalog/dto"
	"github.com/handiism/album-catalog/internal/theme"
	"github.com/handiism/album-catalog/internal/view"
)

const plainWidth = 80

type listOptions struct {
	query      string
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the catalog, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "Only list records whose band, album or year contains this text")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, flags *rootFlags, opts *listOptions) error {
	a, err := openApp(cmd, flags)
	if err != nil {
		return err
	}
	defer a.Close()

	albums, err := a.Loader.Load(cmd.Context())
	if err != nil {
		a.Log.Error(err, "failed to load catalog")
		return newCommandError("list", catalog.UserMessage, err, "Check that --source points to a reachable catalog.")
	}

	records := catalog.Filter(opts.query, albums)

	if opts.jsonOutput {
		data, err := dto.EncodeAlbums(records)
		if err != nil {
			return newCommandError("list", "encoding records", err, "Report this as a bug.")
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	out := cmd.OutOrStdout()
	width, styled := terminalWidth(out)
	renderList(out, view.Render(records, 0), width, styled, theme.PaletteFor(a.Theme.Current()))
	return nil
}

// terminalWidth reports the output width and whether out is a terminal.
func terminalWidth(out io.Writer) (int, bool) {
	file, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return plainWidth, false
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return plainWidth, true
	}
	return width, true
}

func renderList(out io.Writer, cards []view.Card, width int, styled bool, palette theme.Palette) {
	title := func(s string) string { return s }
	dim := title
	if styled {
		title = func(s string) string { return palette.Title.Render(s) }
		dim = func(s string) string { return palette.Dim.Render(s) }
	}

	for i, card := range cards {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, title(runewidth.Truncate(card.Title, width, "…")))
		fmt.Fprintln(out, dim(card.YearLine))
		if card.Description != "" {
			fmt.Fprintln(out, wordwrap.String(card.Description, width))
		}
		if len(card.Tracks) > 0 {
			fmt.Fprintln(out, dim(strings.Join(card.Tracks, " · ")))
		}
		for _, l := range []view.Link{card.Detail, card.Streaming} {
			if l.URL != "" {
				fmt.Fprintf(out, "%s: %s\n", l.Label, l.URL)
			}
		}
	}

	if styled {
		fmt.Fprintln(out, lipgloss.NewStyle().Foreground(palette.Muted).Render(fmt.Sprintf("\n%d álbuns", len(cards))))
		return
	}
	fmt.Fprintf(out, "\n%d álbuns\n", len(cards))
}
