package main

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/notjagan/dexview/pkg/bot"
	"github.com/notjagan/dexview/pkg/dex"
	"github.com/notjagan/dexview/pkg/export"
	"github.com/notjagan/dexview/pkg/model"
	"github.com/notjagan/dexview/pkg/tui"
)

var ErrUnknownType = errors.New("unknown type")

func (a *app) listCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List Pokemon matching a search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := sortFlag(cmd, a.cfg.View.Sort)
			if err != nil {
				return err
			}

			catalog, err := a.catalog(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			listings := catalog.Listing(search, mode)
			for _, l := range listings {
				fmt.Fprintf(out, "#%03d %s\n", l.Number, dex.DisplayName(l.Entry.Name))
			}
			fmt.Fprintf(out, "%d of %d\n", len(listings), len(catalog.Roster()))

			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Name or number substring to filter by")
	cmd.Flags().String("sort", "", "Result order: number or name")

	return cmd
}

func (a *app) showCmd() *cobra.Command {
	var (
		raw   bool
		style string
	)

	cmd := &cobra.Command{
		Use:   "show <name|number>",
		Short: "Show the card for one Pokemon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.catalog(cmd.Context())
			if err != nil {
				return err
			}

			l, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}

			card, err := catalog.Card(cmd.Context(), l.Number)
			if err != nil {
				return err
			}

			md := card.Markdown()
			if !raw {
				r, err := glamour.NewTermRenderer(renderStyle(style), glamour.WithWordWrap(80))
				if err != nil {
					return fmt.Errorf("error while creating markdown renderer: %w", err)
				}
				md, err = r.Render(md)
				if err != nil {
					return fmt.Errorf("error while rendering card: %w", err)
				}
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), md)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the card as plain markdown")
	cmd.Flags().StringVar(&style, "style", "auto", "Glamour style: auto, dark, light, notty, ...")

	return cmd
}

func renderStyle(style string) glamour.TermRendererOption {
	if style == "auto" {
		return glamour.WithAutoStyle()
	}
	return glamour.WithStandardStyle(style)
}

func (a *app) weakCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weak <type> [type]",
		Short: "List the types a type combination is weak to",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			types := make([]model.TypeName, len(args))
			for i, arg := range args {
				typ, ok := model.ParseTypeName(arg)
				if !ok {
					return fmt.Errorf("%q: %w", arg, ErrUnknownType)
				}
				types[i] = typ
			}

			resolver, err := a.resolver(cmd.Context())
			if err != nil {
				return err
			}

			weak := "none"
			if w := resolver.WeaknessesOf(types); len(w) > 0 {
				weak = strings.Join(model.Titles(w), ", ")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is weak to: %s\n", strings.Join(model.Titles(types), "/"), weak)

			return nil
		},
	}
}

func (a *app) browseCmd() *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the Pokedex interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// the alternate screen owns the terminal, so logs go to a file
			logger, err := newLogger(a.cfg, a.verbose, logFile)
			if err != nil {
				return err
			}
			defer logger.Sync()
			a.logger = logger

			catalog, err := a.catalog(cmd.Context())
			if err != nil {
				return err
			}

			session := dex.NewSession(catalog, dex.ViewState{Sort: a.cfg.View.Sort}, logger)
			p := tea.NewProgram(
				tui.New(cmd.Context(), session),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)
			_, err = p.Run()
			if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				return fmt.Errorf("error while running browser: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "dexview.log", "Where to write logs while browsing")

	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var (
		search      string
		cards       bool
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "export <file.xlsx>",
		Short: "Write a listing to a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := sortFlag(cmd, a.cfg.View.Sort)
			if err != nil {
				return err
			}

			catalog, err := a.catalog(cmd.Context())
			if err != nil {
				return err
			}

			resolver := catalog.Resolver()
			wb := export.Workbook{
				Listings: catalog.Listing(search, mode),
				Resolver: &resolver,
			}
			if cards {
				wb.Cards, err = catalog.Cards(cmd.Context(), wb.Listings, concurrency)
				if err != nil {
					return err
				}
			}

			err = export.WriteFile(args[0], wb)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d Pokemon to %s\n", len(wb.Listings), args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Name or number substring to filter by")
	cmd.Flags().String("sort", "", "Row order: number or name")
	cmd.Flags().BoolVar(&cards, "cards", false, "Fetch each Pokemon's details into the sheet")
	cmd.Flags().IntVar(&concurrency, "concurrency", 8, "Detail requests in flight with --cards")

	return cmd
}

func (a *app) botCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Serve the Pokedex as a Discord bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := a.catalog(cmd.Context())
			if err != nil {
				return err
			}

			b, err := bot.New(a.cfg.Discord.Token, catalog, a.logger)
			if err != nil {
				return err
			}

			return b.Run(cmd.Context())
		},
	}
}
