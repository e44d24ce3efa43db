package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pagedots/internal/indicator"
	"github.com/alexisbeaulieu97/pagedots/internal/ui/components"
)

type layoutOptions struct {
	total    int
	selected int
	all      bool
}

func newLayoutCmd(app *appContext) *cobra.Command {
	opts := layoutOptions{}

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the indicator geometry for one selection",
		Example: `  pagedots layout --total 10 --selected 4
  pagedots layout --total 30 --selected 29 --config pagedots.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}

			layout, err := indicator.NewLayout(cfg.Indicator)
			if err != nil {
				return err
			}

			frame, err := layout.Frame(opts.total, opts.selected)
			if err != nil {
				return err
			}

			profile, err := components.ProfileByName(cfg.Platform.Profile)
			if err != nil {
				return err
			}

			app.log.WithFields(map[string]any{
				"total":    opts.total,
				"selected": opts.selected,
				"region":   frame.Region.String(),
			}).Debug("frame computed")

			return printFrame(cmd.OutOrStdout(), frame, profile, opts.all)
		},
	}

	cmd.Flags().IntVarP(&opts.total, "total", "t", 0, "Number of pages")
	cmd.Flags().IntVarP(&opts.selected, "selected", "s", 0, "Selected page index")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Include dots outside the visible window")
	cmd.MarkFlagRequired("total") //nolint:errcheck

	return cmd
}

func printFrame(w io.Writer, frame indicator.Frame, profile components.Profile, all bool) error {
	cfg := frame.Config()

	fmt.Fprintf(w, "%-10s %s\n", "region", frame.Region)
	fmt.Fprintf(w, "%-10s %t\n", "fallback", frame.Fallback)
	fmt.Fprintf(w, "%-10s %+.2f\n", "offset", frame.Offset)
	fmt.Fprintf(w, "%-10s [%d, %d] (%d of %d dots)\n", "window", frame.First, frame.Last, frame.Len(), frame.Total)
	fmt.Fprintf(w, "%-10s %s\n", "direction", cfg.Direction.Normalize())

	if frame.Total == 0 {
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("DOT", "SCALE", "STATE", "GLYPH")

	first, last := frame.First, frame.Last
	if all {
		first, last = 0, frame.Total-1
	}

	for i := first; i <= last; i++ {
		scale := frame.Scale(i)
		state := "visible"
		switch {
		case i == frame.Selected:
			state = "selected"
		case !frame.Contains(i):
			state = "hidden"
		}

		glyph := ""
		if frame.Contains(i) {
			glyph = profile.Glyphs.Glyph(scale, i == frame.Selected)
		}
		t.Row(strconv.Itoa(i), strconv.FormatFloat(scale, 'f', 2, 64), state, glyph)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, t.Render())

	fmt.Fprintln(w)
	fmt.Fprintln(w, components.NewPageIndicator(frame).ViewWithContext(components.DefaultContext().WithProfile(profile)))
	return nil
}
