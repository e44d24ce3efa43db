package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pagedots/internal/inflate"
	apperrors "github.com/alexisbeaulieu97/pagedots/pkg/errors"
)

type inflateOptions struct {
	count        int
	groups       int
	initialGroup int
	initialLocal int
	indices      []int
}

func newInflateCmd(app *appContext) *cobra.Command {
	opts := inflateOptions{}

	cmd := &cobra.Command{
		Use:   "inflate",
		Short: "Map inflated carousel indices back to real pages",
		Example: `  pagedots inflate --count 3 --groups 5 --index 4 --index 12
  pagedots inflate --count 14 --groups 101 --initial-local 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inf, err := buildInflator(opts)
			if err != nil {
				app.log.Error(err, "inflator rejected")
				return err
			}

			indices := opts.indices
			if len(indices) == 0 {
				at := inf.Selected()
				indices = []int{at - 1, at, at + 1}
			}

			app.log.WithFields(map[string]any{
				"count":  inf.Count(),
				"groups": inf.DuplicateGroups(),
			}).Debug("inflator built")

			printInflation(cmd.OutOrStdout(), inf, indices)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", 0, "Number of real pages")
	cmd.Flags().IntVarP(&opts.groups, "groups", "g", 3, "Number of duplicate groups")
	cmd.Flags().IntVar(&opts.initialGroup, "initial-group", -1, "Group holding the initial selection (-1 for the middle group)")
	cmd.Flags().IntVar(&opts.initialLocal, "initial-local", 0, "Real index of the initial selection")
	cmd.Flags().IntSliceVarP(&opts.indices, "index", "i", nil, "Inflated index to resolve (repeatable)")
	cmd.MarkFlagRequired("count") //nolint:errcheck

	return cmd
}

func buildInflator(opts inflateOptions) (*inflate.Inflator[int], error) {
	if opts.count <= 0 {
		return nil, apperrors.NewEmptyDataError("inflator")
	}
	if opts.initialLocal < 0 || opts.initialLocal >= opts.count {
		return nil, apperrors.NewIndexOutOfRangeError("initial local index", opts.initialLocal, opts.count)
	}

	pages := make([]int, opts.count)
	for i := range pages {
		pages[i] = i
	}

	if opts.initialGroup < 0 {
		return inflate.NewCentered(pages, opts.groups, pages[opts.initialLocal])
	}
	return inflate.New(pages, opts.groups, opts.initialGroup, pages[opts.initialLocal])
}

func printInflation(w io.Writer, inf *inflate.Inflator[int], indices []int) {
	count := inf.Count()
	initial := inf.Selected()

	fmt.Fprintf(w, "%-15s %d\n", "count", count)
	fmt.Fprintf(w, "%-15s %d\n", "groups", inf.DuplicateGroups())
	fmt.Fprintf(w, "%-15s %d\n", "inflated count", inf.InflatedCount())
	fmt.Fprintf(w, "%-15s %d (group %d, local %d)\n", "initial index", initial, initial/count, inf.RealIndex(initial))
	fmt.Fprintf(w, "%-15s %d\n", "recentred", inf.Recentered())

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("INDEX", "REAL", "GROUP", "IN RANGE")

	for _, index := range indices {
		realIndex := inf.RealIndex(index)
		group := (index - realIndex) / count
		inRange := "no"
		if inf.InRange(index) {
			inRange = "yes"
		}
		t.Row(strconv.Itoa(index), strconv.Itoa(realIndex), strconv.Itoa(group), inRange)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, t.Render())
}
