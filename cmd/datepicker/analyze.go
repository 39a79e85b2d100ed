package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/adwaits94/datepicker/internal/domain/entities"
)

func newAnalyzeCmd() *cobra.Command {
	var breakdown bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Suggest how to balance future dates",
		Long:  "Compares the history with the catalog and names the locations, people and tags you have done least.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			return withDeps(ctx, func(d *Deps) error {
				analysis := d.Manager.Analysis()

				if analysis.Breakdown.Total == 0 {
					fmt.Println("No dates in history to analyze yet.")
					return nil
				}

				suggestions := analysis.SuggestionStrings()
				if len(suggestions) == 0 {
					fmt.Println("Your dates look balanced.")
				}
				for _, s := range suggestions {
					fmt.Printf("- %s\n", s)
				}

				if analysis.Breakdown.Skipped > 0 {
					fmt.Printf("\n%d history records refer to ideas no longer in the catalog and were skipped.\n", analysis.Breakdown.Skipped)
				}

				if breakdown {
					printBreakdown(analysis.Breakdown)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&breakdown, "breakdown", "b", false, "Also show the counts behind the suggestions")

	return cmd
}

func printBreakdown(b entities.Breakdown) {
	sections := []struct {
		title  string
		counts []entities.Count
	}{
		{"Locations", b.Locations},
		{"Liked by", b.LikedBy},
		{"Tags", b.Tags},
		{"Ideas", b.Ideas},
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, section := range sections {
		if len(section.counts) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\t\n", section.title)
		for _, c := range section.counts {
			fmt.Fprintf(w, "  %s\t%d\n", c.Value, c.Count)
		}
	}
	w.Flush()
}
