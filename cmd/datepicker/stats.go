package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/adwaits94/datepicker/internal/domain/entities"
)

type statsFlags struct {
	first  string
	second string
}

func newStatsCmd() *cobra.Command {
	var flags statsFlags

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show history statistics",
		Long: `Shows how often each idea and tag was done, who the dates suited,
and how much was spent per person each month.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			return withDeps(ctx, func(d *Deps) error {
				if len(d.Manager.GetHistory()) == 0 {
					fmt.Println("No dates in history yet.")
					return nil
				}
				printCharts(d.Manager.Charts(flags.first, flags.second), d.Config.Display.Currency)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&flags.first, "first", "", "First person for the liked-by comparison")
	cmd.Flags().StringVar(&flags.second, "second", "", "Second person for the liked-by comparison")

	return cmd
}

func printCharts(data entities.ChartData, currency string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	printCounts(w, "Activities", data.Activities)
	printCounts(w, "Tags", data.Tags)

	if o := data.Overlap; o != nil && o.Total() > 0 {
		fmt.Fprintln(w, "\nLiked by\t\t")
		rows := []entities.Count{
			{Value: "only " + o.First, Count: o.OnlyFirst},
			{Value: "only " + o.Second, Count: o.OnlySec},
			{Value: "both", Count: o.Both},
		}
		maxCount := max(o.OnlyFirst, o.OnlySec, o.Both)
		for _, r := range rows {
			fmt.Fprintf(w, "  %s\t%d\t%s\n", r.Value, r.Count, bar(r.Count, maxCount, BarWidth))
		}
	}

	if len(data.Monthly) > 0 {
		fmt.Fprintln(w, "\nSpending per person\t\t")
		var maxAmount float64
		for _, m := range data.Monthly {
			maxAmount = max(maxAmount, m.Amount)
		}
		for _, m := range data.Monthly {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", m.Month, formatMoney(currency, m.Amount), floatBar(m.Amount, maxAmount, BarWidth))
		}
	}

	w.Flush()
}

func printCounts(w *tabwriter.Writer, title string, counts []entities.Count) {
	if len(counts) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\t\t\n", title)
	maxCount := counts[0].Count
	for _, c := range counts {
		maxCount = max(maxCount, c.Count)
	}
	for _, c := range counts {
		fmt.Fprintf(w, "  %s\t%d\t%s\n", truncate(c.Value, 30), c.Count, bar(c.Count, maxCount, BarWidth))
	}
}
