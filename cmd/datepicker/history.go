package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past dates",
		Long:  "Lists accepted dates, newest first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(cmd, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultHistoryLimit, "Maximum number of dates to display (0 = all)")

	cmd.AddCommand(newHistoryClearCmd())
	cmd.AddCommand(newHistoryAuditCmd())

	return cmd
}

func runHistoryList(cmd *cobra.Command, limit int) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		records := d.Manager.GetHistory()
		if len(records) == 0 {
			fmt.Println("No dates in history yet.")
			return nil
		}

		shown := len(records)
		if limit > 0 && limit < shown {
			shown = limit
		}
		fmt.Printf("Showing %d of %d dates:\n\n", shown, len(records))

		currency := d.Config.Display.Currency
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tACTIVITY\tCOST PER PERSON")
		for i := len(records) - 1; i >= len(records)-shown; i-- {
			r := records[i]
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.Date, truncate(r.ActivityName, 40), formatOptionalMoney(currency, r.CostPerPerson))
		}
		w.Flush()

		return nil
	})
}

type clearFlags struct {
	last  int
	force bool
}

func newHistoryClearCmd() *cobra.Command {
	var flags clearFlags

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete history records",
		Long:  "Deletes all history records, or only the most recent ones with --last.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryClear(cmd, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.last, "last", "n", 0, "Delete only the most recent N records")
	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func runHistoryClear(cmd *cobra.Command, flags clearFlags) error {
	if cmd.Flags().Changed("last") && flags.last <= 0 {
		return errors.New("--last must be a positive number")
	}

	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		total := len(d.Manager.GetHistory())
		if total == 0 {
			fmt.Println("History is already empty.")
			return nil
		}

		if flags.last > 0 {
			n := min(flags.last, total)
			if !flags.force && !confirmAction(fmt.Sprintf("Delete the last %d history records?", n)) {
				fmt.Println("Cancelled.")
				return nil
			}
			removed, err := d.Manager.ClearLastHistory(ctx, n)
			if err != nil {
				return err
			}
			fmt.Printf("Deleted %d history records.\n", removed)
			return nil
		}

		if !flags.force && !confirmAction(fmt.Sprintf("Delete all %d history records?", total)) {
			fmt.Println("Cancelled.")
			return nil
		}
		if err := d.Manager.ClearHistory(ctx); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	})
}

func newHistoryAuditCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show recorded actions",
		Long:  "Lists recent history and catalog changes. Only available with the sqlite history backend.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			return withDeps(ctx, func(d *Deps) error {
				if !d.Manager.AuditEnabled() {
					fmt.Println("The audit log is only kept with the sqlite history backend (history.backend: sqlite).")
					return nil
				}

				entries, err := d.Manager.AuditEntries(ctx, limit)
				if err != nil {
					return err
				}
				if len(entries) == 0 {
					fmt.Println("No actions recorded yet.")
					return nil
				}

				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "TIME\tACTION\tSUBJECT\tDETAILS")
				for _, e := range entries {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
						e.CreatedAt.Local().Format("2006-01-02 15:04"),
						e.Action,
						truncate(e.Subject, 30),
						formatDetails(e.Details))
				}
				w.Flush()
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultAuditLimit, "Maximum number of entries to display")

	return cmd
}
