package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/adwaits94/datepicker/internal/domain/entities"
)

func newIdeasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ideas",
		Short: "Manage the date idea catalog",
		Long:  "List, show, add, edit, delete, import or export date ideas.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIdeasList(cmd)
		},
	}

	cmd.AddCommand(newIdeasListCmd())
	cmd.AddCommand(newIdeasShowCmd())
	cmd.AddCommand(newIdeasAddCmd())
	cmd.AddCommand(newIdeasEditCmd())
	cmd.AddCommand(newIdeasDeleteCmd())
	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newExportCmd())

	return cmd
}

func newIdeasListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all ideas",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIdeasList(cmd)
		},
	}
}

func runIdeasList(cmd *cobra.Command) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		ideas, err := d.IdeaHandler.HandleList(ctx)
		if err != nil {
			return fmt.Errorf("listing ideas: %w", err)
		}

		if len(ideas) == 0 {
			fmt.Println("No ideas found.")
			return nil
		}

		currency := d.Config.Display.Currency
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tLIKED BY\tLOCATION\tCOST\tMAX")
		for _, idea := range ideas {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
				truncate(idea.Name(), 40),
				joinOrDash(idea.LikedBy()),
				joinOrDash(idea.Locations()),
				describeCost(currency, idea),
				idea.MaxPeople())
		}
		w.Flush()

		fmt.Printf("\n%d ideas\n", len(ideas))
		return nil
	})
}

func newIdeasShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one idea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				idea, err := d.IdeaHandler.HandleGet(ctx, args[0])
				if err != nil {
					return err
				}
				displayIdea(idea, d.Config.Display.Currency)
				return nil
			})
		},
	}
}

func displayIdea(idea entities.Idea, currency string) {
	fmt.Printf("Name:       %s\n", idea.Name())
	fmt.Printf("Liked by:   %s\n", joinOrDash(idea.LikedBy()))
	fmt.Printf("Location:   %s\n", joinOrDash(idea.Locations()))
	fmt.Printf("Tags:       %s\n", joinOrDash(idea.Tags()))
	fmt.Printf("Cost:       %s\n", describeCost(currency, idea))
	fmt.Printf("Max people: %d\n", idea.MaxPeople())
}

// ideaFlags are shared by add and edit.
type ideaFlags struct {
	name      string
	likedBy   []string
	locations []string
	tags      []string
	cost      float64
	costType  string
	maxPeople int
}

func (f *ideaFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.likedBy, "liked-by", nil, "People who like this idea (comma separated)")
	cmd.Flags().StringSliceVar(&f.locations, "location", nil, "Where it happens, e.g. home,outside")
	cmd.Flags().StringSliceVar(&f.tags, "tags", nil, "Free-form tags")
	cmd.Flags().Float64Var(&f.cost, "cost", 0, "Cost amount")
	cmd.Flags().StringVar(&f.costType, "cost-type", string(entities.CostTypeTotal), "How cost applies (total, per_person)")
	cmd.Flags().IntVar(&f.maxPeople, "max-people", entities.DefaultMaxPeople, "Largest party this idea suits")
}

func newIdeasAddCmd() *cobra.Command {
	var flags ideaFlags

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new idea",
		Long: `Adds an idea to the catalog. Names must be unique.

Examples:
  datepicker ideas add "Picnic" --liked-by gf --location outside --cost 600
  datepicker ideas add "Concert" --liked-by bf,gf --location outside --cost 1500 --cost-type per_person`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			costType, err := entities.ParseCostType(flags.costType)
			if err != nil {
				return err
			}

			idea, err := entities.NewIdeaBuilder(args[0]).
				LikedBy(flags.likedBy...).
				Locations(flags.locations...).
				Tags(flags.tags...).
				Cost(flags.cost, costType).
				MaxPeople(flags.maxPeople).
				Build()
			if err != nil {
				return err
			}

			return withDeps(ctx, func(d *Deps) error {
				if err := d.IdeaHandler.HandleAdd(ctx, idea); err != nil {
					return fmt.Errorf("adding idea: %w", err)
				}
				fmt.Printf("Added idea: %s\n", idea.Name())
				return nil
			})
		},
	}

	flags.register(cmd)
	return cmd
}

func newIdeasEditCmd() *cobra.Command {
	var flags ideaFlags

	cmd := &cobra.Command{
		Use:   "edit <name>",
		Short: "Edit an existing idea",
		Long:  "Changes only the fields given as flags. Use --name to rename; history keeps the old name.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			return withDeps(ctx, func(d *Deps) error {
				existing, err := d.IdeaHandler.HandleGet(ctx, args[0])
				if err != nil {
					return err
				}

				idea, err := applyIdeaFlags(cmd, existing, flags)
				if err != nil {
					return err
				}

				if err := d.IdeaHandler.HandleEdit(ctx, args[0], idea); err != nil {
					return fmt.Errorf("editing idea: %w", err)
				}
				fmt.Printf("Updated idea: %s\n", idea.Name())
				return nil
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&flags.name, "name", "", "New name")
	return cmd
}

// applyIdeaFlags copies the flags the user set onto existing.
func applyIdeaFlags(cmd *cobra.Command, existing entities.Idea, flags ideaFlags) (entities.Idea, error) {
	changed := cmd.Flags().Changed
	b := existing.ToBuilder()

	if changed("name") {
		b.Name(flags.name)
	}
	if changed("liked-by") {
		b.LikedBy(flags.likedBy...)
	}
	if changed("location") {
		b.Locations(flags.locations...)
	}
	if changed("tags") {
		b.Tags(flags.tags...)
	}
	if changed("cost") || changed("cost-type") {
		cost, costType := existing.Cost(), existing.CostType()
		if changed("cost") {
			cost = flags.cost
		}
		if changed("cost-type") {
			parsed, err := entities.ParseCostType(flags.costType)
			if err != nil {
				return entities.Idea{}, err
			}
			costType = parsed
		}
		b.Cost(cost, costType)
	}
	if changed("max-people") {
		b.MaxPeople(flags.maxPeople)
	}

	return b.Build()
}

func newIdeasDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete an idea",
		Long:  "Removes an idea from the catalog. Its history records are kept.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := strings.TrimSpace(args[0])

			return withDeps(ctx, func(d *Deps) error {
				if _, err := d.IdeaHandler.HandleGet(ctx, name); err != nil {
					return err
				}

				if !force && !confirmAction(fmt.Sprintf("Delete idea %q?", name)) {
					fmt.Println("Cancelled.")
					return nil
				}

				if err := d.IdeaHandler.HandleDelete(ctx, name); err != nil {
					return fmt.Errorf("deleting idea: %w", err)
				}
				fmt.Printf("Deleted idea: %s\n", name)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}
