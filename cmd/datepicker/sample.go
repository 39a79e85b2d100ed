package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adwaits94/datepicker/internal/domain/entities"
	"github.com/adwaits94/datepicker/internal/domain/services"
)

type sampleFlags struct {
	likedBy   string
	location  string
	maxCost   float64
	partySize int
	date      string
	yes       bool
}

func newSampleCmd() *cobra.Command {
	var flags sampleFlags

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Pick a random date idea",
		Long: `Picks a random idea matching the filters and asks whether to accept it.
Accepted ideas are added to the history; rejecting picks again.

Examples:
  datepicker sample --max-cost 500
  datepicker sample --liked-by gf --location outdoor --max-cost 1000 --people 2
  datepicker sample --max-cost 300 --yes --date 2024-05-01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSample(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.likedBy, "liked-by", anyFilter, "Only ideas liked by this person (both = anyone)")
	cmd.Flags().StringVarP(&flags.location, "location", "l", anyFilter, "Only ideas at this location (both = anywhere)")
	cmd.Flags().Float64VarP(&flags.maxCost, "max-cost", "m", 0, "Maximum cost per person (required)")
	cmd.Flags().IntVarP(&flags.partySize, "people", "p", DefaultPartySize, "Number of people going")
	cmd.Flags().StringVar(&flags.date, "date", "", "Date to record (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "Accept the first idea without asking")
	_ = cmd.MarkFlagRequired("max-cost")

	return cmd
}

func runSample(cmd *cobra.Command, flags sampleFlags) error {
	ctx := cmd.Context()

	params := services.SampleParams{
		LikedBy:          filterValue(flags.likedBy),
		Location:         filterValue(flags.location),
		MaxCostPerPerson: &flags.maxCost,
		PartySize:        &flags.partySize,
	}
	if err := params.Validate(); err != nil {
		return err
	}

	return withDeps(ctx, func(d *Deps) error {
		s := &sampler{deps: d, flags: flags}
		return s.loop(ctx, params)
	})
}

type sampler struct {
	deps  *Deps
	flags sampleFlags
}

func (s *sampler) loop(ctx context.Context, params services.SampleParams) error {
	for {
		idea, err := s.deps.Manager.SampleIdea(params)
		if err != nil {
			return fmt.Errorf("sampling: %w", err)
		}
		if idea == nil {
			fmt.Println("No date ideas match these filters.")
			return nil
		}

		s.display(*idea)

		answer := choiceAccept
		if !s.flags.yes {
			answer = promptChoice()
		}

		switch answer {
		case choiceAccept:
			return s.accept(ctx, *idea)
		case choiceReject:
			fmt.Println()
			continue
		default:
			fmt.Println("Cancelled.")
			return nil
		}
	}
}

func (s *sampler) display(idea entities.Idea) {
	currency := s.deps.Config.Display.Currency
	perPerson := services.PerPersonCost(idea, s.flags.partySize)

	fmt.Printf("How about: %s\n", idea.Name())
	fmt.Printf("  Liked by: %s\n", joinOrDash(idea.LikedBy()))
	fmt.Printf("  Location: %s\n", joinOrDash(idea.Locations()))
	if tags := idea.Tags(); len(tags) > 0 {
		fmt.Printf("  Tags:     %s\n", strings.Join(tags, ", "))
	}
	fmt.Printf("  Cost:     %s (%s each for %d)\n", describeCost(currency, idea), formatMoney(currency, perPerson), s.flags.partySize)
}

func (s *sampler) accept(ctx context.Context, idea entities.Idea) error {
	record, err := s.deps.Manager.RecordDate(ctx, idea, s.flags.partySize, s.flags.date)
	if err != nil {
		return err
	}
	fmt.Printf("Added %s on %s to history.\n", record.ActivityName, record.Date)
	return nil
}

// filterValue maps the "both" keyword and blanks to no filter.
func filterValue(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, anyFilter) {
		return ""
	}
	return v
}
